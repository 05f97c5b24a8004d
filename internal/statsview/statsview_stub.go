//go:build !statsview

package statsview

import (
	"errors"

	"github.com/retroenv/retrogolib/log"
)

// ErrUnavailable is returned by Launch when built without the statsview tag.
var ErrUnavailable = errors.New("statsview support not compiled in, rebuild with -tags statsview")

// Launch fails as the statistics server is not compiled in.
func Launch(_ *log.Logger) error {
	return ErrUnavailable
}

// Available returns whether the statistics server is compiled in.
func Available() bool {
	return false
}
