//go:build !statsview

package statsview

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLaunch_Unavailable(t *testing.T) {
	assert.False(t, Available())

	err := Launch(log.NewTestLogger(t))
	assert.True(t, errors.Is(err, ErrUnavailable))
}
