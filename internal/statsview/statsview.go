//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

// Address the statistics server listens on.
const Address = "localhost:12800"

const path = "/debug/statsview"

// Launch starts the statistics server in the background.
func Launch(logger *log.Logger) error {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()

	logger.Info("Statistics server started", log.String("url", "http://"+Address+path))
	return nil
}

// Available returns whether the statistics server is compiled in.
func Available() bool {
	return true
}
