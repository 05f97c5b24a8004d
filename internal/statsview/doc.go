// Package statsview serves runtime statistics of the process over HTTP. It is
// only functional when built with the statsview build tag.
//
// After launch the charts are available at
//
//	localhost:12800/debug/statsview
//
// and the standard pprof endpoints at
//
//	localhost:12800/debug/pprof/
package statsview
