// Package statsview serves runtime statistics over HTTP when built with
// the statsview tag. Charts are at localhost:12600/debug/statsview and
// pprof at localhost:12600/debug/pprof/.
package statsview
