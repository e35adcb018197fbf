// Package logging builds the logr.Logger shared by the display, conveyor
// and command line.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to stderr. Messages logged with V(n) are
// shown when n <= verbosity.
func New(verbosity int) logr.Logger {
	return NewTo(os.Stderr, verbosity)
}

// NewTo returns a logger writing to w with the standard log flags
func NewTo(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, "", log.LstdFlags))
}
