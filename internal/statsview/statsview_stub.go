//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch reports that the binary was built without statsview
func Launch(output io.Writer) {
	fmt.Fprintln(output, "statsview not available: build with -tags statsview")
}

// Available reports whether Launch starts a server
func Available() bool {
	return false
}
