package dataset

import (
	"embed"
	"io/fs"
)

//go:embed examples
var examplesFS embed.FS

// Examples returns the published example inputs shipped with the binary,
// laid out as day-<N>/example.dat.
func Examples() fs.FS {
	sub, err := fs.Sub(examplesFS, "examples")
	if err != nil {
		return examplesFS
	}
	return sub
}
