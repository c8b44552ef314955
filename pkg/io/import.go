package io

import (
	"errors"
	"io/fs"
	"os"

	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/hexgrid"
)

// ImportHex reads a hex-encoded maze from path. A missing file is reported
// as NOT_FOUND.
func ImportHex(path string) (*hexgrid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return hexgrid.Parse(f)
}
