package io

import (
	"os"
	"path/filepath"

	errs "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/hexgrid"
)

// ExportHex writes g to path in the hex text format. The file is replaced
// atomically; on any error the previous contents of path are left as they
// were and the temporary file is removed.
func ExportHex(g *hexgrid.Grid, path string) error {
	if err := errs.ValidateOutputPath(path); err != nil {
		return err
	}
	if path == "-" {
		return errs.New(errs.ErrCodeInvalidPath, "output path must name a file")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create %s", path)
	}
	name := tmp.Name()
	cleanup := func() { _ = os.Remove(name) }

	if _, err := g.WriteTo(tmp); err != nil {
		tmp.Close()
		cleanup()
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errs.Wrap(errs.ErrCodeIO, err, "close %s", path)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		cleanup()
		return errs.Wrap(errs.ErrCodeIO, err, "chmod %s", path)
	}
	if err := os.Rename(name, path); err != nil {
		cleanup()
		return errs.Wrap(errs.ErrCodeIO, err, "rename %s", path)
	}
	return nil
}
