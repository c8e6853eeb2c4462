// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// filePerm is the mode of written images before the umask.
const filePerm = 0o644

// SaveFile encodes the figure to path. The bytes go to a pending file in
// the same directory which replaces path only after a complete, synced
// write, so a failure never leaves a partial image at path.
func (f *Figure) SaveFile(path string) error {
	if f.r == nil {
		return ErrFigureClosed
	}
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer pf.Cleanup()

	if _, err = f.WriteTo(pf); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}

	return nil
}
