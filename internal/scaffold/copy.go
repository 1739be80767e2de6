package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// copyTree copies every directory and regular file of src into dst and
// returns the slash-separated paths of the copied files. Other entry types
// are skipped. dst is created if needed.
func copyTree(ctx context.Context, src fs.FS, dst string) ([]string, error) {
	var files []string

	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(dst, filepath.FromSlash(p))

		if d.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		if err := copyFile(src, p, target); err != nil {
			return err
		}
		files = append(files, path.Clean(p))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// copyFile copies one regular file byte for byte. Executable sources stay
// executable.
func copyFile(src fs.FS, name, target string) error {
	in, err := src.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	mode := os.FileMode(0644)
	if info.Mode().Perm()&0111 != 0 {
		mode = 0755
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", target, err)
	}
	return nil
}
