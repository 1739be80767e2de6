package scaffold

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed all:template
var templateFS embed.FS

// EmbeddedTemplate returns the template tree bundled with the binary.
func EmbeddedTemplate() fs.FS {
	sub, err := fs.Sub(templateFS, "template")
	if err != nil {
		// The directive above guarantees the directory exists.
		panic(err)
	}
	return sub
}

// TemplateFrom returns the template tree to copy: dir on disk when set,
// the embedded template otherwise.
func TemplateFrom(dir string) (fs.FS, error) {
	if dir == "" {
		return EmbeddedTemplate(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrInvalid}
	}
	return os.DirFS(dir), nil
}
