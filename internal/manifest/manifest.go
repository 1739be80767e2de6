package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// FileName is the manifest file looked for at the project root.
const FileName = "package.json"

// Update lists the fields the scaffolder owns. Empty values are left alone.
type Update struct {
	Name           string
	PackageManager string
}

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Patch applies u to the package.json document in data and returns the
// rewritten document. Members keep their original order; the output is
// standard JSON indented with two spaces and terminated by a newline.
func Patch(data []byte, u Update) ([]byte, error) {
	root, err := hujson.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if _, ok := root.Value.(*hujson.Object); !ok {
		return nil, fmt.Errorf("%s must contain a JSON object", FileName)
	}

	var ops []patchOp
	for _, f := range []struct{ ptr, value string }{
		{"/name", u.Name},
		{"/packageManager", u.PackageManager},
	} {
		if f.value == "" {
			continue
		}
		op := "add"
		if root.Find(f.ptr) != nil {
			op = "replace"
		}
		ops = append(ops, patchOp{Op: op, Path: f.ptr, Value: f.value})
	}

	if len(ops) > 0 {
		patch, err := json.Marshal(ops)
		if err != nil {
			return nil, fmt.Errorf("encoding patch: %w", err)
		}
		if err := root.Patch(patch); err != nil {
			return nil, fmt.Errorf("patching %s: %w", FileName, err)
		}
	}

	root.Standardize()

	// json.Indent keeps trailing whitespace, so the original final newline
	// is trimmed before one is written back.
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(root.Pack()), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting %s: %w", FileName, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// PatchFile rewrites the manifest at path in place, keeping its permissions,
// and returns the document it wrote.
func PatchFile(path string, u Update) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	out, err := Patch(data, u)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return out, nil
}

// StringField returns the string value of a top-level member, or "" when
// the member is missing, not a string, or data is not valid JSON.
func StringField(data []byte, key string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(standardize(data), &fields); err != nil {
		return ""
	}
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// standardize strips JWCC extensions so encoding/json can read data.
func standardize(data []byte) []byte {
	out, err := hujson.Standardize(data)
	if err != nil {
		return data
	}
	return out
}
