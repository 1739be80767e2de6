package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const templatePackageJSON = `{
    "name": "docubook-template",
    "version": "1.8.0",
    "private": true,
    "scripts": {
        "dev": "next dev",
        "build": "next build"
    },
    "dependencies": {
        "next": "14.2.6",
        "react": "^18.3.1"
    },
    "browserslist": ["defaults", "not ie 11"]
}`

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
	return m
}

func topLevelKeys(t *testing.T, data []byte) []string {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(string(data)))
	if _, err := dec.Token(); err != nil {
		t.Fatal(err)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatal(err)
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatal(err)
		}
	}
	return keys
}

func TestPatchSetsOwnedFields(t *testing.T) {
	out, err := Patch([]byte(templatePackageJSON), Update{Name: "docs", PackageManager: "pnpm@8.1.0"})
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}

	m := decode(t, out)
	if m["name"] != "docs" {
		t.Errorf("name = %v, want %q", m["name"], "docs")
	}
	if m["packageManager"] != "pnpm@8.1.0" {
		t.Errorf("packageManager = %v, want %q", m["packageManager"], "pnpm@8.1.0")
	}
}

func TestPatchPreservesOtherFields(t *testing.T) {
	before := decode(t, []byte(templatePackageJSON))

	out, err := Patch([]byte(templatePackageJSON), Update{Name: "docs", PackageManager: "npm@10.2.4"})
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	after := decode(t, out)

	for key, want := range before {
		if key == "name" || key == "packageManager" {
			continue
		}
		if got := after[key]; !reflect.DeepEqual(got, want) {
			t.Errorf("field %q changed: got %v, want %v", key, got, want)
		}
	}
	if len(after) != len(before)+1 {
		t.Errorf("got %d fields, want %d", len(after), len(before)+1)
	}
}

func TestPatchKeepsMemberOrder(t *testing.T) {
	out, err := Patch([]byte(templatePackageJSON), Update{Name: "docs", PackageManager: "bun@1.1.0"})
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}

	got := topLevelKeys(t, out)
	want := []string{"name", "version", "private", "scripts", "dependencies", "browserslist", "packageManager"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestPatchReplacesExistingPackageManager(t *testing.T) {
	in := `{"packageManager": "yarn@1.22.19", "name": "x"}`
	out, err := Patch([]byte(in), Update{Name: "docs", PackageManager: "bun@1.1.0"})
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}

	if got := topLevelKeys(t, out); !reflect.DeepEqual(got, []string{"packageManager", "name"}) {
		t.Errorf("keys = %v, want packageManager first", got)
	}
	if got := StringField(out, "packageManager"); got != "bun@1.1.0" {
		t.Errorf("packageManager = %q, want %q", got, "bun@1.1.0")
	}
}

func TestPatchFormatting(t *testing.T) {
	out, err := Patch([]byte(`{"name":"a","scripts":{"dev":"next dev"}}`), Update{PackageManager: "npm@10.0.0"})
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}

	want := "{\n  \"name\": \"a\",\n  \"scripts\": {\n    \"dev\": \"next dev\"\n  },\n  \"packageManager\": \"npm@10.0.0\"\n}\n"
	if string(out) != want {
		t.Errorf("Patch() output =\n%s\nwant\n%s", out, want)
	}
}

func TestPatchIsIdempotent(t *testing.T) {
	u := Update{Name: "docs", PackageManager: "pnpm@8.1.0"}
	once, err := Patch([]byte(templatePackageJSON), u)
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	twice, err := Patch(once, u)
	if err != nil {
		t.Fatalf("second Patch() error: %v", err)
	}
	if string(once) != string(twice) {
		t.Errorf("second patch changed output:\n%s\nvs\n%s", once, twice)
	}
}

func TestPatchToleratesCommentsAndTrailingCommas(t *testing.T) {
	in := "{\n  // generated\n  \"name\": \"x\",\n  \"private\": true,\n}"
	out, err := Patch([]byte(in), Update{Name: "docs"})
	if err != nil {
		t.Fatalf("Patch() error: %v", err)
	}
	m := decode(t, out)
	if m["name"] != "docs" || m["private"] != true {
		t.Errorf("unexpected result: %v", m)
	}
}

func TestPatchRejectsNonObject(t *testing.T) {
	if _, err := Patch([]byte(`["not", "an", "object"]`), Update{Name: "docs"}); err == nil {
		t.Error("expected error for array document")
	}
	if _, err := Patch([]byte(`{"name": `), Update{Name: "docs"}); err == nil {
		t.Error("expected error for truncated document")
	}
}

func TestPatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(templatePackageJSON), 0600); err != nil {
		t.Fatal(err)
	}

	written, err := PatchFile(path, Update{Name: "docs", PackageManager: "yarn@1.22.19"})
	if err != nil {
		t.Fatalf("PatchFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, data) {
		t.Errorf("PatchFile() returned %q, file holds %q", written, data)
	}
	if got := StringField(data, "packageManager"); got != "yarn@1.22.19" {
		t.Errorf("packageManager = %q, want %q", got, "yarn@1.22.19")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 && perm != 0666 {
		// 0666 on platforms that ignore Unix permission bits.
		t.Errorf("permissions = %v, want 0600", perm)
	}
}

func TestPatchFileMissing(t *testing.T) {
	data, err := PatchFile(filepath.Join(t.TempDir(), FileName), Update{Name: "docs"})
	if data != nil {
		t.Errorf("PatchFile() = %q, want nil", data)
	}
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
}

func TestStringField(t *testing.T) {
	data := []byte(templatePackageJSON)
	if got := StringField(data, "version"); got != "1.8.0" {
		t.Errorf("StringField(version) = %q, want %q", got, "1.8.0")
	}
	if got := StringField(data, "private"); got != "" {
		t.Errorf("StringField(private) = %q, want empty for non-string", got)
	}
	if got := StringField(data, "missing"); got != "" {
		t.Errorf("StringField(missing) = %q, want empty", got)
	}
	if got := StringField([]byte("not json"), "name"); got != "" {
		t.Errorf("StringField(invalid) = %q, want empty", got)
	}
}
