package pkgmanager

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

const (
	postcssConfigJS  = "postcss.config.js"
	postcssConfigCJS = "postcss.config.cjs"
	yarnrcFile       = ".yarnrc.yml"
)

// yarnrc is the subset of .yarnrc.yml written for yarn projects. The
// template relies on a node_modules tree, so Plug'n'Play is turned off.
type yarnrc struct {
	NodeLinker string `yaml:"nodeLinker"`
}

// Configure applies manager-specific fixups to a freshly copied project:
//
//   - bun: postcss.config.js is renamed to postcss.config.cjs
//   - yarn: .yarnrc.yml is written with "nodeLinker: node-modules"
//   - npm, pnpm: nothing
//
// Filesystem errors are returned unchanged.
func Configure(id ID, projectPath string) error {
	switch id {
	case Bun:
		return renamePostcssConfig(projectPath)
	case Yarn:
		return writeYarnrc(projectPath)
	}
	return nil
}

func renamePostcssConfig(projectPath string) error {
	oldPath := filepath.Join(projectPath, postcssConfigJS)
	if _, err := os.Stat(oldPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Rename(oldPath, filepath.Join(projectPath, postcssConfigCJS))
}

func writeYarnrc(projectPath string) error {
	data, err := yaml.Marshal(yarnrc{NodeLinker: "node-modules"})
	if err != nil {
		return fmt.Errorf("encoding %s: %w", yarnrcFile, err)
	}
	return os.WriteFile(filepath.Join(projectPath, yarnrcFile), data, 0644)
}
