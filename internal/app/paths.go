package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .adco/ project directory.
// All fields are pre-computed strings.
type Paths struct {
	Project string // project root the paths were resolved from
	Root    string // .adco/
	DB      string // .adco/adco.db
	Config  string // .adco/config.yaml

	LogDir string // .adco/log/
	Log    string // .adco/log/adco.log
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".adco")
	return &Paths{
		Project: projectRoot,
		Root:    root,
		DB:      filepath.Join(root, "adco.db"),
		Config:  filepath.Join(root, "config.yaml"),

		LogDir: filepath.Join(root, "log"),
		Log:    filepath.Join(root, "log", "adco.log"),
	}
}

// EnsureDirs creates all subdirectories under .adco/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.LogDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Resolve makes a configured path absolute against the project root.
// Empty stays empty.
func (p *Paths) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Project, path)
}

// InputFile is the conventional input location for a day inside dir.
func InputFile(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}
