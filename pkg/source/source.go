// Package source turns a user-supplied path into raw STL bytes. Plain .stl
// files are read as-is; OpenSCAD .scad files are rendered first.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the type of input file
type Kind int

const (
	KindSTL Kind = iota
	KindSCAD
)

// String returns the file extension without the dot
func (k Kind) String() string {
	if k == KindSCAD {
		return "scad"
	}
	return "stl"
}

// KindFor classifies path by its extension
func KindFor(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return KindSTL, nil
	case ".scad":
		return KindSCAD, nil
	default:
		return 0, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", filepath.Ext(path))
	}
}

// Input is a loaded file ready for stl.Parse
type Input struct {
	Path string
	Kind Kind
	Data []byte
	// Files lists every file the result depends on: the path itself plus, for
	// .scad input, all transitively used or included files.
	Files []string
}

// Loader reads STL files and renders OpenSCAD files
type Loader struct {
	workDir string
	// OpenSCAD is the renderer binary; defaults to "openscad" on PATH.
	OpenSCAD string
}

// NewLoader creates a loader resolving relative paths against workDir
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:  workDir,
		OpenSCAD: "openscad",
	}
}

// Load reads path, rendering it through OpenSCAD when it is a .scad file
func (l *Loader) Load(ctx context.Context, path string) (*Input, error) {
	kind, err := KindFor(path)
	if err != nil {
		return nil, err
	}

	absPath := l.abs(path)

	if kind == KindSTL {
		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return &Input{Path: absPath, Kind: kind, Data: data, Files: []string{absPath}}, nil
	}

	deps, err := l.ResolveDependencies(absPath)
	if err != nil {
		return nil, err
	}

	tempDir, err := os.MkdirTemp("", "fixmystl-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	outFile := filepath.Join(tempDir, strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))+".stl")
	if err := l.RenderToSTL(ctx, absPath, outFile); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered STL: %w", err)
	}

	return &Input{Path: absPath, Kind: kind, Data: data, Files: deps}, nil
}

func (l *Loader) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.workDir, path)
}
