package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestKindFor(t *testing.T) {
	kind, err := KindFor("part.STL")
	require.NoError(t, err)
	assert.Equal(t, KindSTL, kind)

	kind, err = KindFor("dir/part.scad")
	require.NoError(t, err)
	assert.Equal(t, KindSCAD, kind)

	_, err = KindFor("part.obj")
	assert.Error(t, err)
}

func TestLoadSTL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "part.stl"), "solid x\nendsolid x\n")

	input, err := NewLoader(dir).Load(context.Background(), "part.stl")
	require.NoError(t, err)

	assert.Equal(t, KindSTL, input.Kind)
	assert.Equal(t, []byte("solid x\nendsolid x\n"), input.Data)
	assert.Equal(t, []string{filepath.Join(dir, "part.stl")}, input.Files)
}

func TestLoadMissingSTL(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Load(context.Background(), "missing.stl")
	assert.Error(t, err)
}

func TestLoadSCADWithoutRenderer(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "part.scad"), "cube(10);\n")

	loader := NewLoader(dir)
	loader.OpenSCAD = "fixmystl-no-such-openscad"

	_, err := loader.Load(context.Background(), "part.scad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), `use <lib/shapes.scad>
include <./params.scad>
// use <commented.scad>
cube(size);
`)
	writeFile(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../params.scad>\n")
	writeFile(t, filepath.Join(dir, "params.scad"), "size = 10;\n")

	deps, err := NewLoader(dir).ResolveDependencies("main.scad")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "main.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "params.scad"),
	}, deps)
}

func TestResolveDependenciesCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.scad"), "use <b.scad>\n")
	writeFile(t, filepath.Join(dir, "b.scad"), "use <a.scad>\n")

	deps, err := NewLoader(dir).ResolveDependencies("a.scad")
	require.NoError(t, err)
	assert.Len(t, deps, 2)
}

func TestResolveDependenciesMissingInclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.scad"), "include <gone.scad>\n")

	_, err := NewLoader(dir).ResolveDependencies("a.scad")
	assert.Error(t, err)
}
