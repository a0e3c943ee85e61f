package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// Matches: use <file.scad>, include <file.scad>, use <./file.scad>, etc.
var dependencyPattern = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// RenderToSTL runs OpenSCAD to render scadFile into outputFile
func (l *Loader) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	bin, err := exec.LookPath(l.OpenSCAD)
	if err != nil {
		return fmt.Errorf("%s not found in PATH. Please install OpenSCAD from https://openscad.org/", l.OpenSCAD)
	}

	cmd := exec.CommandContext(ctx, bin, "-o", outputFile, l.abs(scadFile))
	cmd.Dir = l.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		fmt.Fprintf(&msg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(stdout.String())
		}
		return fmt.Errorf("%s", msg.String())
	}

	return nil
}

// ResolveDependencies returns scadFile and every file it uses or includes,
// transitively, as absolute paths. Cycles are visited once.
func (l *Loader) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	var walk func(file string) error
	walk = func(file string) error {
		if visited[file] {
			return nil
		}
		visited[file] = true
		deps = append(deps, file)

		fileDeps, err := l.parseDependencies(file)
		if err != nil {
			return err
		}
		for _, dep := range fileDeps {
			if err := walk(dep); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(l.abs(scadFile)); err != nil {
		return nil, err
	}
	return deps, nil
}

// parseDependencies lists the use/include targets of a single file
func (l *Loader) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scadDir := filepath.Dir(scadFile)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if m := dependencyPattern.FindStringSubmatch(line); m != nil {
			deps = append(deps, l.resolveDepPath(m[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}
	return deps, nil
}

// resolveDepPath resolves a dependency relative to the including file, then
// falls back to the loader's work directory.
func (l *Loader) resolveDepPath(depPath, currentDir string) string {
	if filepath.IsAbs(depPath) {
		return filepath.Clean(depPath)
	}

	local := filepath.Join(currentDir, depPath)
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(local)
	}
	if _, err := os.Stat(local); err == nil {
		return filepath.Clean(local)
	}
	return filepath.Clean(filepath.Join(l.workDir, depPath))
}
