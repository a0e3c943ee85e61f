package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fixmystl/fixmystl/internal/app"
	"github.com/fixmystl/fixmystl/internal/logger"
	"github.com/fixmystl/fixmystl/pkg/geometry"
	"github.com/fixmystl/fixmystl/pkg/source"
)

// openSession loads path (STL or OpenSCAD) into a fresh session
func openSession(ctx context.Context, path string, opts ...app.Option) (*app.Session, *source.Input, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	input, err := source.NewLoader(wd).Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	session := newSession(opts...)
	if err := session.Load(filepath.Base(path), input.Data); err != nil {
		return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return session, input, nil
}

func newSession(opts ...app.Option) *app.Session {
	defaults := []app.Option{
		app.WithLogger(logger.Named("session")),
		app.WithTracker(app.LogTracker{Log: logger.Named("track")}),
	}
	return app.NewSession(append(defaults, opts...)...)
}

// parseRotation parses a quarter turn such as "x", "x+", "+x", "z-" or "-y".
// A missing sign means a positive (counter-clockwise) turn.
func parseRotation(turn string) (geometry.Axis, int, error) {
	s := strings.TrimSpace(turn)
	sign := 1

	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		s, sign = s[1:], -1
	case strings.HasSuffix(s, "+"):
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "-"):
		s, sign = s[:len(s)-1], -1
	}

	axis, err := geometry.ParseAxis(s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid rotation %q: %w", turn, err)
	}
	return axis, sign, nil
}

// applyRotations stacks every turn in order
func applyRotations(session *app.Session, turns []string) error {
	for _, turn := range turns {
		axis, sign, err := parseRotation(turn)
		if err != nil {
			return err
		}
		if err := session.Rotate(axis, sign); err != nil {
			return err
		}
	}
	return nil
}
