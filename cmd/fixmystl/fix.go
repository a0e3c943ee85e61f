package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fixmystl/fixmystl/internal/app"
	"github.com/fixmystl/fixmystl/internal/logger"
	"github.com/fixmystl/fixmystl/pkg/analysis"
	"github.com/fixmystl/fixmystl/pkg/geometry"
	"github.com/fixmystl/fixmystl/pkg/preview"
)

var (
	fixOutput    string
	fixScale     float64
	fixAutoScale bool
	fixRotate    []string
	fixCenter    bool
	fixOnBed     bool
	fixPreview   string
)

var fixCmd = &cobra.Command{
	Use:   "fix [file]",
	Short: "Rescale, rotate and reposition a model and write it as binary STL",
	Long: `Apply a transform to the model and export the result as binary STL.

The scale is always applied to the original geometry. Rotations are quarter
turns about the model center and are applied in the order given, for example
--rotate x+,z- turns 90° around X and then -90° around Z. --center moves the
bounding box center to the origin; --bed drops the lowest point onto Z=0.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().StringVarP(&fixOutput, "output", "o", "", "output STL file (required)")
	fixCmd.Flags().Float64Var(&fixScale, "scale", 1, "scale factor applied to the original model")
	fixCmd.Flags().BoolVar(&fixAutoScale, "auto-scale", false, "apply the first unit suggestion when the model looks wrongly scaled")
	fixCmd.Flags().StringSliceVar(&fixRotate, "rotate", nil, "quarter turns to apply, e.g. x+,z-")
	fixCmd.Flags().BoolVar(&fixCenter, "center", false, "center the model on the origin")
	fixCmd.Flags().BoolVar(&fixOnBed, "bed", false, "place the model on the print bed (Z=0)")
	fixCmd.Flags().StringVar(&fixPreview, "preview", "", "also render the result to this .png or .webp file")
	_ = fixCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	var (
		opts     []app.Option
		renderer *preview.Renderer
		err      error
	)
	if fixPreview != "" {
		if _, err := preview.FormatFor(fixPreview); err != nil {
			return err
		}
		if renderer, err = newRenderer(512); err != nil {
			return err
		}
		opts = append(opts, app.WithPreview(renderer))
	}

	session, _, err := openSession(cmd.Context(), args[0], opts...)
	if err != nil {
		return err
	}

	before := session.Original().BoundingBox()

	scale := fixScale
	if fixAutoScale && !cmd.Flags().Changed("scale") {
		if suggestions := analysis.SuggestScale(before); len(suggestions) > 0 {
			scale = suggestions[0].Factor
			fmt.Fprintf(cmd.OutOrStdout(), "Auto scale: %g (%s)\n", scale, suggestions[0].Reason)
		}
	}

	if err := transform(session, scale, fixRotate, fixCenter, fixOnBed); err != nil {
		return err
	}

	data, err := session.Export()
	if err != nil {
		return err
	}
	if err := os.WriteFile(fixOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fixOutput, err)
	}

	vertices, err := session.Mesh()
	if err != nil {
		return err
	}
	after := geometry.ComputeBoundingBox(vertices)

	if renderer != nil {
		if err := renderer.SaveFile(fixPreview); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Preview: %s\n", fixPreview)
	}

	logger.Info("wrote fixed model", zap.String("output", fixOutput), zap.Int("bytes", len(data)))

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Before: %s\n", analysis.FormatDimensions(before.Size))
	fmt.Fprintf(w, "After:  %s\n", analysis.FormatDimensions(after.Size))
	fmt.Fprintf(w, "Min:    %s\n", analysis.FormatVector(after.Min))
	fmt.Fprintf(w, "Wrote %d triangles (%d bytes) to %s\n", vertices.TriangleCount(), len(data), fixOutput)
	return nil
}

// transform applies the command-line transform to session
func transform(session *app.Session, scale float64, rotations []string, center, onBed bool) error {
	if err := session.SetScale(scale); err != nil {
		return err
	}
	if err := applyRotations(session, rotations); err != nil {
		return err
	}
	if err := session.SetCenter(center); err != nil {
		return err
	}
	return session.SetPlaceOnBed(onBed)
}
