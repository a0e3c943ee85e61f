package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fixmystl/fixmystl/internal/app"
	"github.com/fixmystl/fixmystl/pkg/analysis"
	"github.com/fixmystl/fixmystl/pkg/stl"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show the detected format, triangle count, dimensions, volume and surface area, plus unit fixes for models that look wrongly scaled.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	session, input, err := openSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printInfo(cmd.OutOrStdout(), input.Path, session)
}

func printInfo(w io.Writer, path string, session *app.Session) error {
	vertices, err := session.Mesh()
	if err != nil {
		return err
	}
	mesh := session.Original()
	result := analysis.AnalyzeMesh(vertices)

	fmt.Fprintln(w, "STL File Information")
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "File: %s\n", path)
	fmt.Fprintf(w, "Format: %s\n", mesh.Format)
	fmt.Fprintf(w, "Size: %d bytes\n", mesh.FileSizeBytes)
	if mesh.SizeWarning {
		fmt.Fprintf(w, "Warning: file is larger than %d MB, processing may be slow\n", stl.SizeWarningThreshold/(1024*1024))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Model Statistics:")
	fmt.Fprintf(w, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(w, "  Surface Area: %s\n", analysis.FormatMeasurement(result.SurfaceArea, "mm²"))
	fmt.Fprintf(w, "  Volume: %s\n\n", analysis.FormatMeasurement(result.Volume, "mm³"))

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Size: %s\n", analysis.FormatDimensions(result.BoundingBox.Size))
	fmt.Fprintf(w, "  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), "mm"))

	fmt.Fprintln(w, "Edge Lengths:")
	fmt.Fprintf(w, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinEdgeLength, "mm"))
	fmt.Fprintf(w, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxEdgeLength, "mm"))
	fmt.Fprintf(w, "  Average: %s\n", analysis.FormatMeasurement(result.AvgEdgeLength, "mm"))

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Fprintf(w, "  --scale %g: %s\n", s.Factor, s.Reason)
		}
	}
	return nil
}
