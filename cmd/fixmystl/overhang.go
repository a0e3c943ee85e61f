package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fixmystl/fixmystl/pkg/analysis"
	"github.com/fixmystl/fixmystl/pkg/estimate"
)

var (
	overhangThreshold float64
	overhangRotate    []string
)

var overhangCmd = &cobra.Command{
	Use:   "overhang [file]",
	Short: "Report the share of surface that will need supports",
	Long: `Report how much of the surface faces downward steeper than the threshold.

A triangle is at risk when its normal points down and it is tilted more than
the threshold angle away from vertical. Use --rotate to try other orientations.`,
	Args: cobra.ExactArgs(1),
	RunE: runOverhang,
}

func init() {
	overhangCmd.Flags().Float64Var(&overhangThreshold, "threshold", 0, "overhang angle threshold in degrees (default from config, 45)")
	overhangCmd.Flags().StringSliceVar(&overhangRotate, "rotate", nil, "quarter turns to apply first, e.g. x+,y-")
	rootCmd.AddCommand(overhangCmd)
}

func runOverhang(cmd *cobra.Command, args []string) error {
	threshold := cfg.Overhang.ThresholdDegrees
	if cmd.Flags().Changed("threshold") {
		threshold = overhangThreshold
	}
	if !(threshold >= 0 && threshold < 90) {
		return fmt.Errorf("threshold must be in [0, 90) degrees, got %v", threshold)
	}

	session, _, err := openSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := applyRotations(session, overhangRotate); err != nil {
		return err
	}

	vertices, err := session.Mesh()
	if err != nil {
		return err
	}
	o := estimate.OverhangRisk(vertices, threshold)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Threshold: %.1f°\n", o.ThresholdDegrees)
	fmt.Fprintf(w, "Risk Area: %s of %s\n",
		analysis.FormatMeasurement(o.RiskArea, "mm²"), analysis.FormatMeasurement(o.TotalArea, "mm²"))
	fmt.Fprintf(w, "Risk Triangles: %d\n", o.RiskTriangles)
	fmt.Fprintf(w, "Overhang Risk: %s\n", analysis.FormatBand(o))
	return nil
}
