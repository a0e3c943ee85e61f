package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fixmystl/fixmystl/pkg/analysis"
	"github.com/fixmystl/fixmystl/pkg/estimate"
)

var (
	estMaterial string
	estInfill   float64
	estShell    float64
	estDiameter float64
	estPrice    float64
	estFlow     float64
	estScale    float64
	estRotate   []string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [file]",
	Short: "Estimate filament, weight, cost and print time",
	Long: `Estimate the material needed to print a model.

Defaults come from the config file; flags override them. Supported materials: ` + strings.Join(estimate.Materials(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVar(&estMaterial, "material", "", "material preset (sets density)")
	estimateCmd.Flags().Float64Var(&estInfill, "infill", 0, "infill fraction in (0, 1]")
	estimateCmd.Flags().Float64Var(&estShell, "shell", 0, "shell multiplier (>= 1)")
	estimateCmd.Flags().Float64Var(&estDiameter, "diameter", 0, "filament diameter in mm")
	estimateCmd.Flags().Float64Var(&estPrice, "price", 0, "filament price per kg")
	estimateCmd.Flags().Float64Var(&estFlow, "flow", 0, "volumetric flow in mm³/s")
	estimateCmd.Flags().Float64Var(&estScale, "scale", 1, "scale factor applied before estimating")
	estimateCmd.Flags().StringSliceVar(&estRotate, "rotate", nil, "quarter turns applied before the overhang check, e.g. x+")
	rootCmd.AddCommand(estimateCmd)
}

// estimateSettings merges config values with the flags the user set
func estimateSettings(cmd *cobra.Command) (estimate.Settings, error) {
	c := *cfg
	flags := cmd.Flags()

	if flags.Changed("material") {
		c.Material = estMaterial
		c.Estimate.Density = 0
	}
	if flags.Changed("infill") {
		c.Estimate.Infill = estInfill
	}
	if flags.Changed("shell") {
		c.Estimate.ShellMultiplier = estShell
	}
	if flags.Changed("diameter") {
		c.Estimate.FilamentDiameter = estDiameter
	}
	if flags.Changed("price") {
		c.Estimate.PricePerKg = estPrice
	}
	if flags.Changed("flow") {
		c.Estimate.FlowRate = estFlow
	}
	return c.EstimateSettings()
}

func runEstimate(cmd *cobra.Command, args []string) error {
	settings, err := estimateSettings(cmd)
	if err != nil {
		return err
	}

	session, _, err := openSession(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := transform(session, estScale, estRotate, false, false); err != nil {
		return err
	}

	stats, err := session.Stats(settings, cfg.Overhang.ThresholdDegrees)
	if err != nil {
		return err
	}
	m := stats.Material

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Print Estimate")
	fmt.Fprintln(w, "==============")
	fmt.Fprintf(w, "Dimensions: %s\n", analysis.FormatDimensions(stats.Report.BoundingBox.Size))
	fmt.Fprintf(w, "Mesh Volume: %s\n", analysis.FormatMeasurement(m.MeshVolume, "mm³"))
	fmt.Fprintf(w, "Printed Volume: %s (infill %.0f%%, shell x%.2f)\n",
		analysis.FormatMeasurement(m.EffectiveVolume, "mm³"), settings.Infill*100, settings.ShellMultiplier)
	fmt.Fprintf(w, "Mass: %.1f g (density %.2f g/cm³)\n", m.MassGrams, settings.Density)
	fmt.Fprintf(w, "Filament: %.2f m (%.2f mm)\n", m.FilamentMeters, settings.FilamentDiameter)
	fmt.Fprintf(w, "Cost: %.2f (%.2f per kg)\n", m.Cost, settings.PricePerKg)
	fmt.Fprintf(w, "Print Time: %s (at %.1f mm³/s)\n", analysis.FormatDuration(m.PrintTime), settings.FlowRate)
	fmt.Fprintf(w, "Overhang Risk: %s\n", analysis.FormatBand(stats.Overhang))
	return nil
}
