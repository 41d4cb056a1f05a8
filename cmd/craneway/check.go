package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"Craneway/internal/calc/runway"
	"Craneway/internal/catalog"

	"github.com/spf13/cobra"
)

var checkInput runway.Input

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Select and check a runway beam for one crane configuration",
	Long: `Run the full runway analysis: derive the crane loads, pick the
lightest adequate beam from the chosen catalog and evaluate the four
structural checks.

Example:
  craneway check --capacity 10000 --hoist 1700 --girder 3000 --panel 2000 \
    --end-truck 1000 --columns 6 --rail-height 20 --wheelbase 7 \
    --support-centers 45 --bridge-span 44 --capped`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64Var(&checkInput.CapacityLb, "capacity", 0, "Rated crane capacity (lb) [required]")
	checkCmd.Flags().Float64Var(&checkInput.HoistWeightLb, "hoist", 0, "Hoist and trolley weight (lb) [required]")
	checkCmd.Flags().Float64Var(&checkInput.GirderWeightLb, "girder", 0, "Bridge girder weight (lb)")
	checkCmd.Flags().Float64Var(&checkInput.PanelWeightLb, "panel", 0, "Control panel weight (lb)")
	checkCmd.Flags().Float64Var(&checkInput.EndTruckWeightLb, "end-truck", 0, "End truck weight (lb)")
	checkCmd.Flags().IntVar(&checkInput.ColumnCount, "columns", 2, "Number of runway columns")
	checkCmd.Flags().Float64Var(&checkInput.RailHeightFt, "rail-height", 0, "Top of rail height (ft) [required]")
	checkCmd.Flags().Float64Var(&checkInput.WheelbaseFt, "wheelbase", 0, "Crane wheelbase (ft) [required]")
	checkCmd.Flags().Float64Var(&checkInput.SupportCentersFt, "support-centers", 0, "Runway support centers (ft) [required]")
	checkCmd.Flags().Float64Var(&checkInput.BridgeSpanFt, "bridge-span", 0, "Bridge span (ft) [required]")
	checkCmd.Flags().BoolVar(&checkInput.Freestanding, "freestanding", false, "Freestanding (unbraced) columns")
	checkCmd.Flags().BoolVar(&checkInput.CappedSystem, "capped", false, "Use the capped (W + channel) catalog")
	checkCmd.Flags().Float64Var(&checkInput.HoistSpeedFPM, "hoist-speed", 0, "Hoist speed (fpm), 0 for default impact")

	checkCmd.MarkFlagRequired("capacity")
	checkCmd.MarkFlagRequired("hoist")
	checkCmd.MarkFlagRequired("rail-height")
	checkCmd.MarkFlagRequired("wheelbase")
	checkCmd.MarkFlagRequired("support-centers")
	checkCmd.MarkFlagRequired("bridge-span")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := runway.NewConfiguration(checkInput)
	if err != nil {
		return err
	}
	set := catalog.Load()
	res, err := runway.Analyze(set, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Selected beam\t%s (%.1f lb/ft)\n", res.Selected.Designation, res.Selected.Weight)
	fmt.Fprintf(w, "Impact factor\t%.3f\n", cfg.ImpactFactor)
	fmt.Fprintf(w, "Max wheel load\t%.0f lb\n", cfg.MaxWheelLoadLb)
	fmt.Fprintf(w, "k1 / k2\t%.3f / %.3f\n", res.K1, res.K2)
	fmt.Fprintf(w, "Equivalent concentrated load\t%.0f lb\n", res.ECLLb)
	fmt.Fprintf(w, "Runway beam weight\t%.0f lb\n", res.RunwayBeamWeightLb)
	fmt.Fprintf(w, "Column OTM\t%.2f kip-ft\n", res.ColumnOTMKipFt)
	fmt.Fprintf(w, "Foundation OTM\t%.2f kip-ft\n", res.FoundationOTMKipFt)
	fmt.Fprintf(w, "Column load on foundation\t%.2f kip\n", res.ColumnFoundationLoadKip)
	fmt.Fprintf(w, "Lateral deflection\t%.4f in (limit %.4f)\t%s\n",
		res.LateralDeflectionIn, res.LateralDeflectionLimitIn, verdict(res.LateralDeflectionOK))
	fmt.Fprintf(w, "Longitudinal deflection\t%.4f in (limit %.4f)\t%s\n",
		res.LongitudinalDeflectionIn, res.LongitudinalDeflLimitIn, verdict(res.LongitudinalDeflectionOK))
	fmt.Fprintf(w, "Bending stress\t%.0f psi (limit 24000)\t%s\n", res.BendingStressPsi, verdict(res.BendingStressOK))
	fmt.Fprintf(w, "Axial unity\t%.3f (limit 1.0)\t%s\n", res.UnityRatio, verdict(res.UnityOK))
	fmt.Fprintf(w, "Overall\t\t%s\n", verdict(res.OverallPass))
	w.Flush()

	fmt.Println("\nCandidates (lightest first):")
	for _, b := range res.Candidates {
		cap, _ := set.Capacity(b.Designation, cfg.BridgeSpanFt, cfg.CappedSystem)
		fmt.Printf("  %-20s %7.1f lb/ft  %8.0f lb\n", b.Designation, b.Weight, cap)
	}
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
