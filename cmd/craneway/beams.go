package main

import (
	"fmt"

	"Craneway/internal/calc/runway"
	"Craneway/internal/catalog"

	"github.com/spf13/cobra"
)

var (
	beamsLoad   float64
	beamsSpan   float64
	beamsCapped bool
	beamsLimit  int

	capacityBeam   string
	capacitySpan   float64
	capacityCapped bool
)

var beamsCmd = &cobra.Command{
	Use:   "beams",
	Short: "List the lightest beams adequate for a load and span",
	RunE: func(cmd *cobra.Command, args []string) error {
		set := catalog.Load()
		found := runway.FindTopAdequate(set, beamsLoad, beamsSpan, beamsCapped, beamsLimit)
		if len(found) == 0 {
			return fmt.Errorf("no adequate beam for %.0f lb over %.1f ft", beamsLoad, beamsSpan)
		}
		for _, b := range found {
			cap, _ := set.Capacity(b.Designation, beamsSpan, beamsCapped)
			fmt.Printf("%-20s %7.1f lb/ft  %8.0f lb\n", b.Designation, b.Weight, cap)
		}
		return nil
	},
}

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Look up a beam's allowable load at a span",
	RunE: func(cmd *cobra.Command, args []string) error {
		set := catalog.Load()
		value, ok := set.Capacity(capacityBeam, capacitySpan, capacityCapped)
		if !ok {
			min, max, known := set.SpanRange(capacityBeam, capacityCapped)
			if !known {
				return fmt.Errorf("unknown beam %q", capacityBeam)
			}
			return fmt.Errorf("span %.1f ft outside tabulated range [%d, %d]", capacitySpan, min, max)
		}
		fmt.Printf("%s at %.1f ft: %.0f lb\n", capacityBeam, capacitySpan, value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(beamsCmd)
	beamsCmd.Flags().Float64Var(&beamsLoad, "load", 0, "Required load (lb) [required]")
	beamsCmd.Flags().Float64Var(&beamsSpan, "span", 0, "Span between supports (ft) [required]")
	beamsCmd.Flags().BoolVar(&beamsCapped, "capped", false, "Search the capped catalog")
	beamsCmd.Flags().IntVar(&beamsLimit, "limit", 5, "Max number of candidates")
	beamsCmd.MarkFlagRequired("load")
	beamsCmd.MarkFlagRequired("span")

	rootCmd.AddCommand(capacityCmd)
	capacityCmd.Flags().StringVar(&capacityBeam, "beam", "", "Beam designation [required]")
	capacityCmd.Flags().Float64Var(&capacitySpan, "span", 0, "Span between supports (ft) [required]")
	capacityCmd.Flags().BoolVar(&capacityCapped, "capped", false, "Look up in the capped catalog")
	capacityCmd.MarkFlagRequired("beam")
	capacityCmd.MarkFlagRequired("span")
}
