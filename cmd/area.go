package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/harmonic-analysis/pkg/geometry"
)

var areaRadius float64

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Print the area of a circle",
	Long: `Print π·r² for a non-negative radius.

Examples:
  harmonic-analysis area --radius 2.3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		area, err := geometry.AreaCirc(areaRadius)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), area)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().Float64Var(&areaRadius, "radius", 2.3, "circle radius")
}
