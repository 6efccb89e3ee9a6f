package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/dataset"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/report"
	"github.com/Rayan2bdu/Network-5G-slicing-performance-in-NS3/src/types"
)

func main() {
	var dir string
	var slice string
	cmd := &cobra.Command{
		Use:          "slicesummary",
		Short:        "Print per-group means and row counts of the six result tables",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := dataset.Unify(dir)
			if err != nil {
				return err
			}
			if slice == "" {
				return report.WriteSummary(cmd.OutOrStdout(), ds)
			}
			s, err := types.ParseSliceType(slice)
			if err != nil {
				return err
			}
			for _, c := range types.Configurations {
				rows := ds.Select(s, c)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d devices\n", s, c, len(rows))
				for _, r := range rows {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %10.3f %8.3f %8.3f\n", r.Device, r.ThroughputMbps, r.PacketLossPct, r.EnergyJ)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory holding the six result tables")
	cmd.Flags().StringVar(&slice, "slice", "", "Optional slice filter: URLLC, eMBB or mMTC (lists devices)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
