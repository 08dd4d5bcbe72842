package cmd

import (
	"PowerManager/internal/monitoring/cpu"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var snapshotJSON bool

// snapshotCmd prints one sample and exits
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the CPU usage measured over one tick",
	RunE: func(cmd *cobra.Command, args []string) error {
		sampler := cpu.NewSampler()
		sampler.Refresh()
		time.Sleep(cpu.TickInterval)
		sample := sampler.Refresh()

		out := cmd.OutOrStdout()
		if snapshotJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cpu.NewSnapshot(sample, time.Now()))
		}

		for _, line := range cpu.Format(sample).All() {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "Print the snapshot as JSON")
}
