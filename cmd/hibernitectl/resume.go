package main

import (
	"fmt"

	"github.com/hibernite/hibernite/pkg/cli"
	"github.com/hibernite/hibernite/pkg/proc"
	"github.com/spf13/cobra"
)

func init() {
	resumeCmd.Flags().String("generation", "", "only resume this suspend generation; stale resumes are discarded by the init")
	ctlCommand.AddCommand(&resumeCmd)
}

var resumeCmd = cobra.Command{
	Use:   "resume",
	Short: "Thaw the supervised workload",
	Long:  "This command continues a suspended workload process group and replays the signals that were queued while it was frozen.",

	RunE: func(cmd *cobra.Command, args []string) error {
		generation, _ := cmd.Flags().GetString("generation")

		resp := cli.NewAPIClient(apiAddress).Resume(generation)
		if resp.Err() != nil {
			return fmt.Errorf("failed to resume workload: %w", resp.Err())
		}

		var status proc.Status
		if err := resp.Decode(&status); err != nil {
			return fmt.Errorf("failed to decode status response: %w", err)
		}

		fmt.Println(styleSuccessBox.Render(fmt.Sprintf(
			"workload pid %d is now %s (generation %d)",
			status.Pid, status.State, status.Generation,
		)))
		return nil
	},
}
