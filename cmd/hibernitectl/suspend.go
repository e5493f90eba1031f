package main

import (
	"fmt"

	"github.com/hibernite/hibernite/pkg/cli"
	"github.com/hibernite/hibernite/pkg/proc"
	"github.com/spf13/cobra"
)

func init() {
	ctlCommand.AddCommand(&suspendCmd)
}

var suspendCmd = cobra.Command{
	Use:   "suspend",
	Short: "Freeze the supervised workload",
	Long:  "This command stops every process in the workload's process group without terminating it. Signals sent while frozen are queued and replayed on resume.",

	RunE: func(cmd *cobra.Command, args []string) error {
		resp := cli.NewAPIClient(apiAddress).Suspend()
		if resp.Err() != nil {
			return fmt.Errorf("failed to suspend workload: %w", resp.Err())
		}

		var status proc.Status
		if err := resp.Decode(&status); err != nil {
			return fmt.Errorf("failed to decode status response: %w", err)
		}

		fmt.Println(styleSuccessBox.Render(fmt.Sprintf(
			"workload pid %d is now %s (generation %d); resume it with %q",
			status.Pid, status.State, status.Generation, cmd.Parent().CommandPath()+" resume",
		)))
		return nil
	},
}
