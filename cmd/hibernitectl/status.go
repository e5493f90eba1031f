package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hibernite/hibernite/pkg/cli"
	"github.com/hibernite/hibernite/pkg/proc"
	"github.com/spf13/cobra"
)

func init() {
	statusCmd.Flags().BoolP("json", "j", false, "Print workload status as JSON")
	ctlCommand.AddCommand(&statusCmd)
}

var styleStatusMainLine = lipgloss.NewStyle().Margin(1, 0)
var styleStatusDetails = lipgloss.NewStyle().PaddingLeft(2)
var styleStatusLeftColumn = lipgloss.NewStyle().Width(20)

var statusCmd = cobra.Command{
	Use:   "status",
	Short: "Show workload status",
	Long:  "This command shows the suspend state of the hibernite-supervised workload.",

	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient := cli.NewAPIClient(apiAddress)

		resp := apiClient.Status()
		if resp.Err() != nil {
			return fmt.Errorf("failed to get workload status: %w", resp.Err())
		}

		if printJSON, _ := cmd.Flags().GetBool("json"); printJSON {
			if err := resp.Print(); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
			return nil
		}

		var status proc.Status
		if err := resp.Decode(&status); err != nil {
			return fmt.Errorf("failed to decode status response: %w", err)
		}

		fmt.Println(styleStatusMainLine.Render(workloadStatusLine(status)))
		fmt.Println(styleStatusDetails.Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				styleStatusLeftColumn.Render("generation:"),
				styleHighlight.Render(fmt.Sprintf("%d", status.Generation)),
			),
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				styleStatusLeftColumn.Render("queued signals:"),
				wrapNotSet(strings.Join(status.QueuedSignals, ", ")),
			),
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				styleStatusLeftColumn.Render("orphans reaped:"),
				styleHighlight.Render(fmt.Sprintf("%d", status.OrphansReaped)),
			),
		)))

		return nil
	},
}
