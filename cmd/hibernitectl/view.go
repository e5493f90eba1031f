package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hibernite/hibernite/pkg/proc"
)

func workloadStatusLine(status proc.Status) string {
	switch {
	case status.Exited:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleStopped.Render("◼︎"), " workload (",
			styleStopped.Render("exited"), ")",
		)
	case status.State == proc.StateSuspended.String():
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleSuspended.Render("❄"), " workload (",
			styleSuspended.Render("suspended"), "; generation=",
			styleHighlight.Render(fmt.Sprintf("%d", status.Generation)), "; pid=",
			styleHighlight.Render(fmt.Sprintf("%d", status.Pid)), ")",
		)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleRunning.Render("▶︎"), " workload (",
			styleRunning.Render(status.State), "; pid=",
			styleHighlight.Render(fmt.Sprintf("%d", status.Pid)), ")",
		)
	}
}

func wrapNotSet(s string) string {
	if s == "" {
		return styleNotSet.Render("<none>")
	}

	return styleHighlight.Render(s)
}
