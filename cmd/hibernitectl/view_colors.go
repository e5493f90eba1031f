package main

import (
	"github.com/charmbracelet/lipgloss"
)

var colorSuccess = lipgloss.Color("#00B785")

var styleRunning = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var styleSuspended = lipgloss.NewStyle().Foreground(lipgloss.Color("#8dc7ff")).Bold(true)
var styleStopped = lipgloss.NewStyle().Foreground(lipgloss.Color("#e08dff")).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleNotSet = lipgloss.NewStyle().Foreground(lipgloss.Color("#5D689C"))

var styleSuccessBox = lipgloss.NewStyle().
	Padding(0, 1).
	Margin(1, 0).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorSuccess).
	Width(80)
