// package ui styles console output with [lipgloss]
package ui
