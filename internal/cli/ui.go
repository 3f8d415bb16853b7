package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle is for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleNumber is for counts and step numbers.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim is for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleSuccess is for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning is for warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", StyleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", StyleWarning.Render(iconWarning), fmt.Sprintf(format, args...))
}
