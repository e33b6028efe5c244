package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rustyeddy/lotsize/calculator"
	"github.com/rustyeddy/lotsize/signal"
)

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(24)

	valueStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// renderResult draws the result panel.
func renderResult(calc calculator.Calculation) string {
	title := titleStyle.Render(fmt.Sprintf("%s %s", strings.ToUpper(calc.Signal.Direction.String()), calc.Result.Instrument))

	var b strings.Builder
	b.WriteString(row("Stop Distance (pips)", calc.Result.Pips.String()))
	for _, f := range calc.Result.Display() {
		b.WriteString("\n")
		b.WriteString(row(f.Label, f.Value))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, b.String()))
}

// renderSignal draws a parse preview.
func renderSignal(sig signal.TradeSignal, pips string) string {
	var b strings.Builder
	b.WriteString(row("Instrument", sig.Instrument.String()))
	b.WriteString("\n" + row("Direction", sig.Direction.String()))
	b.WriteString("\n" + row("Entry", sig.Entry.String()))
	b.WriteString("\n" + row("Stop Loss", sig.StopLoss.String()))
	b.WriteString("\n" + row("Stop Distance (pips)", pips))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Signal"), b.String()))
}

func renderError(err error) string {
	return errorStyle.Render("✗ " + err.Error())
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
