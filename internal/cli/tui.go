package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/lotsize/calculator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}).
			Padding(0, 2).
			Bold(true).
			MarginBottom(1)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"})
)

const (
	actionCalculate = "calculate"
	actionReset     = "reset"
	actionQuit      = "quit"
)

func newTUICmd(rc *RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive calculator form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rc)
			if err != nil {
				return err
			}
			defer a.Close()
			return runTUI(cmd, a)
		},
	}
}

func runTUI(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	in := a.input("", "", "")
	saved := a.session.Preferences()
	if saved.AccountBalance != "" {
		in.Balance = saved.AccountBalance
	}
	if saved.RiskPercentage != "" {
		in.RiskPercent = saved.RiskPercentage
	}

	var panel string
	for {
		fmt.Fprint(out, "\033[H\033[2J")
		fmt.Fprintln(out, headerStyle.Render("LOT SIZE CALCULATOR"))
		if panel != "" {
			fmt.Fprintln(out, panel)
		} else {
			fmt.Fprintln(out, hintStyle.Render("Paste a signal such as: Buy NZDCAD 0.81250, SL 0.81050"))
		}

		action := actionCalculate
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Account Balance").
					Description(`e.g. "5,000 USD"`).
					Value(&in.Balance),
				huh.NewInput().
					Title("Risk Percentage").
					Value(&in.RiskPercent),
				huh.NewText().
					Title("Trade Signal").
					Value(&in.Signal),
				huh.NewSelect[string]().
					Options(
						huh.NewOption("Calculate", actionCalculate),
						huh.NewOption("Reset", actionReset),
						huh.NewOption("Quit", actionQuit),
					).
					Value(&action),
			),
		).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionReset:
			if err := a.session.Reset(ctx); err != nil {
				panel = renderError(err)
				continue
			}
			in = calculator.Input{}
			panel = ""
		default:
			calc, err := a.session.Calculate(ctx, in)
			if err != nil {
				// the previous result stays on display
				if prev, ok := a.session.Result(); ok {
					panel = lipgloss.JoinVertical(lipgloss.Left, renderResult(prev), renderError(err))
				} else {
					panel = renderError(err)
				}
				continue
			}
			panel = renderResult(calc)
		}
	}
}
