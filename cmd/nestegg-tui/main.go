package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nestegg/internal/calculation"
	"github.com/rgehrsitz/nestegg/internal/config"
	"github.com/rgehrsitz/nestegg/internal/domain"
	"github.com/rgehrsitz/nestegg/internal/output"
	"github.com/rgehrsitz/nestegg/internal/tui"
)

func main() {
	params := domain.DefaultInputParameters()

	// An optional plan file seeds the sliders
	if len(os.Args) > 1 {
		plan, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		params = plan.InputParameters
	}

	settings, err := config.LoadSettings(os.Getenv(config.EnvPrefix+"_SETTINGS"), nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	currency, err := output.NewCurrencyFormatter(settings.Locale, settings.Currency)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	engine, err := calculation.NewCachedEngine(nil, settings.Cache.Size)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(tui.Config{
		Projector: engine,
		Currency:  currency,
		Params:    params,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
