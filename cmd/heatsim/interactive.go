package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/heatsim/internal/config"
	"github.com/san-kum/heatsim/internal/diffusion"
	"github.com/san-kum/heatsim/internal/experiment"
	"github.com/san-kum/heatsim/internal/gui"
	"github.com/san-kum/heatsim/internal/viz"
)

func buildGrid(cfg *config.Config) (*diffusion.Grid, error) {
	src, err := experiment.BuildSource(cfg)
	if err != nil {
		return nil, err
	}
	return diffusion.New(src, cfg.Alpha)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	grid, err := buildGrid(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(grid, viz.Options{
		Title:         "heatsim",
		Palette:       cfg.Palette,
		Theme:         theme,
		FPS:           cfg.FPS,
		StepsPerFrame: cfg.StepsPerFrame,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	grid, err := buildGrid(cfg)
	if err != nil {
		return err
	}

	gui.Run(grid, gui.Options{
		Title:         "heatsim",
		Palette:       cfg.Palette,
		Scale:         cfg.Scale,
		FPS:           cfg.FPS,
		StepsPerFrame: cfg.StepsPerFrame,
	})
	return nil
}
