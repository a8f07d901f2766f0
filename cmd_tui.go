package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sourdough-calculator/domain"
	"sourdough-calculator/service"
	"sourdough-calculator/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive calculator",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	content, err := newContentService()
	if err != nil {
		return err
	}

	renderer, err := newMarkdownRenderer(78)
	if err != nil {
		return err
	}
	guide, err := renderer.Render(service.GuideMarkdown(content.Guide()))
	if err != nil {
		return err
	}
	troubleshooting, err := renderer.Render(service.TroubleshootingMarkdown(content.Troubleshooting()))
	if err != nil {
		return err
	}

	site := content.Site()
	model := tui.New(domain.NewCalculatorState(), tui.Pages{
		Title:           site.Title,
		Subtitle:        site.Description,
		Guide:           guide,
		Troubleshooting: troubleshooting,
	})

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
	return err
}
