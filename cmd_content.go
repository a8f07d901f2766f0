package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"sourdough-calculator/service"
)

var plainMarkdown bool

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the sourdough baking guide",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := newContentService()
		if err != nil {
			return err
		}
		return printMarkdown(cmd, service.GuideMarkdown(content.Guide()))
	},
}

var troubleshootCmd = &cobra.Command{
	Use:   "troubleshoot [query]",
	Short: "Show the troubleshooting reference, or search it",
	Long: `Without arguments prints the whole troubleshooting reference.
With a query prints only the entries that mention every word of it.

Example:
  sourdough troubleshoot dense crumb`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := newContentService()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return printMarkdown(cmd, service.TroubleshootingMarkdown(content.Troubleshooting()))
		}
		query := strings.Join(args, " ")
		matches, err := content.SearchTroubleshooting(query)
		if err != nil {
			return err
		}
		return printMarkdown(cmd, service.MatchesMarkdown(query, matches))
	},
}

func init() {
	for _, c := range []*cobra.Command{guideCmd, troubleshootCmd} {
		c.Flags().BoolVar(&plainMarkdown, "plain", false, "print raw markdown")
	}
}

func newMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

func printMarkdown(cmd *cobra.Command, md string) error {
	out := cmd.OutOrStdout()
	if plainMarkdown {
		_, err := fmt.Fprint(out, md)
		return err
	}
	renderer, err := newMarkdownRenderer(80)
	if err != nil {
		return err
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
