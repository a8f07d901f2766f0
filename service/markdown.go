package service

import (
	"fmt"
	"strings"

	"sourdough-calculator/domain"
)

// GuideMarkdown renders the guide with numbered step headings.
func GuideMarkdown(g domain.Guide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", g.Title, g.Intro)
	for i, step := range g.Steps {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", i+1, step.Title)
		writeParagraphs(&b, step.Paragraphs)
		for _, bullet := range step.Bullets {
			fmt.Fprintf(&b, "- %s\n", bullet)
		}
	}
	return b.String()
}

func TroubleshootingMarkdown(t domain.Troubleshooting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s", t.Title, t.Intro)
	if t.Source.Name != "" {
		fmt.Fprintf(&b, " Content adapted from [%s](%s).", t.Source.Name, t.Source.URL)
	}
	b.WriteString("\n")
	for _, section := range t.Sections {
		fmt.Fprintf(&b, "\n## %s\n", section.Title)
		for _, entry := range section.Entries {
			fmt.Fprintf(&b, "\n### %s\n\n", entry.Title)
			writeParagraphs(&b, entry.Paragraphs)
		}
	}
	return b.String()
}

func MatchesMarkdown(query string, matches []domain.TroubleshootingMatch) string {
	var b strings.Builder
	if len(matches) == 0 {
		fmt.Fprintf(&b, "No troubleshooting entries match %q.\n", query)
		return b.String()
	}
	for _, m := range matches {
		fmt.Fprintf(&b, "## %s\n\n_%s_\n\n", m.Entry.Title, m.Section)
		writeParagraphs(&b, m.Entry.Paragraphs)
	}
	return b.String()
}

func writeParagraphs(b *strings.Builder, paragraphs []string) {
	for _, p := range paragraphs {
		b.WriteString(strings.TrimSpace(p))
		b.WriteString("\n\n")
	}
}
