// Package tui is the interactive terminal form of the calculator.
//
// The [Model] owns one [domain.CalculatorState] for the life of the
// program. Keystrokes edit the inputs; only enter recalculates, so the
// results block keeps showing the last calculation until then.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sourdough-calculator/domain"
	"sourdough-calculator/service"
)

type Tab int

const (
	TabCalculator Tab = iota
	TabGuide
	TabTroubleshooting
)

var tabNames = []string{"Calculator", "Baking Guide", "Troubleshooting"}

var fieldLabels = map[string]string{
	domain.FieldDoughWeight:       "Dough Weight (g)",
	domain.FieldPrefermentedFlour: "Pre-fermented Flour (g)",
	domain.FieldLevainPercentage:  "Levain (%)",
	domain.FieldHydration:         "Hydration (%)",
	domain.FieldScale:             "Scale (x)",
}

// Pages are the already rendered documents shown on the guide tabs.
type Pages struct {
	Title           string
	Subtitle        string
	Guide           string
	Troubleshooting string
}

type Model struct {
	state    domain.CalculatorState
	fields   []string
	inputs   []textinput.Model
	focus    int
	err      error
	tab      Tab
	pages    Pages
	viewport viewport.Model
	width    int
	height   int
}

func New(state domain.CalculatorState, pages Pages) Model {
	fields := domain.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, name := range fields {
		ti := textinput.New()
		ti.Prompt = "› "
		ti.CharLimit = 16
		ti.Width = 12
		v, _ := state.Inputs.Field(name)
		ti.SetValue(formatNumber(v))
		inputs[i] = ti
	}
	inputs[0].Focus()

	return Model{
		state:    state,
		fields:   fields,
		inputs:   inputs,
		pages:    pages,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the calculator state as currently held by the form.
func (m Model) State() domain.CalculatorState { return m.state }

func (m Model) Err() error { return m.err }

func (m Model) ActiveTab() Tab { return m.tab }

func (m Model) Focused() string { return m.fields[m.focus] }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+g":
			return m.openTab(TabGuide), nil
		case "ctrl+t":
			return m.openTab(TabTroubleshooting), nil
		}
		if m.tab != TabCalculator {
			return m.updateDocument(msg)
		}
		return m.updateForm(msg)
	}

	if m.tab != TabCalculator {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		return m.moveFocus(1), nil
	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	case "enter":
		state, err := service.Recalculate(m.state)
		m.state, m.err = state, err
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	// Inputs follow every edit; the recipe does not.
	name := m.fields[m.focus]
	if in, err := m.state.Inputs.With(name, parseNumber(m.inputs[m.focus].Value())); err == nil {
		m.state = m.state.WithInputs(in)
	}
	return m, cmd
}

func (m Model) updateDocument(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.tab = TabCalculator
		return m, nil
	case "tab":
		if m.tab == TabGuide {
			return m.openTab(TabTroubleshooting), nil
		}
		return m.openTab(TabGuide), nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) openTab(tab Tab) Model {
	m.tab = tab
	switch tab {
	case TabGuide:
		m.viewport.SetContent(m.pages.Guide)
	case TabTroubleshooting:
		m.viewport.SetContent(m.pages.Troubleshooting)
	}
	m.viewport.GotoTop()
	return m
}

func (m Model) moveFocus(delta int) Model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	if m.tab != TabCalculator {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • tab switch page • esc calculator • ctrl+c quit"))
		return b.String()
	}

	for i, name := range m.fields {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[name]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.state.Recipe != nil {
		b.WriteString("\n")
		b.WriteString(RenderRecipe(*m.state.Recipe))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter calculate • tab/↑/↓ move • ctrl+g guide • ctrl+t troubleshooting • esc quit"))
	return b.String()
}

func (m Model) header() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	title := titleStyle.Render(m.pages.Title)
	if m.pages.Subtitle != "" {
		title += "  " + subtitleStyle.Render(m.pages.Subtitle)
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderRecipe draws the results block.
func RenderRecipe(r domain.RecipeOutputs) string {
	cell := func(label string, grams int64) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			resultLabelStyle.Render(label),
			resultValueStyle.Render(fmt.Sprintf("%dg", grams)),
		)
	}
	gap := "   "
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("Strong White Flour", r.Flour), gap,
		cell("Water", r.Water), gap,
		cell("Salt", r.Salt), gap,
		cell("Levain", r.Levain),
	)
	return resultBoxStyle.Render(titleStyle.Render("Recipe Results") + "\n" + row)
}

// parseNumber reads a form field. Blank means zero and anything that is
// not a number becomes NaN, which the calculator rejects.
func parseNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
