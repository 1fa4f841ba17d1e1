package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andreaperaltro/camo/pkg/pattern"
	"github.com/andreaperaltro/camo/pkg/raster"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accentOlive)
	listNormalStyle   = lipgloss.NewStyle().Foreground(accentBright)
	listDimStyle      = lipgloss.NewStyle().Foreground(accentMuted)
)

// familyBlurbs give each entry in the picker a one-line description.
var familyBlurbs = map[pattern.Family]string{
	pattern.Woodland:    "organic blobs, forest greens and browns",
	pattern.Desert:      "sparse rounded patches on sand tones",
	pattern.Urban:       "angular shard shapes in gray scale",
	pattern.Digital:     "pixelated blocks, cellular smoothing",
	pattern.Flecktarn:   "dense small speckles, high frequency",
	pattern.TigerStripe: "horizontal banded stripes with offshoots",
}

// FamilyListModel is the bubbletea model for interactive family selection.
type FamilyListModel struct {
	Families []pattern.Family
	Cursor   int
	Selected pattern.Family
}

// NewFamilyListModel creates a picker over all supported pattern families.
func NewFamilyListModel() FamilyListModel {
	return FamilyListModel{Families: pattern.Families()}
}

func (m FamilyListModel) Init() tea.Cmd {
	return nil
}

func (m FamilyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Families)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Families[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FamilyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Pattern Family"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, fam := range m.Families {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-12s %s %s", cursor, fam, paletteStrip(fam), listDimStyle.Render(familyBlurbs[fam]))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Families))))

	return b.String()
}

// paletteStrip renders the family's preset palette as colored blocks.
func paletteStrip(f pattern.Family) string {
	var b strings.Builder
	for _, c := range pattern.PresetColors(f) {
		hex := raster.FormatHex(c)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  "))
	}
	return b.String()
}

// pickFamily runs the interactive picker and returns the chosen family name.
// An empty string means the user quit without selecting.
func pickFamily() (string, error) {
	model, err := tea.NewProgram(NewFamilyListModel()).Run()
	if err != nil {
		return "", err
	}
	final, ok := model.(FamilyListModel)
	if !ok || final.Selected == "" {
		return "", nil
	}
	return string(final.Selected), nil
}
