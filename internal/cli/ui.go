package cli

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andreaperaltro/camo/pkg/raster"
)

// Terminal accent palette. The accent leans olive to match the subject
// matter; status colors follow the usual conventions.
var (
	accentOlive  = lipgloss.Color("64")
	accentGreen  = lipgloss.Color("35")
	accentAmber  = lipgloss.Color("220")
	accentRed    = lipgloss.Color("167")
	accentBright = lipgloss.Color("255")
	accentGray   = lipgloss.Color("245")
	accentMuted  = lipgloss.Color("240")
)

// Styles shared with the bubbletea views.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(accentOlive)
	StyleHighlight = lipgloss.NewStyle().Foreground(accentOlive)
	StyleDim       = lipgloss.NewStyle().Foreground(accentMuted)
	StyleValue     = lipgloss.NewStyle().Foreground(accentBright)
	StyleSuccess   = lipgloss.NewStyle().Foreground(accentGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(accentAmber)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(accentGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(accentRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(accentAmber)
	styleIconInfo    = lipgloss.NewStyle().Foreground(accentGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(accentOlive)

	styleKey = lipgloss.NewStyle().Foreground(accentGray).Width(12)
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render("✗") + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render("!") + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render("›") + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written output file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printSwatch shows a palette color as a filled terminal block next to its
// hex code.
func printSwatch(c color.RGBA) {
	hex := raster.FormatHex(c)
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
	fmt.Println("  " + block + " " + StyleValue.Render(hex))
}

// printTextureStats prints the one-line summary after a generation:
// seed, seam verdict, and whether the render came from cache.
func printTextureStats(seed int64, seamless, cached bool) {
	seam := StyleSuccess.Render("seamless")
	if !seamless {
		seam = StyleWarning.Render("visible seams")
	}
	origin := "fresh"
	if cached {
		origin = "cached"
	}
	parts := []string{fmt.Sprintf("seed %d", seed), seam, origin}
	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + StyleHighlight.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
