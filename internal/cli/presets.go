package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreaperaltro/camo/pkg/pattern"
)

// presetsCommand creates the presets inspection command.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [family]",
		Short: "Show preset palettes and settings",
		Long: `Show the preset palette and slider settings for a pattern family.

Without an argument, all families are listed with their palettes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, fam := range pattern.Families() {
					printFamilyPresets(fam)
					printNewline()
				}
				return nil
			}

			fam, known := pattern.Resolve(args[0])
			if !known {
				printWarning("unknown family %q, showing %s", args[0], fam)
			}
			printFamilyPresets(fam)
			return nil
		},
	}
}

func printFamilyPresets(fam pattern.Family) {
	fmt.Println(StyleTitle.Render(string(fam)))
	for _, c := range pattern.PresetColors(fam) {
		printSwatch(c)
	}

	s := pattern.PresetSettings(fam)
	printKeyValue("scale", fmt.Sprintf("%.0f", s.Scale))
	printKeyValue("complexity", fmt.Sprintf("%.0f", s.Complexity))
	printKeyValue("contrast", fmt.Sprintf("%.0f", s.Contrast))
	printKeyValue("sharpness", fmt.Sprintf("%.0f", s.Sharpness))
	switch fam {
	case pattern.Digital:
		printKeyValue("block size", fmt.Sprintf("%d", s.BlockSize))
		printKeyValue("blockiness", fmt.Sprintf("%.1f", s.Blockiness))
	case pattern.TigerStripe:
		printKeyValue("orientation", fmt.Sprintf("%.0f°", s.OrientationDeg))
	}
}
