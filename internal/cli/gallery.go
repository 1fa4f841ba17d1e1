package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	camoerrors "github.com/andreaperaltro/camo/pkg/errors"
	"github.com/andreaperaltro/camo/pkg/gallery"
)

// galleryCommand creates the gallery management command.
func (c *CLI) galleryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse saved textures",
	}

	cmd.AddCommand(c.galleryListCommand())
	cmd.AddCommand(c.galleryShowCommand())
	cmd.AddCommand(c.galleryRemoveCommand())

	return cmd
}

func (c *CLI) galleryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved textures",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newGallery(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			entries, err := store.List(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("Gallery is empty")
				printNextStep("Save a texture", "camo generate woodland --save")
				return nil
			}

			for _, e := range entries {
				seam := StyleSuccess.Render("seamless")
				if !e.Seamless {
					seam = StyleWarning.Render("seams")
				}
				fmt.Printf("%s  %-12s seed %-20d %s  %s\n",
					StyleHighlight.Render(e.ID), e.Family, e.Options.Seed,
					seam, StyleDim.Render(e.CreatedAt.Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

func (c *CLI) galleryShowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved texture and export its PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newGallery(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			entry, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}

			printKeyValue("family", entry.Family)
			printKeyValue("seed", fmt.Sprintf("%d", entry.Options.Seed))
			printKeyValue("scale", fmt.Sprintf("%.0f", entry.Options.Scale))
			printKeyValue("complexity", fmt.Sprintf("%.0f", entry.Options.Complexity))
			printKeyValue("seamless", fmt.Sprintf("%t", entry.Seamless))
			printKeyValue("created", entry.CreatedAt.Format("2006-01-02 15:04:05"))
			for _, col := range entry.Options.Colors {
				printSwatch(col)
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("camo-%s-%d.png", entry.Family, entry.Options.Seed)
			}
			if err := os.WriteFile(path, entry.PNG, 0644); err != nil {
				return camoerrors.Wrap(camoerrors.ErrCodeInvalidPath, err, "write %s", path)
			}
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path")
	return cmd
}

func (c *CLI) galleryRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a saved texture",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newGallery(ctx)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			if err := store.Delete(ctx, args[0]); err != nil {
				if errors.Is(err, gallery.ErrNotFound) {
					printError("No gallery entry %s", args[0])
					return nil
				}
				return err
			}
			printSuccess("Removed %s", args[0])
			return nil
		},
	}
}
