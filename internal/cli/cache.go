package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact cache",
	}
	cmd.AddCommand(c.cacheClearCommand(), c.cachePathCommand())
	return cmd
}

// resolveCacheDir honors an explicit dir from the profile before falling
// back to the XDG default, matching how the runner's cache is opened.
func (c *CLI) resolveCacheDir() (string, error) {
	if cfg, err := c.loadConfig(); err == nil && cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cacheDir()
}

func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.resolveCacheDir()
			if err != nil {
				return fmt.Errorf("resolve cache dir: %w", err)
			}

			shards, err := os.ReadDir(dir)
			if os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read cache dir: %w", err)
			}

			removed := 0
			for _, shard := range shards {
				shardPath := filepath.Join(dir, shard.Name())
				if !shard.IsDir() {
					if os.Remove(shardPath) == nil {
						removed++
					}
					continue
				}
				entries, err := os.ReadDir(shardPath)
				if err != nil {
					continue
				}
				if err := os.RemoveAll(shardPath); err != nil {
					return fmt.Errorf("remove cache shard: %w", err)
				}
				removed += len(entries)
			}

			printSuccess("Cleared %d cached artifacts", removed)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.resolveCacheDir()
			if err != nil {
				return fmt.Errorf("resolve cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}
