package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amedev/sheetscout/internal/config"
	"github.com/amedev/sheetscout/internal/ui/styles"
)

func newEnginesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engines",
		Short: "List the configured search engines",
		Long: `Lists the search engines from engines.toml in menu order. The entry
marked with * is the current default (the enter key in the viewer);
the one marked with "a" is the alternate engine.

Edit the files directly to add engines; each URL must contain the
{query} placeholder.`,
		RunE: runEngines,
	}
	cmd.Flags().Bool("paths", false, "Print the config file locations")
	return cmd
}

func runEngines(cmd *cobra.Command, args []string) error {
	showPaths, _ := cmd.Flags().GetBool("paths")

	dir := config.Dir()
	if err := config.EnsureDefaultFiles(dir); err != nil {
		return err
	}

	if showPaths {
		fmt.Println(config.ConfigPath(dir))
		fmt.Println(config.EnginesPath(dir))
		return nil
	}

	cfg := config.Load(config.ConfigPath(dir))
	engines := config.LoadEngines(config.EnginesPath(dir))

	for _, e := range engines {
		marker := " "
		switch e.Name {
		case cfg.General.DefaultEngine:
			marker = styles.Cyan("*")
		case cfg.General.AltEngine:
			marker = styles.Cyan("a")
		}
		fmt.Printf("%s %-14s %s\n", marker, e.Name, styles.Mute(e.URL))
	}
	return nil
}
