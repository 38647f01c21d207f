package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/amedev/sheetscout/internal/config"
	"github.com/amedev/sheetscout/internal/grid"
	"github.com/amedev/sheetscout/internal/ui/viewer"
	"github.com/amedev/sheetscout/internal/util"
	"github.com/amedev/sheetscout/internal/workbook"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Open a workbook in the interactive grid",
		Long: `Opens an xlsx workbook or CSV file in the interactive terminal grid.

When stdout is not a terminal the grid is printed as a plain aligned
table instead, so the command composes with pipes:

  sheetscout view data.xlsx --filter tokyo | less`,
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}

	cmd.Flags().StringP("sheet", "s", "", "Sheet to open (default: first sheet)")
	cmd.Flags().StringP("filter", "f", "", "Apply a filter before displaying")
	cmd.Flags().Bool("plain", false, "Print a plain table instead of the interactive grid")

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	sheet, _ := cmd.Flags().GetString("sheet")
	filter, _ := cmd.Flags().GetString("filter")
	plain, _ := cmd.Flags().GetBool("plain")
	verbose, _ := cmd.Flags().GetBool("verbose")

	wb, err := workbook.Open(args[0])
	if err != nil {
		return util.OpenWorkbookError(args[0], err)
	}
	defer wb.Close()

	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printPlain(wb, sheet, filter)
	}

	cfgDir := config.Dir()
	// Config is a convenience; missing or unwritable files still leave the
	// viewer running on compiled-in defaults.
	_ = config.EnsureDefaultFiles(cfgDir)
	cfg := config.Load(config.ConfigPath(cfgDir))
	engines := config.LoadEngines(config.EnginesPath(cfgDir))

	logger, closeLog := newLogger(cfgDir, verbose)
	defer closeLog()
	logger.Info("session start", "file", args[0])

	return viewer.Run(viewer.Options{
		Workbook:  wb,
		Sheet:     sheet,
		Filter:    filter,
		ConfigDir: cfgDir,
		Config:    cfg,
		Engines:   engines,
		Logger:    logger,
	})
}

func printPlain(wb *workbook.Workbook, sheet, filter string) error {
	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return util.ErrNoSheets
	}
	name := sheets[0]
	if sheet != "" {
		found := false
		for _, s := range sheets {
			if s == sheet {
				name = s
				found = true
				break
			}
		}
		if !found {
			return util.SheetNotFoundError(sheet, sheets)
		}
	}

	raw, err := wb.SheetRows(name)
	if err != nil {
		return err
	}
	g := grid.Load(raw)
	if filter != "" {
		g.Filter(filter)
	}
	return viewer.PrintPlain(os.Stdout, g)
}
