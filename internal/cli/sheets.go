package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amedev/sheetscout/internal/ui/styles"
	"github.com/amedev/sheetscout/internal/util"
	"github.com/amedev/sheetscout/internal/workbook"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <file>",
		Short: "List the sheets in a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := workbook.Open(args[0])
			if err != nil {
				return util.OpenWorkbookError(args[0], err)
			}
			defer wb.Close()

			names := wb.SheetNames()
			if len(names) == 0 {
				return util.ErrNoSheets
			}
			for i, name := range names {
				fmt.Printf("%s %s\n", styles.Mute(fmt.Sprintf("%2d.", i+1)), name)
			}
			return nil
		},
	}
}
