package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/amedev/sheetscout/internal/ui/styles"
	"github.com/amedev/sheetscout/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sheetscout",
	Short: "A terminal viewer for spreadsheets with one-key web search",
	Long: `sheetscout opens xlsx workbooks and CSV files in an interactive
terminal grid. Filter rows as you type, sort any column, and launch a
web search for the selected cell without leaving the keyboard.

Configuration (search engines, defaults) lives in TOML files under the
platform config directory; run "sheetscout engines" to see the search
engine list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		var appErr *util.AppError
		if errors.As(err, &appErr) {
			fmt.Fprintln(os.Stderr, appErr.Format())
		} else {
			fmt.Fprintln(os.Stderr, styles.ErrorMsg(err.Error()))
		}
		return err
	}
	return nil
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.SetVersionTemplate(fmt.Sprintf("sheetscout version %s\n  commit: %s\n  built:  %s\n", Version, CommitSHA, BuildDate))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor {
			styles.SetNoColor(true)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newViewCmd(),
		newSheetsCmd(),
		newEnginesCmd(),
		newCompletionCmd(),
	)
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sheetscout.

To load completions:

Bash:
  $ source <(sheetscout completion bash)

Zsh:
  $ sheetscout completion zsh > "${fpath[1]}/_sheetscout"

Fish:
  $ sheetscout completion fish | source

PowerShell:
  PS> sheetscout completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sheetscout version %s\n", Version)
			fmt.Printf("  commit: %s\n", CommitSHA)
			fmt.Printf("  built:  %s\n", BuildDate)
		},
	}
}
