package cli

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amedev/sheetscout/internal/config"
	"github.com/amedev/sheetscout/internal/util"
)

// newLogger opens the session log file under the config directory. The TUI
// owns the terminal, so logs never go to stderr; a logger that failed to
// open its file silently discards. Every session gets a ULID so overlapping
// runs can be told apart in one file.
func newLogger(cfgDir string, verbose bool) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	f, err := os.OpenFile(config.LogPath(cfgDir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	return logger.With("session", util.NewSessionID()), closeFn
}
