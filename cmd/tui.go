package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shristy0611/Wisdom-Bridge/internal/config"
	"github.com/shristy0611/Wisdom-Bridge/internal/guidance"
	"github.com/shristy0611/Wisdom-Bridge/internal/library"
	"github.com/shristy0611/Wisdom-Bridge/internal/store"
	"github.com/shristy0611/Wisdom-Bridge/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logging goes to a file: stderr would corrupt the TUI.
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.SetReportTimestamp(true)
		log.SetTimeFormat(time.RFC3339)
	}

	s, err := store.Open(config.StorePath())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	lib := library.New(s, guidance.New(cfg), cfg.Language)

	return tui.Run(lib, version)
}

func openLogFile() (*os.File, error) {
	path := config.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
