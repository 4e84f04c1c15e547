package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"

	"github.com/miajio/hebmorph/cmd/hebmorph/flag"
	"github.com/miajio/hebmorph/pkg/badger"
)

var (
	dataDir    string
	logLevel   string
	gcInterval time.Duration

	rootCmd = &cobra.Command{
		Use:   "hebmorph",
		Short: "Hebrew morphological analyzer",
		Long:  `Import a Hebrew dictionary into a local store and analyze text against it`,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initLogger(logLevel)
		},
		SilenceUsage: true,
	}
)

func init() {
	flag.DataDir(rootCmd, &dataDir)
	flag.LogLevel(rootCmd, &logLevel)
	flag.GCInterval(rootCmd, &gcInterval)

	rootCmd.AddCommand(importCmd, addCmd, removeCmd, analyzeCmd, lookupCmd, backupCmd, restoreCmd)
}

func initLogger(level string) error {
	lg, props, err := log.InitLogger(&log.Config{Level: level})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	log.ReplaceGlobals(lg, props)
	return nil
}

func openDB() (*badger.Engine, error) {
	db, err := badger.Default(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", dataDir, err)
	}
	db.SetGCInterval(gcInterval)
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
