package main

import (
	"io"
	"os"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miajio/hebmorph/pkg/participle"
)

var (
	importCmd = &cobra.Command{
		Use:   "import [file]",
		Short: "Import dictionary entries",
		Long:  `Import JSON lines of {"word", "prefixes", "lemmas"} records, read from stdin when no file is given`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runImport,
	}

	backupCmd = &cobra.Command{
		Use:   "backup <file>",
		Short: "Back up the dictionary store",
		Args:  cobra.ExactArgs(1),
		RunE:  runBackup,
	}

	restoreCmd = &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the dictionary with a backup",
		Args:  cobra.ExactArgs(1),
		RunE:  runRestore,
	}
)

func input(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func runImport(_ *cobra.Command, args []string) error {
	r, err := input(args)
	if err != nil {
		return err
	}
	defer r.Close()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := participle.NewStore(db).Import(participle.ReadImport(r))
	if err != nil {
		return err
	}
	log.Info("import finished", zap.Int("records", n), zap.String("data-dir", dataDir))
	return nil
}

func runBackup(_ *cobra.Command, args []string) error {
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := participle.NewStore(db).Backup(f); err != nil {
		return err
	}
	log.Info("backup written", zap.String("file", args[0]))
	return f.Sync()
}

func runRestore(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	store := participle.NewStore(db)
	if err := store.Restore(f); err != nil {
		return err
	}
	// 确认恢复后的词典可以加载
	dict, err := store.Load(participle.DefaultConfig())
	if err != nil {
		return err
	}
	log.Info("backup restored", zap.String("file", args[0]), zap.Int("words", dict.Len()))
	return nil
}
