package main

import (
	"errors"

	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/miajio/hebmorph/pkg/hebrew"
	"github.com/miajio/hebmorph/pkg/participle"
)

var (
	addLemma    string
	addMask     uint32
	addPrefixes uint8

	addCmd = &cobra.Command{
		Use:   "add <word>",
		Short: "Add or replace a single dictionary entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}

	removeCmd = &cobra.Command{
		Use:   "remove <word>...",
		Short: "Remove dictionary entries",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRemove,
	}
)

func init() {
	addCmd.Flags().StringVar(&addLemma, "lemma", "", "Lemma of the word, empty when the word is its own lemma")
	addCmd.Flags().Uint32Var(&addMask, "mask", uint32(hebrew.DNoun), "Morphological mask")
	addCmd.Flags().Uint8Var(&addPrefixes, "prefixes", uint8(hebrew.PSAll), "Allowed prefix types")
}

func runAdd(_ *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	word := args[0]
	store := participle.NewStore(db)
	existed, err := store.Has(word)
	if err != nil {
		return err
	}
	entry := participle.MorphEntry{
		Prefixes: hebrew.PrefixType(addPrefixes),
		Lemmas:   []participle.LemmaRecord{{Lemma: addLemma, Mask: hebrew.Mask(addMask)}},
	}
	if err := store.AddWord(word, entry); err != nil {
		return err
	}
	log.Info("word saved", zap.String("word", word), zap.Bool("replaced", existed))
	return nil
}

func runRemove(_ *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	store := participle.NewStore(db)
	for _, word := range args {
		err := store.RemoveWord(word)
		if errors.Is(err, participle.ErrNotFound) {
			log.Warn("word not in dictionary", zap.String("word", word))
			continue
		}
		if err != nil {
			return err
		}
		log.Info("word removed", zap.String("word", word))
	}
	return nil
}
