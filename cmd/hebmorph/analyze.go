package main

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/miajio/hebmorph/cmd/hebmorph/flag"
	"github.com/miajio/hebmorph/pkg/participle"
)

var (
	conf = participle.DefaultConfig()

	analyzeCmd = &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze text word by word",
		Long:  `Tokenize and lemmatize the given text, or stdin when no text is given, writing one JSON object per word`,
		RunE:  runAnalyze,
	}

	lookupCmd = &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Look up single words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookup,
	}
)

func init() {
	flag.Analysis(analyzeCmd, &conf)
	flag.Analysis(lookupCmd, &conf)
}

type lemmaOutput struct {
	Lemma        string  `json:"lemma"`
	Word         string  `json:"word"`
	PrefixLength int     `json:"prefix_length"`
	Score        float64 `json:"score"`
	Mask         string  `json:"mask"`
	MaskHebrew   string  `json:"mask_he"`
	Provenance   string  `json:"provenance"`
}

type wordOutput struct {
	Text   string        `json:"text"`
	Kind   string        `json:"kind"`
	Offset int           `json:"offset"`
	Length int           `json:"length"`
	Type   string        `json:"type,omitempty"`
	Stop   bool          `json:"stop,omitempty"`
	Lemmas []lemmaOutput `json:"lemmas,omitempty"`
}

func lemmaOutputs(lemmas []participle.HebrewToken) []lemmaOutput {
	out := make([]lemmaOutput, 0, len(lemmas))
	for _, t := range lemmas {
		out = append(out, lemmaOutput{
			Lemma:        t.Lemma,
			Word:         t.Word,
			PrefixLength: t.PrefixLength,
			Score:        t.Score,
			Mask:         t.Mask.String(),
			MaskHebrew:   t.Mask.HebrewString(),
			Provenance:   t.Provenance.String(),
		})
	}
	return out
}

func openEngine() (*participle.Engine, error) {
	db, err := openDB()
	if err != nil {
		return nil, err
	}
	e, err := participle.New(db, conf)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return e, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		r = strings.NewReader(strings.Join(args, " "))
	}

	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	sl := e.NewStreamLemmatizer(r)
	for {
		w, err := sl.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := enc.Encode(wordOutput{
			Text:   w.Text,
			Kind:   w.Kind.String(),
			Offset: w.Offset,
			Length: w.Length,
			Type:   w.Type.String(),
			Stop:   w.Stop,
			Lemmas: lemmaOutputs(w.Lemmas),
		}); err != nil {
			return err
		}
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	e, err := openEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	lem := e.Lemmatizer()
	for _, word := range args {
		lemmas := lem.Lemmatize(word)
		if len(lemmas) == 0 && conf.Tolerate {
			lemmas = lem.LemmatizeTolerant(word)
		}
		if err := enc.Encode(struct {
			Word       string        `json:"word"`
			Recognized string        `json:"recognized"`
			Lemmas     []lemmaOutput `json:"lemmas"`
		}{word, lem.IsRecognizedWord(word, conf.Tolerate).String(), lemmaOutputs(lemmas)}); err != nil {
			return err
		}
	}
	return nil
}
