package flag

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/miajio/hebmorph/pkg/participle"
)

const (
	DefaultDataDir  = "./hebmorph-data"
	DefaultLogLevel = "info"
)

func DataDir(cmd *cobra.Command, conf *string) {
	cmd.PersistentFlags().StringVarP(conf, "data-dir", "d", DefaultDataDir, "Dictionary store directory")
}

func LogLevel(cmd *cobra.Command, conf *string) {
	cmd.PersistentFlags().StringVar(conf, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// GCInterval value log 回收间隔, 0 表示使用默认值
func GCInterval(cmd *cobra.Command, conf *time.Duration) {
	cmd.PersistentFlags().DurationVar(conf, "gc-interval", 0, "Value log GC interval of the store (0 keeps the default)")
}

// Analysis 分析相关的参数
func Analysis(cmd *cobra.Command, conf *participle.Config) {
	def := participle.DefaultConfig()
	cmd.Flags().BoolVar(&conf.AllowHeHasheela, "he-hasheela", def.AllowHeHasheela, "Accept the interrogative He prefix")
	cmd.Flags().BoolVar(&conf.Tolerate, "tolerate", def.Tolerate, "Fall back to tolerant lookup when nothing matches exactly")
	cmd.Flags().BoolVar(&conf.FilterLemmas, "filter-lemmas", def.FilterLemmas, "Drop low scoring tolerated lemmas")
	cmd.Flags().BoolVar(&conf.MarkStopWords, "mark-stop-words", def.MarkStopWords, "Mark stop words in the output")
	cmd.Flags().BoolVar(&conf.SkipStopWords, "skip-stop-words", def.SkipStopWords, "Leave stop words out of the output")
	cmd.Flags().BoolVar(&conf.AllowValueOverride, "value-override", def.AllowValueOverride, "Later duplicate words replace earlier ones")
	cmd.Flags().IntVar(&conf.MaxTolerantLength, "max-tolerant-length", def.MaxTolerantLength, "Longest word to look up tolerantly")
}
