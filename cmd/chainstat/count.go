package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/webbmaffian/go-chain/internal/wordcount"
	"go.uber.org/zap"
)

var countProgress bool

func init() {
	cmd := newCountCmd()
	defaults := defaultConfig()
	cmd.Flags().Int("top", defaults.Top, "Number of words to print, 0 for all")
	cmd.Flags().Int("min", defaults.MinCount, "Drop words seen fewer times than this")
	cmd.Flags().BoolVar(&countProgress, "progress", false, "Show live progress on stderr")
	rootCmd.AddCommand(cmd)
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <file>...",
		Short: "Print the most frequent words",
		Long: `The count command counts every word of the given files and prints the
most frequent ones, most frequent first.

Example:
  chainstat count book.txt
  chainstat count --top 50 --min 3 *.txt
  chainstat count --hash xxhash --json notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(args)
		},
	}
	return cmd
}

type countResult struct {
	Total    int               `json:"total"`
	Distinct int               `json:"distinct"`
	Pruned   int               `json:"pruned"`
	Words    []wordcount.Entry `json:"words"`
}

func runCount(args []string) error {
	var progress io.Writer

	if countProgress && !quiet {
		progress = os.Stderr
	}

	c, err := loadFiles(args, progress)

	if err != nil {
		return err
	}

	defer c.Close()

	res := countResult{
		Total: c.Total(),
	}

	if cfg.MinCount > 1 {
		res.Pruned = c.Prune(cfg.MinCount)
		logger.Info("pruned rare words", zap.Int("min", cfg.MinCount), zap.Int("removed", res.Pruned))
	}

	res.Distinct = c.Distinct()

	if cfg.Top > 0 {
		res.Words = c.Top(cfg.Top)
	} else {
		res.Words = c.Words()
		wordcount.SortEntries(res.Words)
	}

	if jsonOut {
		return printJSON(res)
	}

	for _, e := range res.Words {
		printInfo("%8d  %s\n", e.Count, e.Word)
	}

	return nil
}
