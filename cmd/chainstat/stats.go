package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Show how the words spread over the hash table",
		Long: `The stats command loads the given files like count does and reports
the final bucket count, load factor, chain lengths and hash collisions.

Example:
  chainstat stats book.txt
  chainstat stats --buckets 1 --hash xxhash book.txt
  chainstat stats --json *.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	c, err := loadFiles(args, nil)

	if err != nil {
		return err
	}

	defer c.Close()

	s := c.Stats()

	if jsonOut {
		return printJSON(s)
	}

	printInfo("Buckets:        %d\n", s.Buckets)
	printInfo("Keys:           %d\n", s.Keys)
	printInfo("Load factor:    %.3f\n", s.LoadFactor)
	printInfo("Longest chain:  %d\n", s.LongestChain)
	printInfo("Empty buckets:  %d\n", s.EmptyBuckets)
	printInfo("Words:          %d\n", s.Total)
	printInfo("Distinct words: %d\n", s.Words)
	printInfo("Collisions:     %d\n", s.Collisions)

	return nil
}
