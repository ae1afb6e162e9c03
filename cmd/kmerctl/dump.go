package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmerkit/kmerkit/table"
)

var dumpLimit uint64

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Uint64Var(&dumpLimit, "limit", 0, "Maximum records to print (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <table>",
		Short: "Print raw (key, count) records of a count table",
		Long: `The dump command prints one record per line as "<key-hex> <count>",
in table order.

Example:
  kmerctl dump reads.kmct
  kmerctl dump reads.kmct --limit 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	tablePath := args[0]

	printVerbose("Opening count table: %s\n", tablePath)
	tbl, err := table.Open(tablePath)
	if err != nil {
		return err
	}
	defer tbl.Close()

	recs, err := tbl.Records()
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	var printed uint64
	for recs.Next() {
		if dumpLimit > 0 && printed >= dumpLimit {
			break
		}
		fmt.Fprintf(w, "%016x %d\n", recs.Key(), recs.Count())
		printed++
	}
	if err := recs.Err(); err != nil {
		return err
	}
	return w.Flush()
}
