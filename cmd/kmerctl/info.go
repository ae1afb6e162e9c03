package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kmerkit/kmerkit/table"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <table>",
		Short: "Validate a count-table header and report its metadata",
		Long: `The info command validates a KMCT count-table file and displays its
metadata: mer length, canonical flag, hash size, and entry count.

Example:
  kmerctl info reads.kmct`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	tablePath := args[0]

	printVerbose("Opening count table: %s\n", tablePath)
	tbl, err := table.Open(tablePath)
	if err != nil {
		return err
	}
	defer tbl.Close()

	printInfo("Count table:\n")
	printInfo("  File: %s\n", tablePath)
	if stat, err := os.Stat(tablePath); err == nil {
		size := stat.Size()
		switch {
		case size < 1024:
			printInfo("  Size: %d bytes\n", size)
		case size < 1024*1024:
			printInfo("  Size: %.1f KB\n", float64(size)/1024)
		default:
			printInfo("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}
	printInfo("  Mer length: %d\n", tbl.MerLen())
	printInfo("  Canonical: %t\n", tbl.Canonical())

	if !quiet {
		p := message.NewPrinter(language.English)
		p.Printf("  Hash size: %d\n", tbl.HashSize())
		p.Printf("  Distinct k-mers: %d\n", tbl.EntryCount())
	}
	return nil
}
