package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kmerkit/kmerkit/histogram"
	"github.com/kmerkit/kmerkit/table"
)

var (
	histOutput  string
	histThreads int
	histLow     uint64
	histHigh    uint64
	histInc     uint64
)

func init() {
	cmd := newHistCmd()
	cmd.Flags().StringVarP(&histOutput, "output", "o", "", "Write the spectrum to this file (default: stdout)")
	cmd.Flags().IntVarP(&histThreads, "threads", "t", 1, "The number of threads to use")
	cmd.Flags().Uint64VarP(&histLow, "low", "l", 1, "Low count value of histogram")
	cmd.Flags().Uint64VarP(&histHigh, "high", "H", 10000, "High count value of histogram")
	cmd.Flags().Uint64VarP(&histInc, "inc", "i", 1, "Increment for each bin")
	rootCmd.AddCommand(cmd)
}

func newHistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hist <table>",
		Short: "Compute the k-mer multiplicity spectrum of a count table",
		Long: `The hist command tallies how many distinct k-mers in a count table fall
into each multiplicity bin between --low and --high, stepping by --inc.
Counts below the range land in the first bin and counts above it in the
last. The work is split across --threads parallel workers.

Example:
  kmerctl hist reads.kmct
  kmerctl hist reads.kmct -t 8 -l 1 -H 1000 -o reads.hist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHist(args)
		},
	}
	return cmd
}

func runHist(args []string) error {
	tablePath := args[0]

	printVerbose("Opening count table: %s\n", tablePath)
	tbl, err := table.Open(tablePath)
	if err != nil {
		return err
	}
	defer tbl.Close()

	cfg := histogram.Config{Low: histLow, High: histHigh, Inc: histInc}
	opt := histogram.Options{}
	if verbose && !quiet {
		opt.Logf = func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	start := time.Now()
	hist, err := histogram.ComputeOpts(tbl, histThreads, cfg, opt)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	// Render fully before touching the output path so a failed run never
	// leaves a spectrum file behind.
	var out bytes.Buffer
	meta := histogram.Meta{Path: tablePath, MerLen: tbl.MerLen()}
	if err := histogram.Write(&out, hist, cfg, meta); err != nil {
		return err
	}
	if histOutput != "" {
		if err := os.WriteFile(histOutput, out.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing spectrum: %w", err)
		}
		printVerbose("Wrote spectrum to %s\n", histOutput)
	} else if _, err := os.Stdout.Write(out.Bytes()); err != nil {
		return err
	}

	if !quiet {
		p := message.NewPrinter(language.English)
		p.Fprintf(os.Stderr, "Distinct k-mers counted: %d\n", hist.Total())
		p.Fprintf(os.Stderr, "Buckets: %d\n", cfg.Buckets())
		fmt.Fprintf(os.Stderr, "Time taken: %s\n", elapsed.Round(time.Millisecond))
	}
	return nil
}
