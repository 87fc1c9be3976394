// Package main is the entry point for the seqscan CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joe/seqscan/internal/config"
	"github.com/joe/seqscan/internal/detect"
	"github.com/joe/seqscan/internal/filter"
	"github.com/joe/seqscan/internal/logx"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logx.New(cfg.Verbose)

	// AcceptedFlavors has no effect on Browse's filename grouping (that's
	// governed purely by digit layout, not by pattern-string flavor) but
	// --flavor still needs to fail fast on an unknown name rather than be
	// silently accepted and dropped.
	if _, err := cfg.AcceptedFlavors(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d := detect.New().WithLogger(logger)

	items, err := d.Browse(context.Background(), cfg.Dir, filter.New(cfg.Filters), cfg.Options(), cfg.Recursive)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	for _, it := range items {
		if it.Seq != nil {
			fmt.Println(it.Seq.String())
		} else {
			fmt.Println(it.Path())
		}
	}
}
