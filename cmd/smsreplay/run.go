package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/smsprefetch/sms"
)

func runReplay(cmd *cobra.Command, _ []string) error {
	cfg := sms.Config{
		RegionSize:            flagRegionSize,
		DCacheLineSize:        flagDCacheLineSize,
		FilterTableSize:       flagFilterTableSize,
		AccumulationTableSize: flagAccumulationSize,
		PHTEntries:            flagPHTEntries,
		PHTAssociativity:      flagPHTAssociativity,
		Index:                 sms.IndexSchemeRegionBase,
	}

	if err := loadEnvOverrides(flagEnvPath, &cfg); err != nil {
		return err
	}

	flagFields := map[string]func(){
		"region-size":             func() { cfg.RegionSize = flagRegionSize },
		"dcache-line-size":        func() { cfg.DCacheLineSize = flagDCacheLineSize },
		"filter-table-size":       func() { cfg.FilterTableSize = flagFilterTableSize },
		"accumulation-table-size": func() { cfg.AccumulationTableSize = flagAccumulationSize },
		"pht-entries":             func() { cfg.PHTEntries = flagPHTEntries },
		"pht-associativity":       func() { cfg.PHTAssociativity = flagPHTAssociativity },
	}
	for name, apply := range flagFields {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	in := os.Stdin

	if flagTracePath != "" {
		f, err := os.Open(flagTracePath)
		if err != nil {
			return fmt.Errorf("smsreplay: %w", err)
		}
		defer f.Close()

		in = f
	}

	rep, err := runFromTrace(in, cfg, flagDCacheBytes, flagDCacheWays)
	if err != nil {
		return err
	}

	printReport(rep)

	if flagSQLitePath != "" {
		w, err := newStatsWriter(flagSQLitePath)
		if err != nil {
			return err
		}

		w.Write(rep)
		w.flush()
	}

	return nil
}

func printReport(r report) {
	fmt.Printf("run:                      %s\n", r.RunID)
	fmt.Printf("accesses:                 %d\n", r.Accesses)
	fmt.Printf("demand hits:              %d\n", r.DemandHits)
	fmt.Printf("demand misses:            %d\n", r.DemandMisses)
	fmt.Printf("prefetches issued:        %d\n", r.PrefetchesIssued)
	fmt.Printf("prefetch hits:            %d\n", r.PrefetchHits)
	fmt.Printf("coverage:                 %.4f\n", r.coverage())
	fmt.Printf("accuracy:                 %.4f\n", r.accuracy())
	fmt.Printf("filter table entries:     %d\n", r.FilterTableLen)
	fmt.Printf("accumulation table entries: %d\n", r.AccumulationTableLen)
	fmt.Printf("pattern history entries:  %d\n", r.PatternHistoryLen)

	for event, n := range r.DiagCounts {
		if n > 0 {
			fmt.Printf("diag %s: %d\n", event, n)
		}
	}
}
