// Package main implements smsreplay, a command-line harness that replays a
// memory-access trace through the SMS prefetcher core and a synthetic
// data cache, and prints a coverage and accuracy report. Its command
// shape follows the teacher's akita/cmd root command.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/smsprefetch/sms"
)

var (
	flagTracePath   string
	flagEnvPath     string
	flagDCacheBytes uint64
	flagDCacheWays  int
	flagSQLitePath  string

	flagRegionSize       uint64
	flagDCacheLineSize   uint64
	flagFilterTableSize  int
	flagAccumulationSize int
	flagPHTEntries       int
	flagPHTAssociativity int
)

// rootCmd is the base command when smsreplay is called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "smsreplay",
	Short: "smsreplay replays a memory trace through the SMS prefetcher core.",
	Long: `smsreplay replays a memory-access trace through the Spatial ` +
		`Memory Streaming prefetcher core and a synthetic set-associative ` +
		`data cache, then prints a coverage and accuracy report.`,
	RunE: runReplay,
}

func init() {
	rootCmd.Flags().StringVar(&flagTracePath, "trace", "",
		"path to a trace file (default: read from stdin)")
	rootCmd.Flags().StringVar(&flagEnvPath, "env", "",
		"path to a .env file overriding SMS_* configuration variables")
	rootCmd.Flags().Uint64Var(&flagDCacheBytes, "dcache-bytes", 32*1024,
		"total size, in bytes, of the simulated data cache")
	rootCmd.Flags().IntVar(&flagDCacheWays, "dcache-ways", 8,
		"associativity of the simulated data cache")
	rootCmd.Flags().StringVar(&flagSQLitePath, "sqlite", "",
		"if set, log the run's report as a row in this SQLite database")

	def := sms.DefaultConfig()
	rootCmd.Flags().Uint64Var(&flagRegionSize, "region-size", def.RegionSize,
		"spatial region size, in bytes")
	rootCmd.Flags().Uint64Var(&flagDCacheLineSize, "dcache-line-size", def.DCacheLineSize,
		"data cache line size, in bytes")
	rootCmd.Flags().IntVar(&flagFilterTableSize, "filter-table-size", def.FilterTableSize,
		"Filter Table entry capacity")
	rootCmd.Flags().IntVar(&flagAccumulationSize, "accumulation-table-size", def.AccumulationTableSize,
		"Accumulation Table entry capacity")
	rootCmd.Flags().IntVar(&flagPHTEntries, "pht-entries", def.PHTEntries,
		"Pattern History Table entry capacity")
	rootCmd.Flags().IntVar(&flagPHTAssociativity, "pht-associativity", def.PHTAssociativity,
		"Pattern History Table associativity")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEnvOverrides applies SMS_* environment variables on top of cfg,
// loading them from an .env file at path first if one is given.
// SMS_REGION_SIZE, SMS_DCACHE_LINE_SIZE, SMS_FILTER_TABLE_SIZE,
// SMS_ACCUMULATION_TABLE_SIZE, SMS_PHT_ENTRIES, and SMS_PHT_ASSOCIATIVITY
// mirror Config's fields (SPEC_FULL.md §6.3); flags passed on the command
// line take precedence over both.
func loadEnvOverrides(path string, cfg *sms.Config) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("smsreplay: loading %s: %w", path, err)
		}
	}

	overrideUint64(&cfg.RegionSize, "SMS_REGION_SIZE")
	overrideUint64(&cfg.DCacheLineSize, "SMS_DCACHE_LINE_SIZE")
	overrideInt(&cfg.FilterTableSize, "SMS_FILTER_TABLE_SIZE")
	overrideInt(&cfg.AccumulationTableSize, "SMS_ACCUMULATION_TABLE_SIZE")
	overrideInt(&cfg.PHTEntries, "SMS_PHT_ENTRIES")
	overrideInt(&cfg.PHTAssociativity, "SMS_PHT_ASSOCIATIVITY")

	return nil
}

func overrideUint64(field *uint64, envVar string) {
	v, ok := os.LookupEnv(envVar)
	if !ok {
		return
	}

	var parsed uint64
	if _, err := fmt.Sscanf(v, "%d", &parsed); err == nil {
		*field = parsed
	}
}

func overrideInt(field *int, envVar string) {
	v, ok := os.LookupEnv(envVar)
	if !ok {
		return
	}

	var parsed int
	if _, err := fmt.Sscanf(v, "%d", &parsed); err == nil {
		*field = parsed
	}
}
