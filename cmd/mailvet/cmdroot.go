// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	workerNumber    *uint
	queryTimeout    *time.Duration
	nameserver      *string
	outputPath      *string
	spinnerInterval *time.Duration
	debug           *bool
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "mailvet [flags] addressfile",
		Short:   "mailvet validates the syntax and mail-capable domains of a list of email addresses",
		Version: "0.9",
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if *workerNumber < 1 || *workerNumber > 100 {
				return fmt.Errorf("--workers out of range [1..100]")
			}
			if *queryTimeout < 100*time.Millisecond {
				return fmt.Errorf("--timeout must be at least 100ms")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if *debug {
				log.SetLevel(log.DebugLevel)
				log.Debugf("debug logging enabled")
			}
			return ValidateAndReport(context.Background(), args[0])
		},
	}
	// Sets up the flags.
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debugging output")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", 10, "number of parallel validation workers")
	queryTimeout = rootCmd.PersistentFlags().Duration(
		"timeout", 3*time.Second, "timeout per DNS query attempt")
	nameserver = rootCmd.PersistentFlags().String(
		"nameserver", "", "host:port of nameserver to query instead of the system resolver")
	outputPath = rootCmd.PersistentFlags().String(
		"output", "validation_report.csv", "path of the CSV report to write")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	return
}
