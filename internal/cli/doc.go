// Package cli implements the command-line interface for peco-outages.
//
// The cli package provides the Cobra-based CLI with subcommands for
// per-county outage counts, territory-wide totals, outage map alerts, and
// smart-meter checks, with text and JSON output. Fetch failures can be
// retried with exponential backoff via --retries; the underlying library
// never retries on its own.
package cli
