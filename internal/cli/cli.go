package cli

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phillyhomelab/peco-outages/internal/logger"
	"github.com/phillyhomelab/peco-outages/peco"
)

var (
	flagFormat  string
	flagTimeout time.Duration
	flagRetries int
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peco-outages",
		Short: "Query PECO's outage map for outage statistics",
		Long: `Query PECO's public outage map for outage statistics.
Reports per-county outage counts, territory-wide totals, outage map
alerts, and smart-meter power checks.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", envOr("PECO_OUTAGES_FORMAT", "text"), "Output format: text or json (or env: PECO_OUTAGES_FORMAT)")
	cmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "HTTP request timeout")
	cmd.PersistentFlags().IntVar(&flagRetries, "retries", 0, "Retry failed fetches up to this many times")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging on stderr")

	cmd.AddCommand(
		newCountiesCmd(),
		newCountyCmd(),
		newTotalsCmd(),
		newAlertsCmd(),
		newMeterCmd(),
	)

	return cmd
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newRun gathers the per-invocation plumbing shared by every subcommand.
func newRun() (*peco.Client, *logger.Logger, *logger.Metrics, OutputFormat, error) {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return nil, nil, nil, "", err
	}

	level := logger.LevelWarn
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)

	client := peco.NewWithHTTPClient(&http.Client{Timeout: flagTimeout})
	return client, log, logger.NewMetrics(), format, nil
}

func newCountiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counties",
		Short: "List the counties in PECO's service territory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, _, format, err := newRun()
			if err != nil {
				return err
			}

			result := &CountiesResult{}
			for _, c := range peco.Counties() {
				result.Counties = append(result.Counties, c.String())
			}
			return WriteCounties(cmd.OutOrStdout(), result, format)
		},
	}
}

func newCountyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "county <name>",
		Short: "Show the current outage count for one county",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, metrics, format, err := newRun()
			if err != nil {
				return err
			}

			county, err := peco.ParseCounty(args[0])
			if err != nil {
				return err
			}

			log.Debug("querying outage count", logger.Fields{"county": county.String()})

			var outage peco.OutageCount
			err = withRetry(cmd.Context(), flagRetries, log, metrics, func(ctx context.Context) error {
				var opErr error
				outage, opErr = client.GetOutageCount(ctx, county)
				return opErr
			})
			if err != nil {
				return err
			}

			log.Debug("fetch complete", metrics.Snapshot())
			return WriteCounty(cmd.OutOrStdout(), &CountyResult{
				CheckedAt: time.Now().UTC(),
				County:    county.String(),
				Outage:    outage,
			}, format)
		},
	}
}

func newTotalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show territory-wide outage totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, metrics, format, err := newRun()
			if err != nil {
				return err
			}

			var totals peco.OutageTotals
			err = withRetry(cmd.Context(), flagRetries, log, metrics, func(ctx context.Context) error {
				var opErr error
				totals, opErr = client.GetOutageTotals(ctx)
				return opErr
			})
			if err != nil {
				return err
			}

			log.Debug("fetch complete", metrics.Snapshot())
			return WriteTotals(cmd.OutOrStdout(), &TotalsResult{
				CheckedAt: time.Now().UTC(),
				Totals:    totals,
			}, format)
		},
	}
}

func newAlertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show the alert currently deployed on the outage map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, metrics, format, err := newRun()
			if err != nil {
				return err
			}

			var alert peco.AlertResults
			err = withRetry(cmd.Context(), flagRetries, log, metrics, func(ctx context.Context) error {
				var opErr error
				alert, opErr = client.GetMapAlerts(ctx)
				return opErr
			})
			if err != nil {
				return err
			}

			log.Debug("fetch complete", metrics.Snapshot())
			return WriteAlerts(cmd.OutOrStdout(), &AlertsResult{
				CheckedAt: time.Now().UTC(),
				Alert:     alert,
			}, format)
		},
	}
}

func newMeterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meter <phone>",
		Short: "Check whether power is being delivered to the house",
		Long: `Check whether power is being delivered to the house on the account
registered under the given 10-digit phone number. Requires a smart meter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, log, metrics, format, err := newRun()
			if err != nil {
				return err
			}

			var powered bool
			err = withRetry(cmd.Context(), flagRetries, log, metrics, func(ctx context.Context) error {
				var opErr error
				powered, opErr = client.MeterCheck(ctx, args[0])
				return opErr
			})
			if err != nil {
				return err
			}

			log.Debug("meter check complete", metrics.Snapshot())
			return WriteMeter(cmd.OutOrStdout(), &MeterResult{
				CheckedAt:      time.Now().UTC(),
				PowerDelivered: powered,
			}, format)
		},
	}
}
