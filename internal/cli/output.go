package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/phillyhomelab/peco-outages/peco"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// parseFormat validates the --format flag value.
func parseFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
}

// CountyResult is the output payload for a single-county query.
type CountyResult struct {
	CheckedAt time.Time        `json:"checked_at"`
	County    string           `json:"county"`
	Outage    peco.OutageCount `json:"outage"`
}

// TotalsResult is the output payload for a territory-wide query.
type TotalsResult struct {
	CheckedAt time.Time         `json:"checked_at"`
	Totals    peco.OutageTotals `json:"totals"`
}

// AlertsResult is the output payload for a map alerts query.
type AlertsResult struct {
	CheckedAt time.Time         `json:"checked_at"`
	Alert     peco.AlertResults `json:"alert"`
}

// MeterResult is the output payload for a smart-meter check.
type MeterResult struct {
	CheckedAt      time.Time `json:"checked_at"`
	PowerDelivered bool      `json:"power_delivered"`
}

// CountiesResult lists the valid county codes.
type CountiesResult struct {
	Counties []string `json:"counties"`
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// WriteCounty writes a per-county outage snapshot.
func WriteCounty(w io.Writer, result *CountyResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	fmt.Fprintf(w, "%s\n", result.County)
	fmt.Fprintf(w, "  Customers out:    %d\n", result.Outage.CustomersOut)
	fmt.Fprintf(w, "  Customers served: %d\n", result.Outage.CustomersServed)
	writePercent(w, result.Outage.PercentCustomersOut)
	return nil
}

// WriteTotals writes a territory-wide outage snapshot.
func WriteTotals(w io.Writer, result *TotalsResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	fmt.Fprintln(w, "PECO service territory")
	fmt.Fprintf(w, "  Active outages:   %d\n", result.Totals.OutageCount)
	fmt.Fprintf(w, "  Customers out:    %d\n", result.Totals.CustomersOut)
	fmt.Fprintf(w, "  Customers served: %d\n", result.Totals.CustomersServed)
	writePercent(w, result.Totals.PercentCustomersOut)
	return nil
}

// writePercent renders the percent line, flagging the upstream display-floor
// artifact so readers don't mistake 4.999999 for a measurement.
func writePercent(w io.Writer, percent float64) {
	if percent == peco.PercentFloor {
		fmt.Fprintf(w, "  Percent out:      %v%% (below PECO's 5%% display floor)\n", percent)
		return
	}
	fmt.Fprintf(w, "  Percent out:      %v%%\n", percent)
}

// WriteAlerts writes the current outage map alert, if any.
func WriteAlerts(w io.Writer, result *AlertsResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.Alert == (peco.AlertResults{}) {
		fmt.Fprintln(w, "No alerts on the outage map.")
		return nil
	}
	fmt.Fprintf(w, "%s\n\n%s\n", result.Alert.AlertTitle, result.Alert.AlertContent)
	return nil
}

// WriteMeter writes the smart-meter check outcome.
func WriteMeter(w io.Writer, result *MeterResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.PowerDelivered {
		fmt.Fprintln(w, "Power is being delivered to the house.")
	} else {
		fmt.Fprintln(w, "No power delivery detected at the meter.")
	}
	return nil
}

// WriteCounties lists the valid county codes.
func WriteCounties(w io.Writer, result *CountiesResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	for _, c := range result.Counties {
		fmt.Fprintln(w, c)
	}
	return nil
}
