package peco

import (
	"context"
	"fmt"
)

// currentState is the slice of the deployment state document this package
// reads. The report id rotates as PECO regenerates the outage report.
type currentState struct {
	Data struct {
		IntervalGenerationData string `json:"interval_generation_data"`
	} `json:"data"`
	ControlCenter struct {
		AlertDeploymentID string `json:"alertDeploymentId"`
	} `json:"controlCenter"`
}

// outageReport mirrors the report JSON. Counts arrive nested under "val"
// wrappers; customers served does not.
type outageReport struct {
	FileData struct {
		Areas  []reportArea `json:"areas"`
		Totals reportTotals `json:"totals"`
	} `json:"file_data"`
}

type reportArea struct {
	Name            string      `json:"name"`
	CustomersOut    reportValue `json:"cust_a"`
	PercentOut      reportValue `json:"percent_cust_a"`
	OutageCount     int         `json:"n_out"`
	CustomersServed int         `json:"cust_s"`
}

type reportTotals struct {
	CustomersOut    reportValue `json:"cust_a"`
	PercentOut      reportValue `json:"percent_cust_a"`
	OutageCount     int         `json:"n_out"`
	CustomersServed int         `json:"cust_s"`
}

type reportValue struct {
	Val float64 `json:"val"`
}

// GetOutageCount returns the current outage snapshot for county.
//
// The county is validated before any network I/O: an unknown code fails with
// InvalidCountyError without touching the endpoint. A valid county that has
// no row in the report (upstream format change, or a county PECO stopped
// reporting) fails with ParseError rather than returning a zero-filled
// record.
func (c *Client) GetOutageCount(ctx context.Context, county County) (OutageCount, error) {
	if !county.Valid() {
		return OutageCount{}, &InvalidCountyError{County: county.String()}
	}

	report, err := c.fetchReport(ctx)
	if err != nil {
		return OutageCount{}, err
	}

	for _, area := range report.FileData.Areas {
		if area.Name == county.String() {
			return OutageCount{
				CustomersOut:        int(area.CustomersOut.Val),
				CustomersServed:     area.CustomersServed,
				PercentCustomersOut: normalizePercent(area.PercentOut.Val),
			}, nil
		}
	}

	return OutageCount{}, &ParseError{
		Reason: fmt.Sprintf("no outage data for county %s in report", county),
	}
}

// GetOutageTotals returns the outage snapshot aggregated across PECO's whole
// service territory.
func (c *Client) GetOutageTotals(ctx context.Context) (OutageTotals, error) {
	report, err := c.fetchReport(ctx)
	if err != nil {
		return OutageTotals{}, err
	}

	totals := report.FileData.Totals
	return OutageTotals{
		OutageCount:         totals.OutageCount,
		CustomersOut:        int(totals.CustomersOut.Val),
		CustomersServed:     totals.CustomersServed,
		PercentCustomersOut: normalizePercent(totals.PercentOut.Val),
	}, nil
}

// fetchReport resolves the current report id and retrieves the report JSON.
// Two round-trips: the state document names the report deployment, the
// report carries the actual figures.
func (c *Client) fetchReport(ctx context.Context) (*outageReport, error) {
	var state currentState
	if err := c.getJSON(ctx, c.currentStateURL, &state); err != nil {
		return nil, err
	}

	reportID := state.Data.IntervalGenerationData
	if reportID == "" {
		return nil, &ParseError{Reason: "current state has no report id"}
	}

	var report outageReport
	if err := c.getJSON(ctx, fmt.Sprintf(c.reportURLFormat, reportID), &report); err != nil {
		return nil, err
	}

	if len(report.FileData.Areas) == 0 {
		return nil, &ParseError{Reason: "report has no area data"}
	}

	return &report, nil
}
