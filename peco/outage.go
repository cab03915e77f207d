package peco

// PercentFloor is the artifact value PECO reports for any outage percentage
// below its 5% display floor. The upstream map never shows a figure under 5%;
// instead it publishes exactly 4.999999. That artifact is preserved here
// rather than rounded or clamped, so callers must treat 4.999999 as
// "somewhere below 5%", not as a measured value.
const PercentFloor = 4.999999

// OutageCount is a point-in-time outage snapshot for a single county.
type OutageCount struct {
	CustomersOut        int     `json:"customers_out"`
	CustomersServed     int     `json:"customers_served"`
	PercentCustomersOut float64 `json:"percent_customers_out"`
}

// OutageTotals is a point-in-time outage snapshot aggregated across the
// whole service territory. OutageCount is the number of distinct active
// outage events, not a customer count.
type OutageTotals struct {
	OutageCount         int     `json:"outage_count"`
	CustomersOut        int     `json:"customers_out"`
	CustomersServed     int     `json:"customers_served"`
	PercentCustomersOut float64 `json:"percent_customers_out"`
}

// AlertResults holds the banner alert currently shown on the outage map,
// with its HTML content reduced to plain text. Both fields are empty when no
// alert is deployed.
type AlertResults struct {
	AlertTitle   string `json:"alert_title"`
	AlertContent string `json:"alert_content"`
}

// normalizePercent applies the upstream display-floor artifact: any reported
// percentage strictly between 0 and 5 becomes exactly PercentFloor. Zero and
// values at or above 5 pass through unchanged.
func normalizePercent(p float64) float64 {
	if p > 0 && p < 5 {
		return PercentFloor
	}
	return p
}
