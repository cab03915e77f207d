package peco

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	// currentStateURL serves the storm center deployment state, including
	// the id of the current outage report and any deployed map alert.
	currentStateURL = "https://kubra.io/stormcenter/api/v1/stormcenters/39e6d9f3-fdea-4539-848f-b8631945da6f/views/74de8a50-3f45-4f6a-9483-fd618bb9165d/currentState?preview=false"

	// reportURLFormat is interpolated with the interval generation id from
	// the current state to locate the outage report JSON.
	reportURLFormat = "https://kubra.io/%s/public/reports/a36a6292-1c55-44de-a6a9-44fedf9482ee_report.json"

	// alertsURLFormat is interpolated with the alert deployment id from the
	// current state.
	alertsURLFormat = "https://kubra.io/stormcenter/api/v1/alerts/%s"

	// Smart-meter endpoints on the PECO account side.
	meterQueryURL    = "https://secure.peco.com/.euapi/mobile/custom/anon/PECO/outage/query"
	meterPrecheckURL = "https://secure.peco.com/.euapi/mobile/custom/anon/PECO/outage/precheck"
	meterPingURL     = "https://secure.peco.com/.euapi/mobile/custom/anon/PECO/outage/ping"

	userAgent      = "peco-outages/1.0 (github.com/phillyhomelab/peco-outages)"
	defaultTimeout = 30 * time.Second
)

// Client queries PECO's outage map endpoints. The zero value is not usable;
// create one with New or NewWithHTTPClient. A Client is safe for concurrent
// use; it holds no per-call state.
type Client struct {
	httpClient *http.Client

	// Endpoint shapes are an opaque upstream contract. They are fields, not
	// package constants, so tests can point a Client at a local server and
	// an upstream move only touches this file.
	currentStateURL  string
	reportURLFormat  string
	alertsURLFormat  string
	meterQueryURL    string
	meterPrecheckURL string
	meterPingURL     string
}

// New creates a Client with a bounded default request timeout.
func New() *Client {
	return NewWithHTTPClient(&http.Client{Timeout: defaultTimeout})
}

// NewWithHTTPClient creates a Client that issues requests through hc. Use
// this to supply a custom timeout, proxy, or transport.
func NewWithHTTPClient(hc *http.Client) *Client {
	return &Client{
		httpClient:       hc,
		currentStateURL:  currentStateURL,
		reportURLFormat:  reportURLFormat,
		alertsURLFormat:  alertsURLFormat,
		meterQueryURL:    meterQueryURL,
		meterPrecheckURL: meterPrecheckURL,
		meterPingURL:     meterPingURL,
	}
}

// getJSON performs one GET round-trip and decodes the body into v.
// Transport failures and non-2xx statuses become a FetchError; a body that
// is not valid JSON becomes a ParseError.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	return c.do(req, v)
}

// postJSON performs one POST round-trip with a JSON payload and decodes the
// response body into v. Error mapping matches getJSON.
func (c *Client) postJSON(ctx context.Context, url string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: req.URL.String(), StatusCode: resp.StatusCode}
	}

	// The meter endpoints serve JSON with a text/html content type, so the
	// body is decoded regardless of the declared type.
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &ParseError{Reason: "response body is not valid JSON", Err: err}
	}
	return nil
}
