package peco

import (
	"context"
	"fmt"
)

const phoneNumberLength = 10

// meterQueryResponse is the account lookup keyed by phone number.
type meterQueryResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		SmartMeterStatus bool   `json:"smartMeterStatus"`
		AUID             string `json:"auid"`
		AccountNumber    string `json:"accountNumber"`
	} `json:"data"`
}

type meterPrecheckResponse struct {
	Success bool `json:"success"`
	Data    struct {
		MeterPing bool `json:"meterPing"`
	} `json:"data"`
}

type meterPingResponse struct {
	Success bool `json:"success"`
	Data    struct {
		MeterInfo struct {
			PingResult bool `json:"pingResult"`
		} `json:"meterInfo"`
	} `json:"data"`
}

// MeterCheck reports whether power is being delivered to the house on the
// account registered under phone. The phone number must be exactly ten
// digits; validation happens before any network call.
//
// Three round-trips: an account lookup, a precheck that confirms the meter
// answers pings, and the ping itself. Accounts without a smart meter fail
// with ErrIncompatibleMeter; meters that do not answer the precheck fail
// with ErrUnresponsiveMeter.
func (c *Client) MeterCheck(ctx context.Context, phone string) (bool, error) {
	if len(phone) != phoneNumberLength {
		return false, fmt.Errorf("phone number must be %d digits", phoneNumberLength)
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false, fmt.Errorf("phone number must be numeric")
		}
	}

	var query meterQueryResponse
	if err := c.postJSON(ctx, c.meterQueryURL, map[string]string{"phone": phone}, &query); err != nil {
		return false, err
	}
	if !query.Success || len(query.Data) == 0 {
		return false, &ParseError{Reason: "meter query returned no account data"}
	}
	if !query.Data[0].SmartMeterStatus {
		return false, ErrIncompatibleMeter
	}

	auid := query.Data[0].AUID
	accountNumber := query.Data[0].AccountNumber

	var precheck meterPrecheckResponse
	err := c.postJSON(ctx, c.meterPrecheckURL, map[string]string{
		"auid":          auid,
		"accountNumber": accountNumber,
		"phone":         phone,
	}, &precheck)
	if err != nil {
		return false, err
	}
	if !precheck.Success {
		return false, &ParseError{Reason: "meter precheck did not succeed"}
	}
	if !precheck.Data.MeterPing {
		return false, ErrUnresponsiveMeter
	}

	var ping meterPingResponse
	err = c.postJSON(ctx, c.meterPingURL, map[string]string{
		"auid":          auid,
		"accountNumber": accountNumber,
	}, &ping)
	if err != nil {
		return false, err
	}
	if !ping.Success {
		return false, &ParseError{Reason: "meter ping did not succeed"}
	}

	return ping.Data.MeterInfo.PingResult, nil
}
