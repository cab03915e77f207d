// Package peco queries PECO's public outage map for outage statistics.
//
// The peco package fetches the storm center data published for PECO's outage
// map and exposes it as typed values: per-county outage counts, territory-wide
// totals, outage map alerts, and a smart-meter power check. Each query is a
// stateless request/parse pass: nothing is cached or persisted, and every
// returned value is an immutable snapshot owned by the caller.
package peco
