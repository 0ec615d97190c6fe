package domain

import (
	"regexp"
	"time"
)

// Field length bounds applied by the sanitizer before validation.
const (
	TxIDLen    = 64
	AliasMax   = 30
	CityMax    = 60
	CountryMax = 60
)

var txidRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// Entry is one verified travel-and-payment record. All fields are frozen at
// acceptance time; the ledger has no update or delete path.
type Entry struct {
	ID        int64   `json:"-"` // insertion order, assigned by storage
	TxID      string  `json:"txid"`
	Alias     string  `json:"alias"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	AmountBTC float64 `json:"amount_btc"`
	ISODate   string  `json:"iso_date"`
}

// Project is the read-mostly metadata persisted alongside entries so exports
// stay reproducible even if configuration changes later.
type Project struct {
	BTCAddress  string
	OriginLabel string
}

// ProjectInfo is the project header as serialized into the log document.
type ProjectInfo struct {
	OriginLabel string `json:"origin_label"`
	BTCAddress  string `json:"btc_address"`
	ExportedISO string `json:"exported_iso"`
}

// LogDocument is the full exported artifact: project metadata plus every
// entry in ascending creation order.
type LogDocument struct {
	Project ProjectInfo `json:"project"`
	Entries []Entry     `json:"entries"`
}

// Coordinates is a resolved latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

// ValidTxID reports whether s is a 64-character hex transaction id.
func ValidTxID(s string) bool {
	return txidRe.MatchString(s)
}

// UTCNowISO returns the current UTC time at second precision, e.g.
// "2026-08-31T12:34:56Z".
func UTCNowISO() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}
