package dto

// SubmitRequest is the POST /api/submit body. All fields arrive as raw
// strings; sanitization and validation happen in the service layer.
type SubmitRequest struct {
	TxID    string `json:"txid"`
	Alias   string `json:"alias"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// StatsResponse is the GET /api/stats body. BalanceBTC is null when the
// blockchain explorer could not be reached.
type StatsResponse struct {
	BTCAddress  string   `json:"btc_address"`
	OriginLabel string   `json:"origin_label"`
	BalanceBTC  *float64 `json:"balance_btc"`
	ISODate     string   `json:"iso_date"`
}
