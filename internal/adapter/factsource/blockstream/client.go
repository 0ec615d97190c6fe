package blockstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"traveling-message/config"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/rs/zerolog"
)

// Client talks to a Blockstream-compatible esplora API. It is the
// authority on whether a submitted txid actually paid the project.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        zerolog.Logger
}

// New creates a blockchain explorer client.
func New(cfg config.ExplorerConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With().Str("component", "blockstream").Logger(),
	}
}

type txResponse struct {
	Vout []struct {
		ScriptPubKeyAddress string `json:"scriptpubkey_address"`
		Value               int64  `json:"value"`
	} `json:"vout"`
}

type addressResponse struct {
	ChainStats   addressStats `json:"chain_stats"`
	MempoolStats addressStats `json:"mempool_stats"`
}

type addressStats struct {
	FundedTxoSum int64 `json:"funded_txo_sum"`
	SpentTxoSum  int64 `json:"spent_txo_sum"`
}

// AmountPaid returns the total BTC the transaction paid to address.
// It errors when the transaction is unknown or pays the address nothing.
func (c *Client) AmountPaid(ctx context.Context, txid, address string) (float64, error) {
	var tx txResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/tx/%s", c.baseURL, txid), &tx); err != nil {
		return 0, fmt.Errorf("fetch transaction: %w", err)
	}

	var sats int64
	for _, out := range tx.Vout {
		if out.ScriptPubKeyAddress == address {
			sats += out.Value
		}
	}
	if sats <= 0 {
		return 0, fmt.Errorf("transaction %s pays nothing to %s", txid, address)
	}

	amount := btcutil.Amount(sats).ToBTC()
	c.log.Debug().Str("txid", txid).Float64("amount_btc", amount).Msg("payment verified")
	return amount, nil
}

// AddressBalance returns the confirmed plus mempool balance of address in BTC.
func (c *Client) AddressBalance(ctx context.Context, address string) (float64, error) {
	var addr addressResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/address/%s", c.baseURL, address), &addr); err != nil {
		return 0, fmt.Errorf("fetch address: %w", err)
	}

	sats := addr.ChainStats.FundedTxoSum - addr.ChainStats.SpentTxoSum +
		addr.MempoolStats.FundedTxoSum - addr.MempoolStats.SpentTxoSum
	return btcutil.Amount(sats).ToBTC(), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("explorer returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
