package transfermarkt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"soccerscout/app/config"

	"github.com/samber/do"
)

// MarketProfile is the best-effort transfer-market view of a player. Fields
// stay empty when the upstream search has no answer.
type MarketProfile struct {
	MarketValue   string `json:"market_value"`
	ContractUntil string `json:"contract_until"`
	Nationality   string `json:"nationality"`
	Club          string `json:"club"`
}

type quickSearchResponse struct {
	Results []struct {
		Name          string `json:"name"`
		Club          string `json:"club"`
		MarketValue   string `json:"marketValue"`
		ContractUntil string `json:"contractUntil"`
		Nationality   string `json:"nationality"`
	} `json:"results"`
}

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Transfermarkt.Timeout,
		},
	}, nil
}

// Lookup returns an empty profile when the client is not configured or the
// upstream call fails. Market data is supplementary, a report must not fail
// because of it.
func (c *Client) Lookup(ctx context.Context, playerName string) MarketProfile {
	if c.cfg.Transfermarkt.BaseURL == "" {
		return MarketProfile{}
	}

	profile, err := c.quickSearch(ctx, playerName)
	if err != nil {
		return MarketProfile{}
	}

	return profile
}

func (c *Client) quickSearch(ctx context.Context, playerName string) (MarketProfile, error) {
	searchURL := fmt.Sprintf("%s/schnellsuche/ergebnis/schnellsuche?query=%s",
		c.cfg.Transfermarkt.BaseURL, url.QueryEscape(playerName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return MarketProfile{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return MarketProfile{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return MarketProfile{}, fmt.Errorf("quick search returned %d", resp.StatusCode)
	}

	var parsed quickSearchResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return MarketProfile{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return MarketProfile{}, nil
	}

	first := parsed.Results[0]

	return MarketProfile{
		MarketValue:   first.MarketValue,
		ContractUntil: first.ContractUntil,
		Nationality:   first.Nationality,
		Club:          first.Club,
	}, nil
}
