package statsbomb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"soccerscout/app/config"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/do"
)

// Client reads the StatsBomb open-data repository over HTTP. Documents are
// immutable once published, so responses are cached in-process.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	cache      *gocache.Cache
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.StatsBomb.Timeout,
		},
		cache: gocache.New(cfg.StatsBomb.CacheTTL, 10*time.Minute),
	}, nil
}

func (c *Client) Competitions(ctx context.Context) ([]Competition, error) {
	var result []Competition
	if err := c.fetch(ctx, "/competitions.json", &result); err != nil {
		return nil, fmt.Errorf("failed to fetch competitions: %w", err)
	}

	return result, nil
}

func (c *Client) Matches(ctx context.Context, competitionID, seasonID int) ([]Match, error) {
	var result []Match
	path := fmt.Sprintf("/matches/%d/%d.json", competitionID, seasonID)

	if err := c.fetch(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	return result, nil
}

func (c *Client) Lineups(ctx context.Context, matchID int) ([]TeamLineup, error) {
	var result []TeamLineup
	path := fmt.Sprintf("/lineups/%d.json", matchID)

	if err := c.fetch(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch lineups: %w", err)
	}

	return result, nil
}

func (c *Client) Events(ctx context.Context, matchID int) ([]Event, error) {
	var result []Event
	path := fmt.Sprintf("/events/%d.json", matchID)

	if err := c.fetch(ctx, path, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	return result, nil
}

func (c *Client) fetch(ctx context.Context, path string, out any) error {
	if cached, ok := c.cache.Get(path); ok {
		return json.Unmarshal(cached.([]byte), out)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.StatsBomb.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned %d", path, resp.StatusCode)
	}

	c.cache.Set(path, body, gocache.DefaultExpiration)

	return json.Unmarshal(body, out)
}
