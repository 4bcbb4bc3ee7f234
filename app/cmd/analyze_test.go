package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soccerscout/app/client/statsbomb"
	"soccerscout/app/config"
	"soccerscout/app/service/matcher"

	"github.com/samber/do"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolveInjector(t *testing.T) *do.Injector {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/competitions.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"competition_id": 11, "season_id": 90, "competition_name": "La Liga"}]`))
	})
	mux.HandleFunc("/matches/11/90.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"match_id": 100, "competition": {"competition_id": 11, "competition_name": "La Liga"}}]`))
	})
	mux.HandleFunc("/lineups/100.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{
			"team_id": 1,
			"team_name": "Barcelona",
			"lineup": [
				{"player_id": 1, "player_name": "Sergio Busquets", "country": {"name": "Spain"}},
				{"player_id": 2, "player_name": "Sergio Ramos", "country": {"name": "Spain"}}
			]
		}]`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.StatsBomb.BaseURL = server.URL
	cfg.StatsBomb.Timeout = 5 * time.Second
	cfg.StatsBomb.CacheTTL = time.Minute

	di := do.New()
	do.ProvideValue(di, cfg)
	do.Provide(di, statsbomb.NewClient)
	do.Provide(di, matcher.New)

	return di
}

func newOutputCommand() (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}

	command := &cobra.Command{}
	command.SetContext(context.Background())
	command.SetOut(out)
	command.SetErr(out)

	return command, out
}

func TestResolvePlayerListsAlternativesOnCommandWriter(t *testing.T) {
	di := newResolveInjector(t)
	command, out := newOutputCommand()

	candidate, err := resolvePlayer(command, di, "sergio")
	require.NoError(t, err)

	assert.Equal(t, "Sergio Busquets", candidate.DisplayName)
	assert.Contains(t, out.String(), "Multiple players matched")
	assert.Contains(t, out.String(), "Sergio Ramos")
}

func TestResolvePlayerSingleMatchStaysQuiet(t *testing.T) {
	di := newResolveInjector(t)
	command, out := newOutputCommand()

	candidate, err := resolvePlayer(command, di, "ramos")
	require.NoError(t, err)

	assert.Equal(t, "Sergio Ramos", candidate.DisplayName)
	assert.Empty(t, out.String())
}

func TestResolvePlayerNoMatches(t *testing.T) {
	di := newResolveInjector(t)
	command, _ := newOutputCommand()

	_, err := resolvePlayer(command, di, "nobody")
	assert.Error(t, err)
}
