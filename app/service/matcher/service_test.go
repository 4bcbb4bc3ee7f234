package matcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soccerscout/app/client/statsbomb"
	"soccerscout/app/config"

	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const competitionsFixture = `[
	{"competition_id": 11, "season_id": 90, "competition_name": "La Liga", "country_name": "Spain", "season_name": "2020/2021"},
	{"competition_id": 2, "season_id": 44, "competition_name": "Premier League", "country_name": "England", "season_name": "2003/2004"}
]`

const matchesFixture = `[
	{
		"match_id": 100,
		"match_date": "2021-05-01",
		"home_score": 2,
		"away_score": 1,
		"home_team": {"home_team_id": 1, "home_team_name": "Barcelona"},
		"away_team": {"away_team_id": 2, "away_team_name": "Valencia"},
		"competition": {"competition_id": 11, "competition_name": "La Liga", "country_name": "Spain"},
		"season": {"season_id": 90, "season_name": "2020/2021"}
	}
]`

const lineupsFixture = `[
	{
		"team_id": 1,
		"team_name": "Barcelona",
		"lineup": [
			{"player_id": 5503, "player_name": "Lionel Andrés Messi Cuccittini", "player_nickname": "Lionel Messi", "jersey_number": 10, "country": {"name": "Argentina"}},
			{"player_id": 6379, "player_name": "Sergio Busquets i Burgos", "player_nickname": "Sergio Busquets", "jersey_number": 5, "country": {"name": "Spain"}}
		]
	},
	{
		"team_id": 2,
		"team_name": "Valencia",
		"lineup": [
			{"player_id": 7001, "player_name": "José Luis Gayà Peña", "player_nickname": "José Gayà", "jersey_number": 14, "country": {"name": "Spain"}}
		]
	}
]`

func newIndexTestService(t *testing.T) *Service {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/competitions.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(competitionsFixture))
	})
	mux.HandleFunc("/matches/11/90.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(matchesFixture))
	})
	mux.HandleFunc("/lineups/100.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(lineupsFixture))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.StatsBomb.BaseURL = server.URL
	cfg.StatsBomb.Timeout = 5 * time.Second
	cfg.StatsBomb.CacheTTL = time.Minute
	// Restricting to La Liga keeps the Premier League entry out of the index.
	cfg.StatsBomb.Competitions = []int{11}

	di := do.New()
	do.ProvideValue(di, cfg)
	do.Provide(di, statsbomb.NewClient)
	do.Provide(di, New)

	return do.MustInvoke[*Service](di)
}

func TestSearchBuildsIndexAndRanks(t *testing.T) {
	svc := newIndexTestService(t)
	ctx := context.Background()

	candidates, err := svc.Search(ctx, "sergio busquets")
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, "6379", candidates[0].ID)
	assert.Equal(t, "Sergio Busquets", candidates[0].DisplayName)
	assert.Equal(t, "Barcelona", candidates[0].Affiliation)
	assert.Equal(t, 1.0, candidates[0].Confidence)
}

func TestSearchOrdersByConfidenceDescending(t *testing.T) {
	svc := newIndexTestService(t)

	// "sergio" is a prefix of one nickname and a token of another name.
	candidates, err := svc.Search(context.Background(), "sergio")
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Confidence, candidates[i].Confidence)
	}
	assert.Equal(t, "Sergio Busquets", candidates[0].DisplayName)
}

func TestSearchNoMatches(t *testing.T) {
	svc := newIndexTestService(t)

	candidates, err := svc.Search(context.Background(), "cristiano ronaldo")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newIndexTestService(t)

	candidates, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestEntryResolvesCandidateID(t *testing.T) {
	svc := newIndexTestService(t)
	ctx := context.Background()

	entry, err := svc.Entry(ctx, "5503")
	require.NoError(t, err)

	assert.Equal(t, "Lionel Messi", entry.DisplayName())
	assert.Equal(t, "Argentina", entry.Country)
	require.Len(t, entry.Matches, 1)
	assert.Equal(t, 100, entry.Matches[0].MatchID)
	assert.Equal(t, "La Liga", entry.Matches[0].Competition)
}

func TestEntryRejectsUnknownID(t *testing.T) {
	svc := newIndexTestService(t)
	ctx := context.Background()

	_, err := svc.Entry(ctx, "999999")
	assert.Error(t, err)

	_, err = svc.Entry(ctx, "not-a-number")
	assert.Error(t, err)
}

func TestSearchFailsWhenProviderUnreachable(t *testing.T) {
	cfg := &config.Config{}
	cfg.StatsBomb.BaseURL = "http://127.0.0.1:1"
	cfg.StatsBomb.Timeout = time.Second
	cfg.StatsBomb.CacheTTL = time.Minute

	di := do.New()
	do.ProvideValue(di, cfg)
	do.Provide(di, statsbomb.NewClient)
	do.Provide(di, New)

	svc := do.MustInvoke[*Service](di)

	_, err := svc.Search(context.Background(), "anyone")
	assert.Error(t, err)
}
