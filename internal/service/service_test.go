package service

import (
	"context"
	"sort"
	"strings"
	"testing"

	"statserver/internal/config"
	"statserver/internal/domain"
	"statserver/internal/logger"

	"github.com/stretchr/testify/require"
)

type memStorage struct {
	players map[int64]domain.Player
	nextID  int64
}

func newMemStorage() *memStorage {
	return &memStorage{players: make(map[int64]domain.Player)}
}

func (m *memStorage) Create(_ context.Context, player domain.Player) (domain.Player, error) {
	m.nextID++
	player.ID = m.nextID
	m.players[player.ID] = player
	return player, nil
}

func (m *memStorage) Get(_ context.Context, id int64) (domain.Player, error) {
	player, ok := m.players[id]
	if !ok {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	return player, nil
}

func (m *memStorage) Update(_ context.Context, player domain.Player) (domain.Player, error) {
	if _, ok := m.players[player.ID]; !ok {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	m.players[player.ID] = player
	return player, nil
}

func (m *memStorage) Delete(_ context.Context, id int64) error {
	if _, ok := m.players[id]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(m.players, id)
	return nil
}

func (m *memStorage) Search(_ context.Context, filter domain.Filter) ([]domain.Player, error) {
	var found []domain.Player
	for _, player := range m.players {
		if filter.Name != "" && !strings.Contains(strings.ToLower(player.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Season != "" && player.Season != filter.Season {
			continue
		}
		if filter.Hypothetical != nil && player.Hypothetical != *filter.Hypothetical {
			continue
		}
		found = append(found, player)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	if filter.Limit > 0 && len(found) > filter.Limit {
		found = found[:filter.Limit]
	}
	return found, nil
}

func (m *memStorage) Seasons(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var seasons []string
	for _, player := range m.players {
		if _, ok := seen[player.Season]; ok {
			continue
		}
		seen[player.Season] = struct{}{}
		seasons = append(seasons, player.Season)
	}
	sort.Strings(seasons)
	return seasons, nil
}

func (m *memStorage) Ping(_ context.Context) error { return nil }

func newTestService(t *testing.T) (*PlayerService, *memStorage) {
	t.Helper()
	st := newMemStorage()
	cfg := config.Server{SearchLimit: 10}
	return New(st, cfg, logger.New(false)), st
}

func validPlayer() domain.Player {
	return domain.Player{
		Name:     "Test Player",
		Team:     "BOS",
		Position: "SG",
		Season:   "2020",
		Stats:    domain.StatLine{Points: 25},
	}
}

func TestCreateThenGet(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	created, err := s.CreatePlayer(ctx, validPlayer())
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	got, err := s.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestCreateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Player)
	}{
		{"empty name", func(p *domain.Player) { p.Name = "" }},
		{"empty team", func(p *domain.Player) { p.Team = "" }},
		{"empty season", func(p *domain.Player) { p.Season = "" }},
		{"unknown position", func(p *domain.Player) { p.Position = "GK" }},
		{"negative points", func(p *domain.Player) { p.Stats.Points = -1 }},
		{"negative rebounds", func(p *domain.Player) { p.Stats.Rebounds = -0.1 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, st := newTestService(t)
			player := validPlayer()
			tt.mutate(&player)
			_, err := s.CreatePlayer(context.Background(), player)
			require.ErrorIs(t, err, domain.ErrValidation)
			require.Empty(t, st.players, "no row must be persisted on validation failure")
		})
	}
}

func TestNegativePlusMinusIsAllowed(t *testing.T) {
	s, _ := newTestService(t)
	player := validPlayer()
	player.Stats.PlusMinus = -3.5
	_, err := s.CreatePlayer(context.Background(), player)
	require.NoError(t, err)
}

func TestUpdateAppliesOnlyPatchedFields(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	created, err := s.CreatePlayer(ctx, validPlayer())
	require.NoError(t, err)

	points := 30.5
	updated, err := s.UpdatePlayer(ctx, created.ID, domain.PlayerPatch{Points: &points})
	require.NoError(t, err)
	require.Equal(t, points, updated.Stats.Points)
	require.Equal(t, created.Name, updated.Name)
	require.Equal(t, created.Season, updated.Season)

	got, err := s.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestUpdateUnknownID(t *testing.T) {
	s, _ := newTestService(t)
	name := "Nobody"
	_, err := s.UpdatePlayer(context.Background(), 42, domain.PlayerPatch{Name: &name})
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	created, err := s.CreatePlayer(ctx, validPlayer())
	require.NoError(t, err)

	negative := -5.0
	_, err = s.UpdatePlayer(ctx, created.ID, domain.PlayerPatch{Assists: &negative})
	require.ErrorIs(t, err, domain.ErrValidation)

	got, err := s.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got, "failed update must not change the record")
}

func TestDeleteThenGet(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	created, err := s.CreatePlayer(ctx, validPlayer())
	require.NoError(t, err)

	require.NoError(t, s.DeletePlayer(ctx, created.ID))

	_, err = s.GetPlayer(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)

	err = s.DeletePlayer(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestSearchFiltersAndCap(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		player := validPlayer()
		if i%2 == 0 {
			player.Season = "2019"
		}
		_, err := s.CreatePlayer(ctx, player)
		require.NoError(t, err)
	}

	all, err := s.SearchPlayers(ctx, domain.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 10, "empty query is capped by the configured search limit")

	bySeason, err := s.SearchPlayers(ctx, domain.Filter{Season: "2019"})
	require.NoError(t, err)
	require.Len(t, bySeason, 8)

	_, err = s.SearchPlayers(ctx, domain.Filter{Name: "x"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCompareAntiSymmetry(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	playerA := validPlayer()
	playerA.Stats = domain.StatLine{Points: 27.5, Assists: 6, Rebounds: 8, Steals: 1.2, Blocks: 0.4, PlusMinus: 3.1}
	a, err := s.CreatePlayer(ctx, playerA)
	require.NoError(t, err)

	playerB := validPlayer()
	playerB.Name = "Other Player"
	playerB.Position = "C"
	playerB.Stats = domain.StatLine{Points: 21, Assists: 2.5, Rebounds: 12, Steals: 0.5, Blocks: 2.2, PlusMinus: -1}
	b, err := s.CreatePlayer(ctx, playerB)
	require.NoError(t, err)

	ab, err := s.Compare(ctx, a.ID, b.ID)
	require.NoError(t, err)
	ba, err := s.Compare(ctx, b.ID, a.ID)
	require.NoError(t, err)

	require.Equal(t, ab.Diff, domain.StatLine{}.Sub(ba.Diff))
	require.Equal(t, ab.PlayerA, ba.PlayerB)
	require.Equal(t, ab.OverallTierA, ba.OverallTierB)
	require.NotEmpty(t, ab.PositionTierB)
}

func TestCompareMissingPlayer(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	created, err := s.CreatePlayer(ctx, validPlayer())
	require.NoError(t, err)

	_, err = s.Compare(ctx, created.ID, created.ID+1)
	require.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestSeasons(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	for _, season := range []string{"2020", "1996", "2020", "2008"} {
		player := validPlayer()
		player.Season = season
		_, err := s.CreatePlayer(ctx, player)
		require.NoError(t, err)
	}

	seasons, err := s.Seasons(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1996", "2008", "2020"}, seasons)
}

func TestNotifierCalledOnCreate(t *testing.T) {
	s, _ := newTestService(t)
	var messages []string
	s.SetNotifier(func(msg string) { messages = append(messages, msg) })

	_, err := s.CreatePlayer(context.Background(), validPlayer())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "Test Player")
}
