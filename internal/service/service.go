package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"statserver/internal/cache/mem"
	"statserver/internal/config"
	"statserver/internal/domain"
	"statserver/internal/storage"
	"statserver/internal/tier"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

var positions = mapset.NewSet("PG", "SG", "SF", "PF", "C")

const minNameQueryLen = 2

type PlayerService struct {
	playerStorage storage.PlayerStorage
	cache         *mem.Cache
	cfg           config.Server
	log           *logrus.Entry

	notify func(msg string)
}

func New(playerStorage storage.PlayerStorage, cfg config.Server, l *logrus.Logger) *PlayerService {
	return &PlayerService{
		playerStorage: playerStorage,
		cache:         mem.New(),
		cfg:           cfg,
		log:           l.WithField("from", "player-service"),
	}
}

// SetNotifier registers a callback invoked after every created record.
func (s *PlayerService) SetNotifier(notify func(msg string)) {
	s.notify = notify
}

func (s *PlayerService) CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	if err := validate(player); err != nil {
		return domain.Player{}, err
	}
	player.ID = 0
	player.CreatedAt = time.Now()
	created, err := s.playerStorage.Create(ctx, player)
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate()
	if s.notify != nil {
		s.notify(fmt.Sprintf("new player record: %s (%s)", created.Name, created.Season))
	}
	return created, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (domain.Player, error) {
	return s.playerStorage.Get(ctx, id)
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, patch domain.PlayerPatch) (domain.Player, error) {
	player, err := s.playerStorage.Get(ctx, id)
	if err != nil {
		return domain.Player{}, err
	}
	player = patch.Apply(player)
	if err := validate(player); err != nil {
		return domain.Player{}, err
	}
	updated, err := s.playerStorage.Update(ctx, player)
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate()
	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	err := s.playerStorage.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *PlayerService) SearchPlayers(ctx context.Context, filter domain.Filter) ([]domain.Player, error) {
	if filter.Name != "" && utf8.RuneCountInString(filter.Name) < minNameQueryLen {
		return nil, errors.Join(domain.ErrValidation,
			fmt.Errorf("name query must be at least %d characters", minNameQueryLen))
	}
	if filter.Limit <= 0 || filter.Limit > s.cfg.SearchLimit {
		filter.Limit = s.cfg.SearchLimit
	}
	return s.playerStorage.Search(ctx, filter)
}

// GetByName serves bot lookups from the in-memory cache, refilling it
// from storage after any write invalidated it.
func (s *PlayerService) GetByName(ctx context.Context, name string) ([]domain.Player, error) {
	if players, ok := s.cache.GetByName(name); ok {
		return players, nil
	}
	all, err := s.playerStorage.Search(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}
	s.cache.Update(all)
	players, ok := s.cache.GetByName(name)
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return players, nil
}

func (s *PlayerService) Compare(ctx context.Context, idA int64, idB int64) (domain.Comparison, error) {
	playerA, err := s.playerStorage.Get(ctx, idA)
	if err != nil {
		return domain.Comparison{}, err
	}
	playerB, err := s.playerStorage.Get(ctx, idB)
	if err != nil {
		return domain.Comparison{}, err
	}
	return compare(playerA, playerB), nil
}

func compare(a domain.Player, b domain.Player) domain.Comparison {
	overallA, positionalA := tier.Calculate(a.Stats, a.Position)
	overallB, positionalB := tier.Calculate(b.Stats, b.Position)
	return domain.Comparison{
		PlayerA:       a,
		PlayerB:       b,
		Diff:          a.Stats.Sub(b.Stats),
		OverallTierA:  string(overallA),
		PositionTierA: string(positionalA),
		OverallTierB:  string(overallB),
		PositionTierB: string(positionalB),
	}
}

func (s *PlayerService) Seasons(ctx context.Context) ([]string, error) {
	return s.playerStorage.Seasons(ctx)
}

func (s *PlayerService) Health(ctx context.Context) error {
	return s.playerStorage.Ping(ctx)
}

func validate(player domain.Player) error {
	var errs []error
	if player.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if player.Team == "" {
		errs = append(errs, errors.New("team is required"))
	}
	if player.Season == "" {
		errs = append(errs, errors.New("season is required"))
	}
	if !positions.Contains(player.Position) {
		errs = append(errs, fmt.Errorf("position must be one of %s", positions.String()))
	}
	errs = append(errs, validateStats(player.Stats)...)
	if len(errs) > 0 {
		return errors.Join(domain.ErrValidation, errors.Join(errs...))
	}
	return nil
}

func validateStats(stats domain.StatLine) []error {
	var errs []error
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"points", stats.Points},
		{"assists", stats.Assists},
		{"rebounds", stats.Rebounds},
		{"steals", stats.Steals},
		{"blocks", stats.Blocks},
	} {
		if field.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", field.name))
		}
	}
	return errs
}
