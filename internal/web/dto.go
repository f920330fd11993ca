package web

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"statserver/internal/domain"
	"statserver/internal/tier"

	"github.com/gofiber/fiber/v2"
)

type createPlayer struct {
	Name         string   `json:"name"`
	Team         string   `json:"team"`
	Position     string   `json:"position"`
	Season       string   `json:"season"`
	Points       *float64 `json:"points"`
	Assists      *float64 `json:"assists"`
	Rebounds     *float64 `json:"rebounds"`
	Steals       *float64 `json:"steals"`
	Blocks       *float64 `json:"blocks"`
	PlusMinus    *float64 `json:"plusMinus"`
	Hypothetical bool     `json:"hypothetical"`
}

func (c createPlayer) Validate() error {
	var err error
	if c.Name == "" {
		err = errors.Join(err, errors.New("name is required"))
	}
	if c.Team == "" {
		err = errors.Join(err, errors.New("team is required"))
	}
	if c.Position == "" {
		err = errors.Join(err, errors.New("position is required"))
	}
	if c.Season == "" {
		err = errors.Join(err, errors.New("season is required"))
	}
	for _, field := range []struct {
		name  string
		value *float64
	}{
		{"points", c.Points},
		{"assists", c.Assists},
		{"rebounds", c.Rebounds},
		{"steals", c.Steals},
		{"blocks", c.Blocks},
	} {
		if field.value == nil {
			err = errors.Join(err, fmt.Errorf("%s is required", field.name))
		}
	}
	return err
}

func (c createPlayer) convertToDomainPlayer() domain.Player {
	player := domain.Player{
		Name:         c.Name,
		Team:         c.Team,
		Position:     c.Position,
		Season:       c.Season,
		Hypothetical: c.Hypothetical,
	}
	if c.Points != nil {
		player.Stats.Points = *c.Points
	}
	if c.Assists != nil {
		player.Stats.Assists = *c.Assists
	}
	if c.Rebounds != nil {
		player.Stats.Rebounds = *c.Rebounds
	}
	if c.Steals != nil {
		player.Stats.Steals = *c.Steals
	}
	if c.Blocks != nil {
		player.Stats.Blocks = *c.Blocks
	}
	if c.PlusMinus != nil {
		player.Stats.PlusMinus = *c.PlusMinus
	}
	return player
}

type updatePlayer struct {
	Name         *string  `json:"name"`
	Team         *string  `json:"team"`
	Position     *string  `json:"position"`
	Season       *string  `json:"season"`
	Points       *float64 `json:"points"`
	Assists      *float64 `json:"assists"`
	Rebounds     *float64 `json:"rebounds"`
	Steals       *float64 `json:"steals"`
	Blocks       *float64 `json:"blocks"`
	PlusMinus    *float64 `json:"plusMinus"`
	Hypothetical *bool    `json:"hypothetical"`
}

func (u updatePlayer) Validate() error {
	if u == (updatePlayer{}) {
		return errors.New("at least one field must be set")
	}
	return nil
}

func (u updatePlayer) convertToDomainPatch() domain.PlayerPatch {
	return domain.PlayerPatch{
		Name:         u.Name,
		Team:         u.Team,
		Position:     u.Position,
		Season:       u.Season,
		Points:       u.Points,
		Assists:      u.Assists,
		Rebounds:     u.Rebounds,
		Steals:       u.Steals,
		Blocks:       u.Blocks,
		PlusMinus:    u.PlusMinus,
		Hypothetical: u.Hypothetical,
	}
}

type statLine struct {
	Points    float64 `json:"points"`
	Assists   float64 `json:"assists"`
	Rebounds  float64 `json:"rebounds"`
	Steals    float64 `json:"steals"`
	Blocks    float64 `json:"blocks"`
	PlusMinus float64 `json:"plusMinus"`
}

func convertStatLine(stats domain.StatLine) statLine {
	return statLine{
		Points:    stats.Points,
		Assists:   stats.Assists,
		Rebounds:  stats.Rebounds,
		Steals:    stats.Steals,
		Blocks:    stats.Blocks,
		PlusMinus: stats.PlusMinus,
	}
}

type playerResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Team         string    `json:"team"`
	Position     string    `json:"position"`
	Season       string    `json:"season"`
	Stats        statLine  `json:"stats"`
	Hypothetical bool      `json:"hypothetical"`
	OverallTier  string    `json:"overallTier"`
	PositionTier string    `json:"positionTier"`
	CreatedAt    time.Time `json:"createdAt"`
}

func convertPlayerResponse(player domain.Player) playerResponse {
	overall, positional := tier.Calculate(player.Stats, player.Position)
	return playerResponse{
		ID:           player.ID,
		Name:         player.Name,
		Team:         player.Team,
		Position:     player.Position,
		Season:       player.Season,
		Stats:        convertStatLine(player.Stats),
		Hypothetical: player.Hypothetical,
		OverallTier:  string(overall),
		PositionTier: string(positional),
		CreatedAt:    player.CreatedAt,
	}
}

func convertPlayersResponse(players []domain.Player) []playerResponse {
	converted := make([]playerResponse, 0, len(players))
	for _, player := range players {
		converted = append(converted, convertPlayerResponse(player))
	}
	return converted
}

type comparisonResponse struct {
	PlayerA playerResponse `json:"playerA"`
	PlayerB playerResponse `json:"playerB"`
	Diff    statLine       `json:"diff"`
}

func convertComparisonResponse(c domain.Comparison) comparisonResponse {
	return comparisonResponse{
		PlayerA: convertPlayerResponse(c.PlayerA),
		PlayerB: convertPlayerResponse(c.PlayerB),
		Diff:    convertStatLine(c.Diff),
	}
}

func parseID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Join(domain.ErrValidation, fmt.Errorf("%s must be a positive integer", name))
	}
	return id, nil
}

func parseSearchFilter(ctx *fiber.Ctx) (domain.Filter, error) {
	filter := domain.Filter{
		Name:   ctx.Query("q"),
		Season: ctx.Query("season"),
	}
	if raw := ctx.Query("hypothetical"); raw != "" {
		hypothetical, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.Filter{}, errors.Join(domain.ErrValidation, errors.New("hypothetical must be a boolean"))
		}
		filter.Hypothetical = &hypothetical
	}
	return filter, nil
}
