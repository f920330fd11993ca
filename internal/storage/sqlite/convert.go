package sqlite

import (
	"statserver/gen/model"
	"statserver/internal/domain"
)

func convertPlayerToDomain(player model.Players) domain.Player {
	return domain.Player{
		ID:       int64(player.ID),
		Name:     player.Name,
		Team:     player.Team,
		Position: player.Position,
		Season:   player.Season,
		Stats: domain.StatLine{
			Points:    player.Ppg,
			Assists:   player.Apg,
			Rebounds:  player.Rpg,
			Steals:    player.Stl,
			Blocks:    player.Blk,
			PlusMinus: player.PlusMinus,
		},
		Hypothetical: player.Hypothetical,
		CreatedAt:    player.CreatedAt,
	}
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:           int32(player.ID),
		Name:         player.Name,
		Team:         player.Team,
		Position:     player.Position,
		Season:       player.Season,
		Ppg:          player.Stats.Points,
		Apg:          player.Stats.Assists,
		Rpg:          player.Stats.Rebounds,
		Stl:          player.Stats.Steals,
		Blk:          player.Stats.Blocks,
		PlusMinus:    player.Stats.PlusMinus,
		Hypothetical: player.Hypothetical,
		CreatedAt:    player.CreatedAt,
	}
}

func convertPlayers(players []model.Players) []domain.Player {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		converted = append(converted, convertPlayerToDomain(player))
	}
	return converted
}
