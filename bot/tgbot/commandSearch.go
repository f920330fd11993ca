package tgbot

import (
	"context"
	"fmt"
	"strings"

	"statserver/bot/model"
	"statserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type SearchCommand struct {
	playerService *service.PlayerService
}

func (c *SearchCommand) Run(_ model.User, args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "usage: /search <player name>", nil
	}
	players, err := c.playerService.GetByName(context.Background(), name)
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i := range players {
		buffer.WriteString(fmt.Sprintf("#%d %s (%s, %s, %s): %.1f pts, %.1f ast, %.1f reb\n",
			players[i].ID,
			players[i].Name,
			players[i].Season,
			players[i].Team,
			players[i].Position,
			players[i].Stats.Points,
			players[i].Stats.Assists,
			players[i].Stats.Rebounds,
		))
	}
	return buffer.String(), nil
}

func (c *SearchCommand) Help() string {
	return "find player records by name"
}

func (c *SearchCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *SearchCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
