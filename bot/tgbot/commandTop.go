package tgbot

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"statserver/bot/model"
	"statserver/internal/domain"
	"statserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type TopCommand struct {
	playerService *service.PlayerService
}

const topSize = 10

func (c *TopCommand) Run(_ model.User, _ string) (string, error) {
	players, err := c.playerService.SearchPlayers(context.Background(), domain.Filter{})
	if err != nil {
		return "", err
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Stats.Points > players[j].Stats.Points
	})
	var buffer strings.Builder
	for i := range players {
		if i >= topSize {
			break
		}
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(players[i].Name)
		buffer.WriteString(" (")
		buffer.WriteString(players[i].Season)
		buffer.WriteString(") ")
		buffer.WriteString(strconv.FormatFloat(players[i].Stats.Points, 'f', 1, 64))
		buffer.WriteString(" ppg\n")
	}
	return buffer.String(), nil
}

func (c *TopCommand) Help() string {
	return "top scorers by points per game"
}

func (c *TopCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *TopCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
