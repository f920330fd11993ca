package tgbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"statserver/bot/model"
	"statserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type CompareCommand struct {
	playerService *service.PlayerService
}

func (c *CompareCommand) Run(_ model.User, args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "usage: /compare <id> <id>", nil
	}
	idA, errA := strconv.ParseInt(fields[0], 10, 64)
	idB, errB := strconv.ParseInt(fields[1], 10, 64)
	if errA != nil || errB != nil {
		return "usage: /compare <id> <id>", nil
	}
	comparison, err := c.playerService.Compare(context.Background(), idA, idB)
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	buffer.WriteString(fmt.Sprintf("%s (%s) vs %s (%s)\n",
		comparison.PlayerA.Name, comparison.PlayerA.Season,
		comparison.PlayerB.Name, comparison.PlayerB.Season))
	buffer.WriteString(fmt.Sprintf("%s / %s\n", comparison.OverallTierA, comparison.OverallTierB))
	for _, line := range []struct {
		name string
		diff float64
	}{
		{"pts", comparison.Diff.Points},
		{"ast", comparison.Diff.Assists},
		{"reb", comparison.Diff.Rebounds},
		{"stl", comparison.Diff.Steals},
		{"blk", comparison.Diff.Blocks},
		{"+/-", comparison.Diff.PlusMinus},
	} {
		buffer.WriteString(fmt.Sprintf("%s: %+.1f\n", line.name, line.diff))
	}
	return buffer.String(), nil
}

func (c *CompareCommand) Help() string {
	return "compare two player records by id"
}

func (c *CompareCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *CompareCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
