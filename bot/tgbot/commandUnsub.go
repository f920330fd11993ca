package tgbot

import (
	"statserver/bot/botstorage"
	"statserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(id int)
}

func (c *UnsubCommand) Run(user model.User, _ string) (string, error) {
	if err := c.botStorage.Unsubscribe(user); err != nil {
		return "", err
	}
	c.unsub(user.ID)
	return "unsubscribed from new player records", nil
}

func (c *UnsubCommand) Help() string {
	return "unsubscribe from new player record notifications"
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
