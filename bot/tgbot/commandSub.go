package tgbot

import (
	"statserver/bot/botstorage"
	"statserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(id int)
}

func (c *SubCommand) Run(user model.User, _ string) (string, error) {
	if err := c.botStorage.Subscribe(user); err != nil {
		return "", err
	}
	c.sub(user.ID)
	return "subscribed to new player records", nil
}

func (c *SubCommand) Help() string {
	return "subscribe to new player record notifications"
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
