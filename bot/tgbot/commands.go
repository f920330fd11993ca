package tgbot

import (
	"statserver/bot/botstorage"
	"statserver/bot/model"
	"statserver/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
)

type Command interface {
	Run(user model.User, args string) (string, error)
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	ps *service.PlayerService,
	bs botstorage.BotStorage,
	subFn func(id int),
	unsubFn func(id int),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"search": &SearchCommand{
				playerService: ps,
			},
			"top": &TopCommand{
				playerService: ps,
			},
			"compare": &CompareCommand{
				playerService: ps,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user model.User, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(user, args)
			}
		}
	}
	return "", ErrBadRequest
}

func allRoles() mapset.Set[model.UserRole] {
	return mapset.NewSet(model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
