package tgbot

import (
	"sort"
	"strings"

	"statserver/bot/model"

	mapset "github.com/deckarep/golang-set/v2"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(user model.User, _ string) (string, error) {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		if name == "start" {
			continue
		}
		if c.commands[name].Visibility().Contains(user.Role) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	var buffer strings.Builder
	for _, name := range names {
		buffer.WriteString("/")
		buffer.WriteString(name)
		buffer.WriteString(" - ")
		buffer.WriteString(c.commands[name].Help())
		buffer.WriteString("\n")
	}
	return buffer.String(), nil
}

func (c *HelpCommand) Help() string {
	return "list available commands"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return allRoles()
}

func (c *HelpCommand) Visibility() mapset.Set[model.UserRole] {
	return allRoles()
}
