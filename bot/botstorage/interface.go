package botstorage

import "statserver/bot/model"

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int) (model.User, error)
	ListUsers() ([]model.User, error)
	Log(model.User, string) error
	Subscribe(model.User) error
	Unsubscribe(model.User) error
}
