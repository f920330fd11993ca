package storage

import (
	"context"

	"statserver/internal/domain"
)

type PlayerStorage interface {
	Create(ctx context.Context, player domain.Player) (domain.Player, error)
	Get(ctx context.Context, id int64) (domain.Player, error)
	Update(ctx context.Context, player domain.Player) (domain.Player, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter domain.Filter) ([]domain.Player, error)
	Seasons(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
}
