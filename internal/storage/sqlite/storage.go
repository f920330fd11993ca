package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"statserver/gen/model"
	"statserver/gen/table"
	"statserver/internal/config"
	"statserver/internal/domain"
	sqlite3 "statserver/internal/migrate"
	"statserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)

func New(cfg config.Server, l *logrus.Logger) (*Storage, error) {
	log := l.WithField("from", "player-storage")
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("player storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Create(ctx context.Context, player domain.Player) (domain.Player, error) {
	var dbPlayer model.Players
	err := table.Players.
		INSERT(table.Players.MutableColumns).
		MODEL(convertPlayerFromDomain(player)).
		RETURNING(table.Players.AllColumns).
		QueryContext(ctx, s.db, &dbPlayer)
	if err != nil {
		return domain.Player{}, errors.Join(domain.ErrStorage, err)
	}
	return convertPlayerToDomain(dbPlayer), nil
}

func (s *Storage) Get(ctx context.Context, id int64) (domain.Player, error) {
	var dbPlayer model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &dbPlayer)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, domain.ErrPlayerNotFound
		}
		return domain.Player{}, errors.Join(domain.ErrStorage, err)
	}
	return convertPlayerToDomain(dbPlayer), nil
}

func (s *Storage) Update(ctx context.Context, player domain.Player) (domain.Player, error) {
	res, err := table.Players.
		UPDATE(table.Players.MutableColumns).
		MODEL(convertPlayerFromDomain(player)).
		WHERE(table.Players.ID.EQ(sqlite.Int(player.ID))).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.Player{}, errors.Join(domain.ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Player{}, errors.Join(domain.ErrStorage, err)
	}
	if affected == 0 {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) Delete(ctx context.Context, id int64) error {
	res, err := table.Players.
		DELETE().
		WHERE(table.Players.ID.EQ(sqlite.Int(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return errors.Join(domain.ErrStorage, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Join(domain.ErrStorage, err)
	}
	if affected == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (s *Storage) Search(ctx context.Context, filter domain.Filter) ([]domain.Player, error) {
	cond := sqlite.Bool(true)
	if filter.Name != "" {
		cond = cond.AND(table.Players.Name.LIKE(sqlite.String("%" + filter.Name + "%")))
	}
	if filter.Season != "" {
		cond = cond.AND(table.Players.Season.EQ(sqlite.String(filter.Season)))
	}
	if filter.Hypothetical != nil {
		cond = cond.AND(table.Players.Hypothetical.EQ(sqlite.Bool(*filter.Hypothetical)))
	}

	stmt := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(cond).
		ORDER_BY(table.Players.Name.ASC(), table.Players.Season.DESC())
	if filter.Limit > 0 {
		stmt = stmt.LIMIT(int64(filter.Limit))
	}

	var dbPlayers []model.Players
	err := stmt.QueryContext(ctx, s.db, &dbPlayers)
	if err != nil {
		return nil, errors.Join(domain.ErrStorage, err)
	}
	return convertPlayers(dbPlayers), nil
}

func (s *Storage) Seasons(ctx context.Context) ([]string, error) {
	var dbPlayers []model.Players
	err := table.Players.
		SELECT(table.Players.Season).
		DISTINCT().
		FROM(table.Players).
		ORDER_BY(table.Players.Season.ASC()).
		QueryContext(ctx, s.db, &dbPlayers)
	if err != nil {
		return nil, errors.Join(domain.ErrStorage, err)
	}
	seasons := make([]string, 0, len(dbPlayers))
	for i := range dbPlayers {
		seasons = append(seasons, dbPlayers[i].Season)
	}
	return seasons, nil
}
