package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"pkg.mon.icu/guildly/internal/storage/model"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// sqliteUnicode is go-sqlite3 with lower() folding all of Unicode rather
// than ASCII only, so name search behaves the same as on postgres.
const sqliteUnicode = "sqlite3_unicode"

func init() {
	sql.Register(sqliteUnicode, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

// ErrUnknownDriver is returned by Open for drivers other than DriverSQLite and DriverPostgres.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Storage is the guild directory. It is safe for concurrent use; every call
// goes straight to the database.
type Storage struct {
	logger *zap.Logger
	db     *sql.DB
}

// Open opens (creating if needed) the guilds table behind dsn. It is safe to
// call repeatedly against the same location.
func Open(ctx context.Context, log *zap.Logger, driver, dsn string) (*Storage, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	name := driver
	if driver == DriverSQLite {
		name = sqliteUnicode
	}
	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// sqlite serializes writers anyway; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	s := &Storage{logger: log, db: db}
	if err := s.db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("couldn't connect to %s database: %w", driver, err)
	}
	if err := model.CreateGuildTable(ctx, s.db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("couldn't create guilds table: %w", err)
	}

	log.Sugar().Debugf("Opened %s storage.", driver)
	return s, nil
}

// Begin runs fn inside a transaction, committing if fn returns nil.
func (s *Storage) Begin(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("couldn't begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			s.logger.Sugar().Errorf("Couldn't roll back transaction: %s.", rerr)
		}
		return err
	}

	return tx.Commit()
}

// Upsert writes g, replacing any record with the same ID, and returns the
// replaced record or nil.
func (s *Storage) Upsert(ctx context.Context, g *model.Guild) (*model.Guild, error) {
	var old *model.Guild
	if err := s.Begin(ctx, func(tx *sql.Tx) error {
		var err error
		if old, err = model.FindGuild(ctx, tx, g.ID); err != nil {
			return fmt.Errorf("failed to find guild: %w", err)
		}
		if err := model.UpsertGuild(ctx, tx, g); err != nil {
			return fmt.Errorf("failed to upsert guild: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return old, nil
}

// Get returns the guild with the given ID or nil.
func (s *Storage) Get(ctx context.Context, id model.Snowflake) (*model.Guild, error) {
	g, err := model.FindGuild(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find guild: %w", err)
	}
	return g, nil
}

// Remove deletes the guild with the given ID and returns it, or nil if it was
// not present.
func (s *Storage) Remove(ctx context.Context, id model.Snowflake) (*model.Guild, error) {
	var old *model.Guild
	if err := s.Begin(ctx, func(tx *sql.Tx) error {
		var err error
		if old, err = model.FindGuild(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to find guild: %w", err)
		}
		if old == nil {
			return nil
		}
		if _, err := model.DeleteGuild(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete guild: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return old, nil
}

// Search returns the guilds whose name contains name, ignoring case.
func (s *Storage) Search(ctx context.Context, name string) ([]*model.Guild, error) {
	gs, err := model.SearchGuilds(ctx, s.db, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search guilds: %w", err)
	}
	return gs, nil
}

// Export returns every guild in storage order.
func (s *Storage) Export(ctx context.Context) ([]*model.Guild, error) {
	gs, err := model.FindAllGuilds(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to export guilds: %w", err)
	}
	return gs, nil
}

// ImportError reports how many entries were written before an import failed.
type ImportError struct {
	Applied int
	Err     error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed after %d entries: %s", e.Applied, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Import upserts each guild in order. Entries written before a failure stay
// written and the returned *ImportError says how many there were.
func (s *Storage) Import(ctx context.Context, gs []*model.Guild) error {
	for i, g := range gs {
		if _, err := s.Upsert(ctx, g); err != nil {
			return &ImportError{Applied: i, Err: err}
		}
	}

	s.logger.Sugar().Infof("Imported %d guilds.", len(gs))
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
