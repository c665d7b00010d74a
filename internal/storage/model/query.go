package model

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

const guildColumns = `name, guild_id, invite_url, icon_url`

func CreateGuildTable(ctx context.Context, q Querier) error {
	_, err := q.ExecContext(ctx, `create table if not exists guilds (
		guild_id   bigint primary key,
		name       text not null,
		invite_url text,
		icon_url   text
	)`)
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanGuild(row scanner) (*Guild, error) {
	var (
		g            Guild
		id           int64
		invite, icon *string
	)
	if err := row.Scan(&g.Name, &id, &invite, &icon); err != nil {
		return nil, err
	}
	g.ID = Snowflake(id)
	g.InviteURL, g.IconURL = parseNullURL(invite), parseNullURL(icon)
	return &g, nil
}

func queryGuilds(ctx context.Context, q Querier, sql string, args ...interface{}) ([]*Guild, error) {
	rows, err := q.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	gs := make([]*Guild, 0)
	for rows.Next() {
		g, err := scanGuild(rows)
		if err != nil {
			return nil, err
		}
		gs = append(gs, g)
	}

	return gs, rows.Err()
}

// FindGuild returns the guild with the given ID, or nil if there is none.
func FindGuild(ctx context.Context, q Querier, id Snowflake) (*Guild, error) {
	g, err := scanGuild(q.QueryRowContext(ctx, `select `+guildColumns+` from guilds where guild_id = $1`, int64(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return g, err
}

func FindAllGuilds(ctx context.Context, q Querier) ([]*Guild, error) {
	return queryGuilds(ctx, q, `select `+guildColumns+` from guilds`)
}

// SearchGuilds matches name as a literal, case-insensitive substring.
func SearchGuilds(ctx context.Context, q Querier, name string) ([]*Guild, error) {
	return queryGuilds(
		ctx,
		q,
		`select `+guildColumns+` from guilds where lower(name) like lower($1) escape '\'`,
		"%"+escapeLike(name)+"%",
	)
}

func UpsertGuild(ctx context.Context, q Querier, g *Guild) error {
	if err := g.Validate(); err != nil {
		return err
	}
	_, err := q.ExecContext(
		ctx,
		`insert into guilds (guild_id, name, invite_url, icon_url) values ($1, $2, $3, $4)
		on conflict (guild_id) do update set name = excluded.name, invite_url = excluded.invite_url, icon_url = excluded.icon_url`,
		int64(g.ID), g.Name, nullURL(g.InviteURL), nullURL(g.IconURL),
	)
	return err
}

// DeleteGuild reports whether a row was deleted.
func DeleteGuild(ctx context.Context, q Querier, id Snowflake) (bool, error) {
	res, err := q.ExecContext(ctx, `delete from guilds where guild_id = $1`, int64(id))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
