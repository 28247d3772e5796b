package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ KitsModel = (*defaultKitsModel)(nil)

type (
	KitsModel interface {
		FindOne(ctx context.Context, id string) (*Kits, error)
		FindAll(ctx context.Context) ([]*Kits, error)
	}

	defaultKitsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	Kits struct {
		Id                  string `db:"id"`
		Name                string `db:"name"`
		PriceCents          int64  `db:"price_cents"`
		Difficulty          int    `db:"difficulty"`
		Light               string `db:"light"`
		PlantIds            string `db:"plant_ids"`
		CompatibleLocations string `db:"compatible_locations"`
		Popularity          int    `db:"popularity"`
	}
)

var kitsRows = strings.Join([]string{
	"`id`", "`name`", "`price_cents`", "`difficulty`", "`light`",
	"`plant_ids`", "`compatible_locations`", "`popularity`",
}, ",")

func NewKitsModel(conn sqlx.SqlConn) KitsModel {
	return &defaultKitsModel{
		conn:  conn,
		table: "`kits`",
	}
}

func (m *defaultKitsModel) FindOne(ctx context.Context, id string) (*Kits, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", kitsRows, m.table)
	var resp Kits
	err := m.conn.QueryRowCtx(ctx, &resp, query, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlx.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultKitsModel) FindAll(ctx context.Context) ([]*Kits, error) {
	query := fmt.Sprintf("select %s from %s order by `id` asc", kitsRows, m.table)
	var resp []*Kits
	err := m.conn.QueryRowsCtx(ctx, &resp, query)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
