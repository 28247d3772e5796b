package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ ProductsModel = (*defaultProductsModel)(nil)

type (
	ProductsModel interface {
		FindOne(ctx context.Context, id string) (*Products, error)
		FindAll(ctx context.Context) ([]*Products, error)
	}

	defaultProductsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	Products struct {
		Id                  string `db:"id"`
		Name                string `db:"name"`
		Category            string `db:"category"`
		PriceCents          int64  `db:"price_cents"`
		CompatiblePlants    string `db:"compatible_plants"`
		CompatibleLocations string `db:"compatible_locations"`
		Popularity          int    `db:"popularity"`
	}
)

var productsRows = strings.Join([]string{
	"`id`", "`name`", "`category`", "`price_cents`",
	"`compatible_plants`", "`compatible_locations`", "`popularity`",
}, ",")

func NewProductsModel(conn sqlx.SqlConn) ProductsModel {
	return &defaultProductsModel{
		conn:  conn,
		table: "`products`",
	}
}

func (m *defaultProductsModel) FindOne(ctx context.Context, id string) (*Products, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", productsRows, m.table)
	var resp Products
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

func (m *defaultProductsModel) FindAll(ctx context.Context) ([]*Products, error) {
	query := fmt.Sprintf("select %s from %s order by `id` asc", productsRows, m.table)
	var resp []*Products
	err := m.conn.QueryRowsCtx(ctx, &resp, query)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
