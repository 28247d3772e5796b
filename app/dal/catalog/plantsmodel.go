package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ PlantsModel = (*defaultPlantsModel)(nil)

type (
	// PlantsModel is an interface to be customized, add more methods here,
	// and implement the added methods in defaultPlantsModel.
	PlantsModel interface {
		FindOne(ctx context.Context, id string) (*Plants, error)
		FindAll(ctx context.Context) ([]*Plants, error)
		Search(ctx context.Context, keyword string, limit, offset int) ([]*Plants, error)
		CountSearch(ctx context.Context, keyword string) (int64, error)
	}

	defaultPlantsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	Plants struct {
		Id                  string `db:"id"`
		Name                string `db:"name"`
		ScientificName      string `db:"scientific_name"`
		Light               string `db:"light"`
		WaterFrequencyDays  int    `db:"water_frequency_days"`
		HumidityPreference  string `db:"humidity_preference"`
		Difficulty          int    `db:"difficulty"`
		CompatibleLocations string `db:"compatible_locations"`
		PetSafe             bool   `db:"pet_safe"`
		AirPurifying        bool   `db:"air_purifying"`
		Popularity          int    `db:"popularity"`
	}
)

var plantsRows = strings.Join([]string{
	"`id`", "`name`", "`scientific_name`", "`light`", "`water_frequency_days`",
	"`humidity_preference`", "`difficulty`", "`compatible_locations`",
	"`pet_safe`", "`air_purifying`", "`popularity`",
}, ",")

// NewPlantsModel returns a model for the database table.
func NewPlantsModel(conn sqlx.SqlConn) PlantsModel {
	return &defaultPlantsModel{
		conn:  conn,
		table: "`plants`",
	}
}

func (m *defaultPlantsModel) FindOne(ctx context.Context, id string) (*Plants, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", plantsRows, m.table)
	var resp Plants
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

func (m *defaultPlantsModel) FindAll(ctx context.Context) ([]*Plants, error) {
	query := fmt.Sprintf("select %s from %s order by `id` asc", plantsRows, m.table)
	var resp []*Plants
	err := m.conn.QueryRowsCtx(ctx, &resp, query)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *defaultPlantsModel) Search(ctx context.Context, keyword string, limit, offset int) ([]*Plants, error) {
	query := fmt.Sprintf(
		"select %s from %s where `name` like ? or `scientific_name` like ? order by `popularity` desc, `id` asc limit ? offset ?",
		plantsRows, m.table)
	pattern := "%" + keyword + "%"
	var resp []*Plants
	err := m.conn.QueryRowsCtx(ctx, &resp, query, pattern, pattern, limit, offset)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *defaultPlantsModel) CountSearch(ctx context.Context, keyword string) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s where `name` like ? or `scientific_name` like ?", m.table)
	pattern := "%" + keyword + "%"
	var total int64
	err := m.conn.QueryRowCtx(ctx, &total, query, pattern, pattern)
	if err != nil {
		return 0, err
	}
	return total, nil
}
