// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"sort"
	"strings"

	"SproutAI/app/common/consts/biz"
	"SproutAI/app/common/consts/errno"
	"SproutAI/app/services/assistant/internal/assistant/catalog"
	"SproutAI/app/services/assistant/internal/logic/helper"
	"SproutAI/app/services/assistant/internal/svc"
	"SproutAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type ListPlantsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListPlantsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListPlantsLogic {
	return &ListPlantsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListPlantsLogic) ListPlants(req *types.ListPlantsRequest) (resp *types.ListPlantsResponse, err error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.PageSize
	if size < 1 {
		size = biz.DefaultPageSize
	}
	if size > biz.MaxPageSize {
		size = biz.MaxPageSize
	}

	if l.svcCtx.Plants != nil {
		return l.listFromDB(req.Keyword, page, size)
	}
	return l.listFromSnapshot(req.Keyword, page, size)
}

func (l *ListPlantsLogic) listFromDB(keyword string, page, size int) (*types.ListPlantsResponse, error) {
	total, err := l.svcCtx.Plants.CountSearch(l.ctx, keyword)
	if err != nil {
		l.Logger.Error("logic: count plants failed: ", err)
		return nil, xerrors.New(errno.InternalError, "list plants failed")
	}
	rows, err := l.svcCtx.Plants.Search(l.ctx, keyword, size, (page-1)*size)
	if err != nil {
		l.Logger.Error("logic: search plants failed: ", err)
		return nil, xerrors.New(errno.InternalError, "list plants failed")
	}

	resp := &types.ListPlantsResponse{
		Total:    total,
		Page:     page,
		PageSize: size,
		Plants:   make([]types.PlantInfo, 0, len(rows)),
	}
	// Rows from the table go through the same coercion as the snapshot, so
	// both paths surface identical records.
	snap, snapErr := l.svcCtx.Catalog.Current()
	for _, row := range rows {
		if snapErr == nil {
			if plant, ok := findPlant(snap, row.Id); ok {
				resp.Plants = append(resp.Plants, helper.ToPlantInfo(plant))
				continue
			}
		}
		resp.Plants = append(resp.Plants, types.PlantInfo{
			Id:             row.Id,
			Name:           row.Name,
			ScientificName: row.ScientificName,
			Light:          row.Light,
			Humidity:       row.HumidityPreference,
			Difficulty:     row.Difficulty,
			WaterEveryDays: row.WaterFrequencyDays,
			PetSafe:        row.PetSafe,
			AirPurifying:   row.AirPurifying,
			Popularity:     row.Popularity,
		})
	}
	return resp, nil
}

func (l *ListPlantsLogic) listFromSnapshot(keyword string, page, size int) (*types.ListPlantsResponse, error) {
	snap, err := l.svcCtx.Catalog.Current()
	if err != nil {
		return nil, xerrors.New(errno.CatalogUnavailable, "catalog unavailable")
	}

	needle := strings.ToLower(strings.TrimSpace(keyword))
	matched := make([]catalog.PlantRecord, 0, len(snap.Plants))
	for _, plant := range snap.Plants {
		if needle == "" ||
			strings.Contains(strings.ToLower(plant.Name), needle) ||
			strings.Contains(strings.ToLower(plant.ScientificName), needle) {
			matched = append(matched, plant)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Popularity != matched[j].Popularity {
			return matched[i].Popularity > matched[j].Popularity
		}
		return matched[i].ID < matched[j].ID
	})

	resp := &types.ListPlantsResponse{
		Total:    int64(len(matched)),
		Page:     page,
		PageSize: size,
	}
	start := (page - 1) * size
	if start >= len(matched) {
		resp.Plants = []types.PlantInfo{}
		return resp, nil
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	resp.Plants = make([]types.PlantInfo, 0, end-start)
	for _, plant := range matched[start:end] {
		resp.Plants = append(resp.Plants, helper.ToPlantInfo(plant))
	}
	return resp, nil
}

func findPlant(snap *catalog.Snapshot, id string) (catalog.PlantRecord, bool) {
	for _, plant := range snap.Plants {
		if plant.ID == id {
			return plant, true
		}
	}
	return catalog.PlantRecord{}, false
}
