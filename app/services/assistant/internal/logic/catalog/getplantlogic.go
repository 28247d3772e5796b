// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"
	"strings"

	"SproutAI/app/common/consts/errno"
	dal "SproutAI/app/dal/catalog"
	"SproutAI/app/services/assistant/internal/logic/helper"
	"SproutAI/app/services/assistant/internal/svc"
	"SproutAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type GetPlantLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPlantLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPlantLogic {
	return &GetPlantLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPlantLogic) GetPlant(req *types.GetPlantRequest) (resp *types.GetPlantResponse, err error) {
	id := strings.TrimSpace(req.Id)
	if id == "" {
		return nil, xerrors.New(errno.InvalidParam, "plant id is empty")
	}

	if snap, err := l.svcCtx.Catalog.Current(); err == nil {
		if plant, ok := findPlant(snap, id); ok {
			return &types.GetPlantResponse{Plant: helper.ToPlantInfo(plant)}, nil
		}
	} else if l.svcCtx.Plants == nil {
		return nil, xerrors.New(errno.CatalogUnavailable, "catalog unavailable")
	}

	if l.svcCtx.Plants != nil {
		// A row not yet in the snapshot (added since the last refresh) is
		// still servable straight from the table.
		row, err := l.svcCtx.Plants.FindOne(l.ctx, id)
		if err == nil {
			return &types.GetPlantResponse{Plant: types.PlantInfo{
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
			}}, nil
		}
		if !errors.Is(err, dal.ErrNotFound) {
			l.Logger.Error("logic: find plant failed: ", err)
			return nil, xerrors.New(errno.InternalError, "get plant failed")
		}
	}

	return nil, xerrors.New(errno.PlantNotFound, "plant not found")
}
