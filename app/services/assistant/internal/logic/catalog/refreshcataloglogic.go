// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"encoding/json"
	"time"

	"SproutAI/app/common/consts/errno"
	"SproutAI/app/services/assistant/internal/mq"
	"SproutAI/app/services/assistant/internal/svc"
	"SproutAI/app/services/assistant/internal/types"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type RefreshCatalogLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRefreshCatalogLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshCatalogLogic {
	return &RefreshCatalogLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// RefreshCatalog reloads the catalog out of band when an asynq worker is
// configured, falling back to a synchronous reload otherwise.
func (l *RefreshCatalogLogic) RefreshCatalog() (resp *types.RefreshCatalogResponse, err error) {
	if l.svcCtx.AsynqClient != nil {
		payload, _ := json.Marshal(mq.CatalogRefreshPayload{Reason: "manual"})
		task := asynq.NewTask(mq.TaskCatalogRefresh, payload)
		if _, err := l.svcCtx.AsynqClient.Enqueue(task, asynq.Queue("default")); err != nil {
			l.Logger.Error("logic: enqueue catalog refresh failed: ", err)
			return nil, xerrors.New(errno.CatalogRefreshError, "enqueue refresh failed")
		}
		return &types.RefreshCatalogResponse{Enqueued: true}, nil
	}

	snap, err := l.svcCtx.Catalog.Refresh(l.ctx)
	if err != nil {
		l.Logger.Error("logic: catalog refresh failed: ", err)
		return nil, xerrors.New(errno.CatalogRefreshError, "catalog refresh failed")
	}

	evt := mq.CatalogRefreshedEvent{
		Plants:      len(snap.Plants),
		Products:    len(snap.Products),
		Kits:        len(snap.Kits),
		RefreshedAt: time.Now().Unix(),
	}
	if err := mq.PublishCatalogRefreshed(l.ctx, l.svcCtx, evt); err != nil {
		l.Logger.Error("logic: publish catalog refreshed failed: ", err)
	}
	return &types.RefreshCatalogResponse{Enqueued: false}, nil
}
