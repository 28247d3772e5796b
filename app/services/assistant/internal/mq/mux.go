package mq

import (
	"context"
	"time"

	"SproutAI/app/services/assistant/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskCatalogRefresh, newCatalogRefreshHandler(sc))
	return mux
}

func newCatalogRefreshHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		log := logx.WithContext(ctx)

		snap, err := sc.Catalog.Refresh(ctx)
		if err != nil {
			log.Errorf("catalog refresh task failed: %v", err)
			return err
		}
		evt := CatalogRefreshedEvent{
			Plants:      len(snap.Plants),
			Products:    len(snap.Products),
			Kits:        len(snap.Kits),
			RefreshedAt: time.Now().Unix(),
		}
		if err := PublishCatalogRefreshed(ctx, sc, evt); err != nil {
			log.Errorf("publish catalog refreshed event failed: %v", err)
		}
		return nil
	}
}
