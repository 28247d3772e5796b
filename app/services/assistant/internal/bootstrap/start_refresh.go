package bootstrap

import (
	"encoding/json"
	"time"

	"SproutAI/app/services/assistant/internal/mq"
	"SproutAI/app/services/assistant/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// StartCatalogRefresher enqueues a periodic catalog refresh task. Returns a
// stop func; a zero interval or missing asynq client disables it.
func StartCatalogRefresher(sc *svc.ServiceContext) func() {
	interval := time.Duration(sc.Config.CatalogConf.RefreshIntervalMinutes) * time.Minute
	if interval <= 0 || sc.AsynqClient == nil {
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				payload, _ := json.Marshal(mq.CatalogRefreshPayload{Reason: "scheduled"})
				task := asynq.NewTask(mq.TaskCatalogRefresh, payload)
				if _, err := sc.AsynqClient.Enqueue(task, asynq.Queue("default")); err != nil {
					logx.Errorf("enqueue catalog refresh failed: %v", err)
				}
			}
		}
	}()
	return func() { close(done) }
}
