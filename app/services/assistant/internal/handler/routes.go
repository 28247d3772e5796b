// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	cataloghandler "SproutAI/app/services/assistant/internal/handler/catalog"
	chathandler "SproutAI/app/services/assistant/internal/handler/chat"
	"SproutAI/app/services/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/session",
				Handler: chathandler.StartSessionHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chat",
				Handler: chathandler.ChatHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/session/reset",
				Handler: chathandler.ResetSessionHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1/assistant"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/plants",
				Handler: cataloghandler.ListPlantsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/plants/:id",
				Handler: cataloghandler.GetPlantHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1/assistant"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AdminMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/catalog/refresh",
					Handler: cataloghandler.RefreshCatalogHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api/v1/assistant"),
	)
}
