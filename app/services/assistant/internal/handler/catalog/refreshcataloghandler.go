// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"SproutAI/app/common/response"
	logic "SproutAI/app/services/assistant/internal/logic/catalog"
	"SproutAI/app/services/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func RefreshCatalogHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewRefreshCatalogLogic(r.Context(), svcCtx)
		resp, err := l.RefreshCatalog()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, response.OK(resp))
		}
	}
}
