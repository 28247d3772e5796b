package middleware

import (
	"crypto/subtle"
	"net/http"

	"SproutAI/app/common/consts/biz"
	"SproutAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// AdminMiddleware guards operator-only routes with a shared token. An empty
// configured token disables the routes entirely rather than leaving them open.
type AdminMiddleware struct {
	token string
}

func NewAdminMiddleware(token string) *AdminMiddleware {
	return &AdminMiddleware{token: token}
}

func (m *AdminMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.token == "" {
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.Unauthorized, "admin routes disabled"))
			return
		}
		got := r.Header.Get(biz.AdminTokenHeader)
		if got == "" {
			if cookie, err := r.Cookie(biz.AdminTokenHeader); err == nil {
				got = cookie.Value
			}
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(m.token)) != 1 {
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.Unauthorized, "invalid admin token"))
			return
		}
		next(w, r)
	}
}
