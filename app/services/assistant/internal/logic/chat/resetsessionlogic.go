// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"
	"strings"

	"SproutAI/app/common/consts/errno"
	"SproutAI/app/services/assistant/internal/assistant/convo"
	"SproutAI/app/services/assistant/internal/svc"
	"SproutAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type ResetSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewResetSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResetSessionLogic {
	return &ResetSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ResetSessionLogic) ResetSession(req *types.ResetSessionRequest) (resp *types.ResetSessionResponse, err error) {
	if strings.TrimSpace(req.SessionId) == "" {
		return nil, xerrors.New(errno.InvalidParam, "session_id is empty")
	}

	reply, err := l.svcCtx.Convo.Reset(l.ctx, req.SessionId)
	if err != nil {
		if errors.Is(err, convo.ErrSessionNotFound) {
			return nil, xerrors.New(errno.SessionNotFound, "session not found or expired")
		}
		l.Logger.Error("logic: reset session failed: ", err)
		return nil, xerrors.New(errno.InternalError, "reset session failed")
	}

	return &types.ResetSessionResponse{
		SessionId: reply.SessionID,
		State:     string(reply.State),
		Reply:     reply.Message,
	}, nil
}
