// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"SproutAI/app/services/assistant/internal/svc"
	"SproutAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type StartSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStartSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StartSessionLogic {
	return &StartSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *StartSessionLogic) StartSession() (resp *types.StartSessionResponse, err error) {
	reply := l.svcCtx.Convo.StartSession(l.ctx)
	return &types.StartSessionResponse{
		SessionId: reply.SessionID,
		State:     string(reply.State),
		Reply:     reply.Message,
	}, nil
}
