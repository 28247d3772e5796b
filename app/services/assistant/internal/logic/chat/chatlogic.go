// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"
	"strings"
	"time"

	"SproutAI/app/common/consts/errno"
	"SproutAI/app/services/assistant/internal/assistant/convo"
	"SproutAI/app/services/assistant/internal/logic/helper"
	"SproutAI/app/services/assistant/internal/mq"
	"SproutAI/app/services/assistant/internal/svc"
	"SproutAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (resp *types.ChatResponse, err error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, xerrors.New(errno.InvalidParam, "message is empty")
	}

	reply, err := l.svcCtx.Convo.HandleTurn(l.ctx, req.SessionId, req.Message)
	if err != nil {
		if errors.Is(err, convo.ErrSessionNotFound) {
			return nil, xerrors.New(errno.SessionNotFound, "session not found or expired")
		}
		l.Logger.Error("logic: chat turn failed: ", err)
		return nil, xerrors.New(errno.InternalError, "chat turn failed")
	}

	if reply.Recommendation != nil {
		l.publishServed(reply)
	}

	return helper.ToChatResponse(reply), nil
}

func (l *ChatLogic) publishServed(reply *convo.TurnReply) {
	evt := mq.RecommendationServedEvent{
		SessionId: reply.SessionID,
		ServedAt:  time.Now().Unix(),
	}
	if reply.Criteria.Room != nil {
		evt.Room = string(*reply.Criteria.Room)
	}
	if reply.Criteria.Light != nil {
		evt.Light = string(*reply.Criteria.Light)
	}
	if reply.Criteria.Experience != nil {
		evt.Experience = string(*reply.Criteria.Experience)
	}
	if reply.Criteria.Maintenance != nil {
		evt.Maintenance = string(*reply.Criteria.Maintenance)
	}
	for _, plant := range reply.Recommendation.Plants {
		evt.PlantIds = append(evt.PlantIds, plant.Plant.ID)
	}
	for _, slot := range reply.Recommendation.Relaxed {
		evt.Relaxed = append(evt.Relaxed, string(slot))
	}
	if err := mq.PublishRecommendationServed(l.ctx, l.svcCtx, evt); err != nil {
		l.Logger.Error("logic: publish recommendation served failed: ", err)
	}
}
