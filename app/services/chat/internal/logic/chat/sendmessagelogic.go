// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"

	"lourini/app/common/consts/errno"
	"lourini/app/services/chat/internal/svc"
	"lourini/app/services/chat/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SendMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendMessageLogic {
	return &SendMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SendMessageLogic) SendMessage(req *types.SendMessageRequest) (resp *types.SendMessageResponse, err error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New(int(errno.InvalidParam), "message content is empty")
	}

	conv, ok := l.svcCtx.Sessions.Get(req.ConversationId)
	if !ok {
		return nil, errors.New(int(errno.ConversationNotFound), "conversation not found")
	}

	resp = &types.SendMessageResponse{
		Messages: conv.Handle(l.ctx, req.Content),
	}
	return
}
