// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"lourini/app/common/snowflake"
	"lourini/app/services/chat/internal/bot/dialog"
	"lourini/app/services/chat/internal/svc"
	"lourini/app/services/chat/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type StartConversationLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStartConversationLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StartConversationLogic {
	return &StartConversationLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *StartConversationLogic) StartConversation() (resp *types.StartConversationResponse, err error) {
	id := snowflake.NextString()
	conv := dialog.New(l.svcCtx.Catalog, l.svcCtx.Orders)
	l.svcCtx.Sessions.Put(id, conv)

	l.Logger.Infow("conversation started", logx.Field("conversationId", id))

	resp = &types.StartConversationResponse{
		ConversationId: id,
		Messages:       conv.Welcome(),
	}
	return
}
