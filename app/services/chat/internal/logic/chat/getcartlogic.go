// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"lourini/app/common/consts/errno"
	"lourini/app/services/chat/internal/svc"
	"lourini/app/services/chat/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetCartLogic {
	return &GetCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetCartLogic) GetCart(req *types.GetCartRequest) (resp *types.GetCartResponse, err error) {
	conv, ok := l.svcCtx.Sessions.Get(req.ConversationId)
	if !ok {
		return nil, errors.New(int(errno.ConversationNotFound), "conversation not found")
	}

	entries, total := conv.CartSnapshot()
	items := make([]types.CartItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, types.CartItem{
			Kind:        string(e.Kind),
			Name:        e.Name,
			FabricClass: e.Class,
			Size:        e.Size,
			Quantity:    e.Quantity,
			Unit:        e.Unit,
			UnitPrice:   e.UnitPrice,
			Subtotal:    e.Subtotal,
		})
	}

	resp = &types.GetCartResponse{
		Items: items,
		Total: total,
		View:  conv.CartView(),
	}
	return
}
