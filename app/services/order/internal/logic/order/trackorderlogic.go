// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"

	orderdal "lourini/app/dal/order"
	"lourini/app/common/consts/errno"
	"lourini/app/common/response"
	"lourini/app/services/order/internal/svc"
	"lourini/app/services/order/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type TrackOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTrackOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TrackOrderLogic {
	return &TrackOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *TrackOrderLogic) TrackOrder(req *types.TrackOrderRequest) (resp *types.TrackOrderResponse, err error) {
	order, err := l.svcCtx.Orders.FindOneByOrderNumber(l.ctx, req.OrderNumber)
	if err != nil {
		if errors.Is(err, orderdal.ErrNotFound) {
			return nil, xerrors.New(int(errno.OrderNotFound), "Order not found")
		}
		l.Logger.Error("logic: find order failed: ", err)
		return nil, xerrors.New(int(errno.InternalError), "Failed to retrieve order")
	}

	items, err := l.svcCtx.OrdItm.ListByOrderId(l.ctx, order.Id)
	if err != nil {
		l.Logger.Error("logic: list order items failed: ", err)
		return nil, xerrors.New(int(errno.InternalError), "Failed to retrieve order")
	}

	view := toOrderView(order)
	view.Items = make([]types.OrderItemInfo, 0, len(items))
	for _, it := range items {
		view.Items = append(view.Items, types.OrderItemInfo{
			Name:        it.ProductName,
			Category:    it.ProductCategory,
			FabricClass: it.FabricClass.String,
			FabricName:  it.FabricName.String,
			Size:        it.Size.String,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice,
		})
	}

	resp = &types.TrackOrderResponse{
		Envelope: response.Ok(""),
		Order:    view,
	}
	return
}
