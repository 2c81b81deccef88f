// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"errors"

	orderdal "lourini/app/dal/order"
	"lourini/app/common/consts/errno"
	"lourini/app/common/response"
	"lourini/app/common/util"
	"lourini/app/services/order/internal/svc"
	"lourini/app/services/order/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

var validStatuses = map[string]bool{
	orderdal.StatusPending:    true,
	orderdal.StatusProcessing: true,
	orderdal.StatusShipped:    true,
	orderdal.StatusDelivered:  true,
	orderdal.StatusCancelled:  true,
}

type UpdateOrderStatusLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateOrderStatusLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateOrderStatusLogic {
	return &UpdateOrderStatusLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateOrderStatusLogic) UpdateOrderStatus(req *types.UpdateOrderStatusRequest) (resp *types.UpdateOrderStatusResponse, err error) {
	if !validStatuses[req.Status] {
		return nil, xerrors.New(int(errno.InvalidParam), "Status is required")
	}

	order, err := l.svcCtx.Orders.FindOne(l.ctx, req.Id)
	if err != nil {
		if errors.Is(err, orderdal.ErrNotFound) {
			return nil, xerrors.New(int(errno.OrderNotFound), "Order not found or could not be updated")
		}
		l.Logger.Error("logic: find order failed: ", err)
		return nil, xerrors.New(int(errno.InternalError), "Failed to update order status")
	}

	order.Status = req.Status
	if err := l.svcCtx.Orders.Update(l.ctx, order); err != nil {
		l.Logger.Error("logic: update order failed: ", err)
		return nil, xerrors.New(int(errno.InternalError), "Failed to update order status")
	}

	if admin, err := util.AdminFromCtx(l.ctx); err == nil {
		l.Logger.Infow("order status updated",
			logx.Field("orderNumber", order.OrderNumber),
			logx.Field("status", req.Status),
			logx.Field("admin", admin))
	}

	resp = &types.UpdateOrderStatusResponse{
		Envelope: response.Ok("Order status updated successfully"),
	}
	return
}
