// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"lourini/app/common/consts/errno"
	"lourini/app/common/response"
	"lourini/app/services/order/internal/svc"
	"lourini/app/services/order/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ListOrdersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListOrdersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListOrdersLogic {
	return &ListOrdersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListOrdersLogic) ListOrders(req *types.ListOrdersRequest) (resp *types.ListOrdersResponse, err error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	orders, err := l.svcCtx.Orders.List(l.ctx, offset, limit)
	if err != nil {
		l.Logger.Error("logic: list orders failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to retrieve orders")
	}
	total, err := l.svcCtx.Orders.CountAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: count orders failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to retrieve orders")
	}

	views := make([]types.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, *toOrderView(o))
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	resp = &types.ListOrdersResponse{
		Envelope: response.Ok(""),
		Orders:   views,
		Pagination: types.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}
	return
}
