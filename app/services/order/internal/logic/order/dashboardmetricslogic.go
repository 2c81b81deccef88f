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

type DashboardMetricsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDashboardMetricsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DashboardMetricsLogic {
	return &DashboardMetricsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DashboardMetricsLogic) DashboardMetrics() (resp *types.DashboardMetricsResponse, err error) {
	totalOrders, err := l.svcCtx.Orders.CountAll(l.ctx)
	if err != nil {
		l.Logger.Error("logic: count orders failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to retrieve dashboard metrics")
	}

	totalSales, err := l.svcCtx.Orders.SumTotalAmount(l.ctx)
	if err != nil {
		l.Logger.Error("logic: sum sales failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to retrieve dashboard metrics")
	}

	byStatus, err := l.svcCtx.Orders.CountByStatus(l.ctx)
	if err != nil {
		l.Logger.Error("logic: count by status failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to retrieve dashboard metrics")
	}

	recent, err := l.svcCtx.Orders.Recent(l.ctx, 5)
	if err != nil {
		l.Logger.Error("logic: recent orders failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to retrieve dashboard metrics")
	}

	counts := make([]types.StatusCount, 0, len(byStatus))
	for _, sc := range byStatus {
		counts = append(counts, types.StatusCount{Status: sc.Status, Count: sc.Count})
	}
	recentViews := make([]types.OrderView, 0, len(recent))
	for _, o := range recent {
		recentViews = append(recentViews, *toOrderView(o))
	}

	resp = &types.DashboardMetricsResponse{
		Envelope: response.Ok(""),
		Metrics: &types.DashboardMetrics{
			TotalOrders:    totalOrders,
			TotalSales:     totalSales,
			OrdersByStatus: counts,
			RecentOrders:   recentViews,
		},
	}
	return
}
