// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"lourini/app/common/middleware"
	auth "lourini/app/services/order/internal/handler/auth"
	order "lourini/app/services/order/internal/handler/order"
	"lourini/app/services/order/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	// public
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/orders",
				Handler: order.CreateOrderHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/orders/track/:orderNumber",
				Handler: order.TrackOrderHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/login",
				Handler: auth.LoginHandler(serverCtx),
			},
		},
	)

	// admin, behind the token middleware
	authMw := middleware.NewAuthMiddleware(serverCtx.Config.Auth.AccessSecret)
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{authMw.Handle},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/orders",
					Handler: order.ListOrdersHandler(serverCtx),
				},
				{
					Method:  http.MethodPatch,
					Path:    "/orders/:id/status",
					Handler: order.UpdateOrderStatusHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/dashboard/metrics",
					Handler: order.DashboardMetricsHandler(serverCtx),
				},
			}...,
		),
	)
}
