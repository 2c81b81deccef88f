// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "lourini/app/services/order/internal/logic/order"
	"lourini/app/services/order/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func DashboardMetricsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewDashboardMetricsLogic(r.Context(), svcCtx)
		resp, err := l.DashboardMetrics()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
