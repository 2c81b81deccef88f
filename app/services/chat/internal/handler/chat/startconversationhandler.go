// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "lourini/app/services/chat/internal/logic/chat"
	"lourini/app/services/chat/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func StartConversationHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewStartConversationLogic(r.Context(), svcCtx)
		resp, err := l.StartConversation()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
