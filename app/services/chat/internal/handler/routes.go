// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	chat "lourini/app/services/chat/internal/handler/chat"
	"lourini/app/services/chat/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/chat/conversations",
				Handler: chat.StartConversationHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chat/conversations/:conversationId/messages",
				Handler: chat.SendMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/chat/conversations/:conversationId/cart",
				Handler: chat.GetCartHandler(serverCtx),
			},
		},
	)
}
