package mq

import (
	"lourini/app/services/order/internal/svc"

	"github.com/hibiken/asynq"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskOrderConfirmationEmail, newConfirmationEmailHandler(sc))
	mux.HandleFunc(TaskAdminNotificationEmail, newAdminEmailHandler(sc))
	return mux
}
