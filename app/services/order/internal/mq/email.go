package mq

import (
	"context"
	"encoding/json"

	"lourini/app/services/order/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// Delivery is stubbed: the handlers log what would be sent. Swapping in an
// SMTP or provider client only touches this file.

func newConfirmationEmailHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p EmailTaskPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		order, err := sc.Orders.FindOne(ctx, p.OrderId)
		if err != nil {
			return err
		}
		logx.WithContext(ctx).Infow("order confirmation email would be sent",
			logx.Field("orderNumber", order.OrderNumber),
			logx.Field("to", p.Email))
		return nil
	}
}

func newAdminEmailHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p EmailTaskPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		logx.WithContext(ctx).Infow("admin notification email would be sent",
			logx.Field("orderNumber", p.OrderNumber))
		return nil
	}
}
