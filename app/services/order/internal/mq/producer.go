package mq

import (
	"context"
	"encoding/json"

	"lourini/app/services/order/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

// PublishOrderCreated sends the order-created event to Kafka. A missing
// writer means Kafka is not configured; the order flow must not fail on it.
func PublishOrderCreated(ctx context.Context, sc *svc.ServiceContext, evt OrderCreatedEvent) error {
	if sc.KafkaWriter == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{Key: []byte(evt.OrderNumber), Value: body}
	return sc.KafkaWriter.WriteMessages(ctx, msg)
}

// EnqueueOrderEmails schedules the confirmation and admin notification
// tasks. Failures are logged, not propagated: the order is already stored.
func EnqueueOrderEmails(sc *svc.ServiceContext, payload EmailTaskPayload) {
	if sc.AsynqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logx.Errorw("marshal email task failed", logx.Field("err", err))
		return
	}
	for _, task := range []string{TaskOrderConfirmationEmail, TaskAdminNotificationEmail} {
		if _, err := sc.AsynqClient.Enqueue(asynq.NewTask(task, body)); err != nil {
			logx.Errorw("enqueue email task failed",
				logx.Field("task", task), logx.Field("err", err))
		}
	}
}
