package svc

import (
	"time"

	orderdal "lourini/app/dal/order"
	"lourini/app/services/order/internal/config"

	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	DB     sqlx.SqlConn
	Orders orderdal.OrdersModel
	OrdItm orderdal.OrderItemsModel

	AsynqClient *asynq.Client

	KafkaWriter *kafka.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)
	db := sqlx.NewMysql(c.MysqlConf.DataSource)

	var asynqClient *asynq.Client
	if c.AsynqConf.Addr != "" {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: c.AsynqConf.Addr})
	}

	// Reusable Kafka writer to reduce per-send overhead and latency
	var kw *kafka.Writer
	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.OrderTopic != "" {
		kw = &kafka.Writer{
			Addr:                   kafka.TCP(c.KafkaConf.Broker...),
			Topic:                  c.KafkaConf.OrderTopic,
			RequiredAcks:           kafka.RequireOne,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           5 * time.Millisecond,
		}
	}

	return &ServiceContext{
		Config:      c,
		DB:          db,
		Orders:      orderdal.NewOrdersModel(db, c.CacheConf),
		OrdItm:      orderdal.NewOrderItemsModel(db, c.CacheConf),
		AsynqClient: asynqClient,
		KafkaWriter: kw,
	}
}
