package bootstrap

import (
	"github.com/hibiken/asynq"

	"lourini/app/services/order/internal/mq"
	"lourini/app/services/order/internal/svc"
)

// StartAsynq runs the email task server; returns a stop func. Without a
// configured redis addr the server is skipped and the stop func is a no-op.
func StartAsynq(sc *svc.ServiceContext) func() {
	addr := sc.Config.AsynqConf.Addr
	if addr == "" {
		return func() {}
	}
	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: addr}, asynq.Config{
		Concurrency: sc.Config.AsynqServerConf.Concurrency,
		Queues:      sc.Config.AsynqServerConf.Queues,
	})
	mux := mq.NewAsynqMux(sc)
	go func() {
		if err := srv.Run(mux); err != nil {
			panic(err)
		}
	}()
	return func() {
		srv.Shutdown()
	}
}
