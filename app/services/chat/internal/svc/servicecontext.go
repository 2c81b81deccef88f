package svc

import (
	"lourini/app/services/chat/internal/bot/catalog"
	"lourini/app/services/chat/internal/config"
	"lourini/app/services/chat/internal/remote"
	"lourini/app/services/chat/internal/session"

	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config config.Config

	Catalog  *catalog.Catalog
	Sessions *session.Store
	Orders   *remote.OrderClient
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	return &ServiceContext{
		Config:   c,
		Catalog:  catalog.MustLoad(c.CatalogFile),
		Sessions: session.NewStore(),
		Orders:   remote.NewOrderClient(c.OrderService.Endpoint),
	}
}
