// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	CatalogFile  string
	OrderService OrderServiceConf

	LogConf logx.LogConf
}

type OrderServiceConf struct {
	Endpoint string
}
