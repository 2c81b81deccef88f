package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf sqlx.SqlConf
	CacheConf cache.CacheConf

	// Use lightweight config structs to avoid mapstructure errors on func fields
	AsynqConf       AsynqRedisConf
	AsynqServerConf AsynqServerConf

	KafkaConf KafkaConf

	Auth  AuthConf
	Admin AdminConf

	LogConf logx.LogConf
}

// Minimal redis client config for Asynq
type AsynqRedisConf struct {
	Addr string
}

// Minimal asynq server config
type AsynqServerConf struct {
	Concurrency int
	Queues      map[string]int
}

type KafkaConf struct {
	Broker     []string
	OrderTopic string
}

type AuthConf struct {
	AccessSecret string
}

// AdminConf is the single back-office account. PasswordHash is bcrypt.
type AdminConf struct {
	Email        string
	PasswordHash string
}
