package biz

import "time"

type CtxKey string

const (
	ADMIN_KEY CtxKey = "admin_email"

	TokenExpire = time.Hour * 8

	ACCESSTOKEN = "access_token"
)
