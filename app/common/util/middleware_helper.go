package util

import (
	"context"
	"net/http"

	"lourini/app/common/consts/biz"
	"lourini/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func AdminFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.TokenEmpty), "missing context")
	}

	switch val := ctx.Value(biz.ADMIN_KEY).(type) {
	case string:
		return val, nil
	}

	return "", errors.New(int(errno.TokenEmpty), "unauthorized")
}

func InjectAdmin2Ctx(r *http.Request, email string) {
	ctx := context.WithValue(r.Context(), biz.ADMIN_KEY, email)
	*r = *r.WithContext(ctx)
}
