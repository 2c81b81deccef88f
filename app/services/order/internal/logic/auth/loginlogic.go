// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"time"

	"lourini/app/common/consts/biz"
	"lourini/app/common/consts/errno"
	"lourini/app/common/response"
	"lourini/app/common/token"
	"lourini/app/services/order/internal/svc"
	"lourini/app/services/order/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/crypto/bcrypt"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginRequest) (resp *types.LoginResponse, err error) {
	admin := l.svcCtx.Config.Admin
	if req.Email != admin.Email {
		return nil, errors.New(int(errno.InvalidCredentials), "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New(int(errno.InvalidCredentials), "Invalid email or password")
	}

	accessToken, expiresAt, err := token.Sign(l.svcCtx.Config.Auth.AccessSecret, biz.TokenExpire, admin.Email)
	if err != nil {
		l.Logger.Error("logic: sign token failed: ", err)
		return nil, errors.New(int(errno.InternalError), "Failed to login")
	}

	resp = &types.LoginResponse{
		Envelope:  response.Ok(""),
		Token:     accessToken,
		ExpiresIn: int64(time.Until(expiresAt).Seconds()),
		User: &types.AdminUser{
			Email: admin.Email,
			Role:  "admin",
		},
	}
	return
}
