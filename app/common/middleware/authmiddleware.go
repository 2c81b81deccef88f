// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package middleware

import (
	"net/http"
	"strings"

	"lourini/app/common/consts/biz"
	"lourini/app/common/consts/errno"
	"lourini/app/common/token"
	"lourini/app/common/util"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{
		secret: secret,
	}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken := ""
		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			accessToken = strings.TrimPrefix(auth, "Bearer ")
		} else if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil {
			accessToken = cookie.Value
		}

		if accessToken == "" {
			httpx.Error(w, errors.New(int(errno.TokenEmpty), "token is null"))
			return
		}

		claims, err := token.Parse(accessToken, m.secret)
		if err != nil {
			code := errno.TokenInvalid
			if jwtErr, ok := err.(*jwt.ValidationError); ok && jwtErr.Errors&jwt.ValidationErrorExpired != 0 {
				code = errno.TokenExpired
			}
			httpx.Error(w, errors.New(int(code), "invalid token"))
			return
		}

		util.InjectAdmin2Ctx(r, claims.Email)
		next(w, r)
	}
}
