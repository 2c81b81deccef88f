package util

import (
	"net/http"
	"time"

	"lourini/app/common/consts/biz"
)

// SetTokenCookie mirrors the token into a cookie so browser clients can
// skip the Authorization header.
func SetTokenCookie(w http.ResponseWriter, accessToken string, expiresIn int64) {
	if accessToken == "" {
		return
	}
	ttl := biz.TokenExpire
	if expiresIn > 0 {
		ttl = time.Duration(expiresIn) * time.Second
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.ACCESSTOKEN,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	})
}
