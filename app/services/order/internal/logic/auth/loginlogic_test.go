package logic

import (
	"context"
	"testing"

	"lourini/app/common/token"
	"lourini/app/services/order/internal/config"
	"lourini/app/services/order/internal/svc"
	"lourini/app/services/order/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testServiceContext(t *testing.T, password string) *svc.ServiceContext {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &svc.ServiceContext{
		Config: config.Config{
			Auth: config.AuthConf{AccessSecret: "test-secret"},
			Admin: config.AdminConf{
				Email:        "admin@lourini.pt",
				PasswordHash: string(hash),
			},
		},
	}
}

func TestLogin(t *testing.T) {
	sc := testServiceContext(t, "correct horse")
	l := NewLoginLogic(context.Background(), sc)

	resp, err := l.Login(&types.LoginRequest{Email: "admin@lourini.pt", Password: "correct horse"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresIn, int64(0))
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := token.Parse(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@lourini.pt", claims.Email)
}

func TestLoginRejections(t *testing.T) {
	sc := testServiceContext(t, "correct horse")
	l := NewLoginLogic(context.Background(), sc)

	_, err := l.Login(&types.LoginRequest{Email: "admin@lourini.pt", Password: "wrong"})
	assert.Error(t, err)

	_, err = l.Login(&types.LoginRequest{Email: "other@lourini.pt", Password: "correct horse"})
	assert.Error(t, err)
}
