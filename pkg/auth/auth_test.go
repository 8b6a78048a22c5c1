package auth_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/lending-service/pkg/auth"
)

func sign(t *testing.T, secret string, claims auth.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestParseToken(t *testing.T) {
	t.Parallel()
	valid := auth.Claims{
		UserType: "reader",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	badSubject := valid
	badSubject.Subject = "alice"

	tests := []struct {
		name    string
		token   string
		want    auth.Identity
		wantErr bool
	}{
		{name: "ok", token: sign(t, "s3cret", valid), want: auth.Identity{UserID: 42, Role: "reader"}},
		{name: "wrong secret", token: sign(t, "other", valid), wantErr: true},
		{name: "expired", token: sign(t, "s3cret", expired), wantErr: true},
		{name: "non numeric subject", token: sign(t, "s3cret", badSubject), wantErr: true},
		{name: "garbage", token: "abc.def.ghi", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := auth.ParseToken(tt.token, []byte("s3cret"))
			if tt.wantErr {
				require.ErrorIs(t, err, auth.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAuthContext(t *testing.T) {
	_, err := auth.FromContext(context.Background())
	require.ErrorIs(t, err, auth.ErrNoIdentity)

	ctx := auth.SetAuthContext(context.Background(), auth.Identity{UserID: 7, Role: "admin"})
	id, err := auth.FromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, id.UserID)
	require.Equal(t, "admin", id.Role)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, auth.Config{}.Validate(), auth.ErrNoSecret)
	require.NoError(t, auth.Config{Secret: "s3cret"}.Validate())
}

func TestConfig_SecretIsRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	var cfg auth.Config
	require.Error(t, envconfig.Process("", &cfg))

	// set but empty passes envconfig and is caught by Validate
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, envconfig.Process("", &cfg))
	require.ErrorIs(t, cfg.Validate(), auth.ErrNoSecret)
}
