package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fcbt5uhrtd65/ProjectStore/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Context keys for user info
const (
	CtxUserID   = "user_id"
	CtxUserRole = "user_role"
)

// TokenVerifier validates a bearer token issued by the identity provider
// and returns the subject and role claims.
type TokenVerifier interface {
	Verify(token string) (sub string, role string, err error)
}

// HSVerifier checks HS256 tokens against the shared secret the identity
// provider signs with.
type HSVerifier struct {
	secret []byte
}

func NewHSVerifier(secret string) *HSVerifier {
	return &HSVerifier{secret: []byte(secret)}
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (v *HSVerifier) Verify(token string) (string, string, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	if !parsed.Valid {
		return "", "", errors.New("invalid token")
	}
	return claims.Subject, claims.Role, nil
}

// AuthRequired validates the Bearer token and injects user info into the
// gin context. Requests without a valid token get 401.
func AuthRequired(verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if authz == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("missing Authorization header"))
			return
		}
		token, ok := ExtractBearerToken(authz)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid Authorization header"))
			return
		}

		sub, role, err := verifier.Verify(token)
		if err != nil {
			log.Warn("token verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid token"))
			return
		}

		c.Set(CtxUserID, sub)
		c.Set(CtxUserRole, role)
		c.Next()
	}
}

// ExtractBearerToken pulls the token out of an Authorization header,
// tolerating stray quotes and trailing junk some clients append.
func ExtractBearerToken(authz string) (string, bool) {
	if authz == "" {
		return "", false
	}
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	t := strings.TrimSpace(parts[1])
	t = strings.Trim(t, " \"'")
	if i := strings.IndexRune(t, ','); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	t = strings.Trim(t, " \"'")
	if i := strings.IndexByte(t, ' '); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	t = strings.Trim(t, " \"'")
	return t, true
}
