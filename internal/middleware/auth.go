package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rajkrish0608/WorkProof/internal/constants"
	apierrors "github.com/rajkrish0608/WorkProof/internal/errors"
	"github.com/rajkrish0608/WorkProof/internal/services"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Verify(token string) (services.Identity, error)
}

// RequireAuth checks the bearer token and stores the caller identity in context
func RequireAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		identity, err := tokens.Verify(token)
		if err != nil {
			apierrors.Unauthorized(c, "")
			return
		}

		c.Set(constants.ContextKeyIdentity, identity)
		c.Next()
	}
}

// RequireOwner rejects callers that are not organization owners.
// Must run after RequireAuth.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}
		if !identity.IsOwner() {
			apierrors.Forbidden(c, "Forbidden: Only Owners can manage staff")
			return
		}
		c.Next()
	}
}

// GetIdentity retrieves the authenticated caller from context
func GetIdentity(c *gin.Context) (services.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return services.Identity{}, false
	}
	identity, ok := value.(services.Identity)
	return identity, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
