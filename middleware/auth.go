package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xumparim-tech/Zippida/httperr"
	"github.com/xumparim-tech/Zippida/models"
)

// TokenTTL is the fixed token lifetime. There is no refresh mechanism —
// expiry forces re-login.
const TokenTTL = 30 * 24 * time.Hour

const (
	userContextKey  = "currentUser"
	ownerContextKey = "orderOwnerID"
)

// Claims carries only the identity id. The admin flag is resolved from the
// live user record on every request, never trusted from the token.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// UserFinder resolves a token's identity to a live account.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// GenerateToken creates a signed JWT for the given identity.
func GenerateToken(secret []byte, userID primitive.ObjectID) (string, error) {
	claims := Claims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies the signature and expiry and returns the encoded
// identity id.
func ParseToken(secret []byte, tokenStr string) (primitive.ObjectID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, httperr.New(httperr.Unauthorized, "Invalid or expired token")
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, httperr.New(httperr.Unauthorized, "Invalid or expired token")
	}
	return id, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

// AuthRequired validates the bearer token and resolves it to a live user. A
// token whose account no longer exists is treated as unauthenticated.
func AuthRequired(secret []byte, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			httperr.Abort(c, httperr.New(httperr.Unauthorized, "Authorization header required (Bearer <token>)"))
			return
		}

		id, err := ParseToken(secret, tokenStr)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		user, err := users.FindByID(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, httperr.New(httperr.Unauthorized, "Not authorized"))
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth extracts an order owner id from the bearer token if one is
// present and verifiable. Any failure falls back to anonymous — it never
// aborts the request.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, ok := bearerToken(c); ok {
			if id, err := ParseToken(secret, tokenStr); err == nil {
				c.Set(ownerContextKey, id)
			}
		}
		c.Next()
	}
}

// AdminRequired gates a route on the resolved user's admin flag. Must run
// after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			httperr.Abort(c, httperr.New(httperr.Forbidden, "Admin only"))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// OwnerID returns the identity extracted by OptionalAuth, if any.
func OwnerID(c *gin.Context) (primitive.ObjectID, bool) {
	val, exists := c.Get(ownerContextKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := val.(primitive.ObjectID)
	return id, ok
}
