package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/models"
)

// Claims carries the actor identity inside a token
type Claims struct {
	UserID     string `json:"user_id"`
	MerchantID string `json:"merchant_id,omitempty"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// Actor converts the claims back into an actor
func (c *Claims) Actor() (models.Actor, error) {
	actor := models.Actor{ID: c.UserID, Role: models.Role(c.Role)}
	if actor.ID == "" {
		return models.Actor{}, errors.New("missing user_id claim")
	}

	switch actor.Role {
	case models.RolePlatformAdmin:
	case models.RoleMerchantAdmin, models.RoleMerchantOperator:
		merchantID, err := uuid.Parse(c.MerchantID)
		if err != nil {
			return models.Actor{}, fmt.Errorf("invalid merchant_id claim: %w", err)
		}
		actor.MerchantID = merchantID
	default:
		return models.Actor{}, fmt.Errorf("unknown role %q", c.Role)
	}

	return actor, nil
}

// GenerateToken signs a token for the actor
func GenerateToken(actor models.Actor, cfg models.JWTConfig) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		UserID: actor.ID,
		Role:   string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
		},
	}
	if actor.MerchantID != uuid.Nil {
		claims.MerchantID = actor.MerchantID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateToken verifies signature, algorithm and expiry and returns the claims
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
