package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned when no signing secret is configured
var ErrEmptySecret = errors.New("jwt secret must not be empty")

// TokenConfig configures bearer token issuing
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	NodeID int64 // snowflake node used for token ids
}

// Claims is the token payload
type Claims struct {
	ID uint64 `json:"id"`
	jwt.RegisteredClaims
}

// JWTTokens issues HS256 tokens carrying the user ID
type JWTTokens struct {
	secret       []byte
	ttl          time.Duration
	node         *snowflake.Node
	timeProvider core.TimeProvider
}

// NewJWTTokens creates a token issuer
func NewJWTTokens(cfg TokenConfig, timeProvider core.TimeProvider) (*JWTTokens, error) {
	if cfg.Secret == "" {
		return nil, ErrEmptySecret
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", cfg.NodeID, err)
	}
	return &JWTTokens{
		secret:       []byte(cfg.Secret),
		ttl:          cfg.TTL,
		node:         node,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for userID
func (j *JWTTokens) Issue(userID uint64) (string, error) {
	now := j.timeProvider.Now()
	claims := Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        j.node.Generate().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// Parse validates signature and expiry and returns the user ID
func (j *JWTTokens) Parse(token string) (uint64, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.timeProvider.Now),
	)
	if err != nil {
		return 0, err
	}
	if claims.ID == 0 {
		return 0, errors.New("token has no user id")
	}
	return claims.ID, nil
}
