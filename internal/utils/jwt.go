package utils // package utils provides helpers for token creation and password hashing

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by VerifyAccessToken for any token the server
// will not accept: bad signature, unexpected algorithm, unparsable payload
// or an expiry in the past.  Callers cannot (and must not) distinguish
// between these cases.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string.  Exp stores the UTC
// expiration timestamp.  Access tokens are sent in the Authorization header
// when calling protected endpoints; the server keeps no copy.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Identity is the result of verifying an access token: the subject user ID
// and the role claim baked in at issuance.
type Identity struct {
	UserID uint64
	Role   string
}

// NewAccessToken builds and signs an HS256 JWT for a user.  The JWT
// carries standard claims: subject (sub), role, expiration (exp) and
// issued at (iat).  The TTL is in hours; the exact duration is a
// configuration constant, not a behavioral contract.
func NewAccessToken(secret string, userID uint64, role string, ttlHours int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(userID, 10),
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a raw bearer token.  It is a pure
// function of (token, current time, secret): no state is read or written.
// Any failure collapses into ErrInvalidToken so the response to a client
// never reveals which check rejected the token.
func VerifyAccessToken(secret, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; an attacker must not
		// be able to pick the verification algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	var id Identity
	switch sub := claims["sub"].(type) {
	case string:
		n, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || n == 0 {
			return Identity{}, ErrInvalidToken
		}
		id.UserID = n
	case float64:
		// Numeric subjects decode as float64; accept them for compatibility.
		if sub <= 0 {
			return Identity{}, ErrInvalidToken
		}
		id.UserID = uint64(sub)
	default:
		return Identity{}, ErrInvalidToken
	}
	if role, ok := claims["role"].(string); ok {
		id.Role = role
	}
	return id, nil
}
