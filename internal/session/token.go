package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// UserIDFromToken decodes the JWT payload and returns its user_id claim.
//
// The token is decoded without signature verification; the client only needs
// the id to scope a few list queries. Any decoding or parsing failure reports
// (0, false), never an error.
func UserIDFromToken(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return 0, false
	}

	// JWT numbers decode as float64
	switch v := claims["user_id"].(type) {
	case float64:
		if v <= 0 {
			return 0, false
		}
		return int64(v), true
	case string:
		// Some issuers stringify numeric claims
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}
