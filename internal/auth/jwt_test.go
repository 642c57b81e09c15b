package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hebatacademy/certify/internal/config"
	"github.com/hebatacademy/certify/internal/constant"
)

// Perform token generation and verify the generated token to ensure VerifyJwtToken is correct
func TestJWT(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	payload := JWTPayload{
		ID:    "id1234",
		Email: "test@gmail.com",
		Name:  "Test User",
		Role:  constant.UserRoleAdmin,
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	if err != nil {
		t.Fatalf(
			"An error occurred during refresh token and access token generation. Error: %v", err)
	}

	for _, token := range []*string{refreshToken, accessToken} {
		claims, err := jwtService.VerifyJwtToken(*token)
		if err != nil {
			t.Errorf("An error occurred during token verification. Error: %v", err)
			continue
		}

		if claims.User != payload {
			t.Errorf("Verified payload %+v does not match the original %+v", claims.User, payload)
		}
	}
}

func TestJWTWrongSecret(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)
	other := NewJwt(config.AuthConfig{JWT_SECRET: "another-secret"}, nil)

	_, accessToken, err := jwtService.GenerateRefreshAndAccessToken(JWTPayload{ID: "id1234"})
	if err != nil {
		t.Fatalf("Token generation failed: %v", err)
	}

	if _, err := other.VerifyJwtToken(*accessToken); err == nil {
		t.Error("Expected verification to fail with a different secret")
	}
}

// A validly-signed token missing timestamp claims must be rejected, not
// crash verification.
func TestJWTMissingTimestampClaims(t *testing.T) {
	secret := "test-secret"
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: secret}, nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": JWTPayload{ID: "id1234", Email: "test@gmail.com"},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Token signing failed: %v", err)
	}

	if _, err := jwtService.VerifyJwtToken(signed); err == nil {
		t.Error("Expected verification to fail for a token without iat/exp claims")
	}
}
