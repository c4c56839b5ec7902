package jwt

import (
	"testing"
	"time"

	"patient-booking-api/config"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := testService("test-secret")

	token, tokenID, err := s.GenerateAccessToken("booking-gateway")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if tokenID == "" {
		t.Fatal("empty token id")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.ClientID != "booking-gateway" {
		t.Errorf("client id = %q, want booking-gateway", claims.ClientID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	s := testService("test-secret")

	token, _, err := s.GenerateRefreshToken("booking-gateway")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want refresh", claims.TokenType)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService("secret-a").GenerateAccessToken("booking-gateway")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := testService("secret-b").ValidateToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := testService("test-secret").ValidateToken("not.a.token"); err == nil {
		t.Error("malformed token was accepted")
	}
}
