package auth

import (
	"testing"
	"time"

	"vente-backend/internal/config"
	"vente-backend/internal/models"

	"github.com/pquerna/otp/totp"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "test"
	return cfg
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	user := &models.User{
		ID:       7,
		Email:    "vendeur@example.com",
		Role:     "seller",
		IsActive: true,
	}

	token, err := mgr.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := mgr.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "vendeur@example.com" || claims.Role != "seller" {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager(testConfig())
	token, err := mgr.GenerateToken(&models.User{ID: 1, Email: "a@b.c"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "different-secret"
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestTOTPRoundTrip(t *testing.T) {
	secret, url, err := GenerateTOTPSecret("vendeur@example.com")
	if err != nil {
		t.Fatalf("GenerateTOTPSecret: %v", err)
	}
	if secret == "" || url == "" {
		t.Fatal("empty secret or provisioning url")
	}

	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if !ValidateTOTPCode(code, secret) {
		t.Error("freshly generated code rejected")
	}
	if ValidateTOTPCode("000000", secret) && code != "000000" {
		t.Error("bogus code accepted")
	}
}
