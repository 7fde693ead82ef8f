package token

import (
	"errors"
	"testing"
	"time"

	"github.com/bbeualll199/uso-auth/internal/auth"
)

func testIdentity() *auth.Identity {
	return &auth.Identity{
		Provider:       "kakao",
		ProviderUserID: "555",
	}
}

func TestIssueAndValidate(t *testing.T) {
	m := NewManager("test-secret", "uso-auth", "uso-app", time.Hour)

	signed, err := m.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := m.Validate(signed)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	if claims.Subject != "kakao:555" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Provider != "kakao" {
		t.Fatalf("unexpected provider claim: %s", claims.Provider)
	}
	if claims.ProviderUserID != "555" {
		t.Fatalf("unexpected provider_user_id claim: %s", claims.ProviderUserID)
	}
}

func TestValidateCollapsesFailures(t *testing.T) {
	issuer := NewManager("test-secret", "uso-auth", "uso-app", time.Hour)

	valid, err := issuer.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	expiredBy := NewManager("test-secret", "uso-auth", "uso-app", -time.Minute)
	expired, err := expiredBy.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	cases := []struct {
		name      string
		validator *Manager
		token     string
	}{
		{"wrong secret", NewManager("other-secret", "uso-auth", "uso-app", time.Hour), valid},
		{"wrong issuer", NewManager("test-secret", "someone-else", "uso-app", time.Hour), valid},
		{"wrong audience", NewManager("test-secret", "uso-auth", "other-app", time.Hour), valid},
		{"expired", issuer, expired},
		{"malformed", issuer, "not.a.jwt"},
		{"empty", issuer, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := tc.validator.Validate(tc.token)
			if claims != nil {
				t.Fatalf("Validate returned claims for %s token", tc.name)
			}
			if !errors.Is(err, ErrInvalidCredential) {
				t.Fatalf("Validate returned %v, want ErrInvalidCredential", err)
			}
		})
	}
}

func TestValidateBeforeAndAfterExpiry(t *testing.T) {
	m := NewManager("test-secret", "uso-auth", "uso-app", time.Second)

	signed, err := m.Issue(testIdentity())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := m.Validate(signed); err != nil {
		t.Fatalf("Validate rejected token before expiry: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	if _, err := m.Validate(signed); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("Validate returned %v after expiry, want ErrInvalidCredential", err)
	}
}
