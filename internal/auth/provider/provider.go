package provider

import (
	"context"

	"github.com/bbeualll199/uso-auth/internal/auth"
)

// Verifier resolves an externally-issued access token into a normalized
// identity. Implementations return identity facts only and must not touch
// the backing store or mint credentials.
type Verifier interface {
	// Name returns the provider identifier (e.g. "kakao").
	Name() string

	// Verify asks the provider who the token belongs to. One outbound call,
	// no retries; failures surface immediately.
	Verify(ctx context.Context, accessToken string) (*auth.Identity, error)
}
