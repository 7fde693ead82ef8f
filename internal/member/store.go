package member

import "context"

// Store persists canonical member records. Implementations provide the
// conflict-resolution atomicity for the composite key; the gateway adds no
// locking of its own and tolerates interleaved upserts converging to
// last-write-wins.
type Store interface {
	// Upsert inserts or overwrites the record for m's
	// (provider, provider_user_id) key and returns the stored row.
	Upsert(ctx context.Context, m *Member) (*Member, error)

	// Get returns the record for the key, or (nil, nil) when absent.
	Get(ctx context.Context, provider, providerUserID string) (*Member, error)
}
