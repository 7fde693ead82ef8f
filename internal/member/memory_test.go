package member

import (
	"context"
	"testing"

	"github.com/bbeualll199/uso-auth/internal/auth"
)

func TestMemoryStoreUpsertIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	identity := &auth.Identity{
		Provider:       "kakao",
		ProviderUserID: "555",
		Profile:        auth.Profile{Nickname: "roo"},
	}

	first, err := store.Upsert(ctx, FromIdentity(identity))
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	identity.Profile.Nickname = "roo2"
	second, err := store.Upsert(ctx, FromIdentity(identity))
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	if store.Len() != 1 {
		t.Fatalf("repeated upsert created %d records, want 1", store.Len())
	}
	if second.ID != first.ID {
		t.Fatalf("upsert changed record id: %s -> %s", first.ID, second.ID)
	}
	if second.Nickname != "roo2" {
		t.Fatalf("upsert did not overwrite nickname: %q", second.Nickname)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("upsert changed created_at")
	}
}

func TestMemoryStoreGetMissingIsNil(t *testing.T) {
	store := NewMemoryStore()

	m, err := store.Get(context.Background(), "kakao", "absent")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if m != nil {
		t.Fatalf("Get returned %+v for an absent key, want nil", m)
	}
}
