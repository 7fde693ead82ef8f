package member

import (
	"context"

	"github.com/bbeualll199/uso-auth/internal/apperr"
	"github.com/bbeualll199/uso-auth/internal/auth/provider"
)

// Reconciler maps a live provider profile onto the canonical record and
// upserts it. It re-verifies the external token on every call: the internal
// credential does not carry the raw profile fields the record needs.
type Reconciler struct {
	verifier provider.Verifier
	store    Store
}

func NewReconciler(verifier provider.Verifier, store Store) *Reconciler {
	return &Reconciler{
		verifier: verifier,
		store:    store,
	}
}

// Reconcile verifies the token, normalizes the profile and upserts it.
// Verification strictly precedes the upsert; unverified data never reaches
// the store. Store failures surface once, never retried.
func (r *Reconciler) Reconcile(ctx context.Context, accessToken string) (*Member, error) {
	identity, err := r.verifier.Verify(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	stored, err := r.store.Upsert(ctx, FromIdentity(identity))
	if err != nil {
		return nil, apperr.StoreError(err)
	}
	return stored, nil
}
