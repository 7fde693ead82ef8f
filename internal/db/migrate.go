package db

import (
	"context"
	"database/sql"
)

const membersMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS members (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    provider text NOT NULL,
    provider_user_id text NOT NULL,
    email text,
    display_name text,
    nickname text NOT NULL DEFAULT 'Guest',
    phone text,
    avatar_url text,
    gender text,
    age_range text,
    birth_year integer,
    birth_day_month text,
    birth_date text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT members_provider_unique
        UNIQUE (provider, provider_user_id)
);
`

func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, membersMigration)
	return err
}
