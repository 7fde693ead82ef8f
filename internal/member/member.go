package member

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bbeualll199/uso-auth/internal/auth"
)

// Member is the canonical local profile record, keyed by the composite
// natural key (provider, provider_user_id). Optional fields are pointers and
// marshal to JSON null when the provider supplied nothing; nickname is the
// one field with a placeholder default instead.
type Member struct {
	ID             uuid.UUID `json:"id"`
	Provider       string    `json:"provider"`
	ProviderUserID string    `json:"provider_user_id"`
	Email          *string   `json:"email"`
	DisplayName    *string   `json:"display_name"`
	Nickname       string    `json:"nickname"`
	Phone          *string   `json:"phone"`
	AvatarURL      *string   `json:"avatar_url"`
	Gender         *string   `json:"gender"`
	AgeRange       *string   `json:"age_range"`
	BirthYear      *int      `json:"birth_year"`
	BirthDayMonth  *string   `json:"birth_day_month"`
	BirthDate      *string   `json:"birth_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const defaultNickname = "Guest"

// FromIdentity maps a verified external identity onto the canonical record.
// Provider data quality is outside this system's control: an unparsable
// birth year is treated as absent, not as an error.
func FromIdentity(identity *auth.Identity) *Member {
	p := identity.Profile

	m := &Member{
		Provider:       identity.Provider,
		ProviderUserID: identity.ProviderUserID,
		Email:          optional(p.Email),
		DisplayName:    optional(p.Name),
		Nickname:       defaultNickname,
		Phone:          optional(p.Phone),
		AvatarURL:      optional(p.AvatarURL),
		Gender:         optional(p.Gender),
		AgeRange:       optional(p.AgeRange),
		BirthDayMonth:  optional(p.BirthDay),
	}

	if p.Nickname != "" {
		m.Nickname = p.Nickname
	}

	if year, err := strconv.Atoi(p.BirthYear); err == nil {
		m.BirthYear = &year
	}

	m.BirthDate = deriveBirthDate(m.BirthYear, m.BirthDayMonth)
	return m
}

// deriveBirthDate builds YYYY-MM-DD from the year and an MMDD fragment.
// Anything short of both parts being well-formed yields nil, never a
// partial date.
func deriveBirthDate(year *int, dayMonth *string) *string {
	if year == nil || dayMonth == nil || len(*dayMonth) != 4 {
		return nil
	}
	d := fmt.Sprintf("%04d-%s-%s", *year, (*dayMonth)[:2], (*dayMonth)[2:])
	return &d
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
