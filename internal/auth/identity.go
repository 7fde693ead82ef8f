package auth

// Identity represents a normalized external authentication identity
// returned by the provider. It contains facts only, no decisions.
type Identity struct {
	Provider       string  // fixed to "kakao" for this deployment
	ProviderUserID string  // canonical string form of the provider-scoped id
	Profile        Profile // raw profile fields as supplied by the provider
}

// Profile carries the optional profile fields from the provider payload.
// An empty string means the provider did not supply the field; the marker
// is interpreted only during reconciliation, never exposed as-is.
type Profile struct {
	Email     string
	Name      string
	Nickname  string
	Phone     string
	AvatarURL string
	Gender    string
	AgeRange  string
	BirthYear string // provider sends the year as a string, e.g. "1990"
	BirthDay  string // MMDD
}

// Subject returns the stable subject identifier used in issued credentials.
func (i *Identity) Subject() string {
	return i.Provider + ":" + i.ProviderUserID
}
