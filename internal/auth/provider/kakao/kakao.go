package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/bbeualll199/uso-auth/internal/apperr"
	"github.com/bbeualll199/uso-auth/internal/auth"
)

const providerName = "kakao"

const defaultUserInfoURL = "https://kapi.kakao.com/v2/user/me"

const maxResponseBytes = 1 << 20

type Provider struct {
	userInfoURL string
	timeout     time.Duration
}

// New creates the Kakao verifier. userInfoURL overrides the default
// endpoint; pass "" in production.
func New(userInfoURL string) *Provider {
	if userInfoURL == "" {
		userInfoURL = defaultUserInfoURL
	}
	return &Provider{
		userInfoURL: userInfoURL,
		timeout:     10 * time.Second,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return providerName
}

// providerID canonicalizes the user id to one string form. The id arrives
// as a large integer or a string depending on the provider's serializer,
// and must compare reliably as the upsert key either way.
type providerID string

func (id *providerID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = providerID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = providerID(n.String())
	return nil
}

// userInfoResponse mirrors the shape of Kakao's /v2/user/me payload.
type userInfoResponse struct {
	ID      providerID `json:"id"`
	Account struct {
		Email       string `json:"email"`
		Name        string `json:"name"`
		PhoneNumber string `json:"phone_number"`
		Gender      string `json:"gender"`
		AgeRange    string `json:"age_range"`
		BirthYear   string `json:"birthyear"`
		Birthday    string `json:"birthday"`
		Profile     struct {
			Nickname        string `json:"nickname"`
			ProfileImageURL string `json:"profile_image_url"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// Verify calls Kakao's user-info endpoint with the token as a bearer
// credential and normalizes the result. A non-2xx status maps to
// upstream_rejected with Kakao's raw body attached for diagnostics.
func (p *Provider) Verify(ctx context.Context, accessToken string) (*auth.Identity, error) {
	if accessToken == "" {
		return nil, apperr.MissingInput("access_token is required")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: accessToken},
	))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("kakao: build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kakao: user info request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("kakao: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.UpstreamRejected(string(body))
	}

	var info userInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("kakao: decode user info: %w", err)
	}
	if info.ID == "" {
		return nil, apperr.UpstreamRejected("kakao response missing user id")
	}

	acct := info.Account
	return &auth.Identity{
		Provider:       providerName,
		ProviderUserID: string(info.ID),
		Profile: auth.Profile{
			Email:     acct.Email,
			Name:      acct.Name,
			Nickname:  acct.Profile.Nickname,
			Phone:     acct.PhoneNumber,
			AvatarURL: acct.Profile.ProfileImageURL,
			Gender:    acct.Gender,
			AgeRange:  acct.AgeRange,
			BirthYear: acct.BirthYear,
			BirthDay:  acct.Birthday,
		},
	}, nil
}
