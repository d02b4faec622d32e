package domain

import "context"

// TokenPair is the credential pair returned by a successful login. The
// access token is short-lived; the refresh token is longer-lived and stored
// with restrictive scope.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenStore persists the credential pair between runs.
type TokenStore interface {
	Load() (TokenPair, error)
	Save(pair TokenPair) error
	Clear() error
}

// TokenSource yields the bearer token to attach to an authenticated call.
// It is consulted at call time, never cached, so logout/login transitions
// take effect without reconstructing the client.
type TokenSource interface {
	AccessToken() string
}

// Gateway is the single point of contact with the backend. Implementations
// translate domain intents into HTTP requests and normalize failures into
// the error taxonomy of this package.
type Gateway interface {
	Login(ctx context.Context, email, password string) (TokenPair, error)
	UserDetails(ctx context.Context) (*User, error)
	UploadPoster(ctx context.Context, filename string, data []byte) (string, error)
	SubmitEvent(ctx context.Context, sub EventSubmission) (Event, error)
	ListEvents(ctx context.Context) ([]Event, error)
}
