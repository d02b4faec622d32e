package services

import (
	"context"
	"io"
	"log/slog"

	"eventadmin/internal/domain"
)

// fakeGateway implements domain.Gateway for tests and counts calls so
// tests can assert that local validation failures issue zero requests.
type fakeGateway struct {
	loginPair domain.TokenPair
	loginErr  error

	user    *domain.User
	userErr error

	uploadURL string
	uploadErr error

	submitResult domain.Event
	submitErr    error

	listResult []domain.Event
	listErr    error

	loginCalls  int
	userCalls   int
	uploadCalls int
	submitCalls int
	listCalls   int

	lastUploadName string
	lastUploadData []byte
	lastSubmission domain.EventSubmission
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return domain.TokenPair{}, f.loginErr
	}
	return f.loginPair, nil
}

func (f *fakeGateway) UserDetails(ctx context.Context) (*domain.User, error) {
	f.userCalls++
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeGateway) UploadPoster(ctx context.Context, filename string, data []byte) (string, error) {
	f.uploadCalls++
	f.lastUploadName = filename
	f.lastUploadData = data
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadURL, nil
}

func (f *fakeGateway) SubmitEvent(ctx context.Context, sub domain.EventSubmission) (domain.Event, error) {
	f.submitCalls++
	f.lastSubmission = sub
	if f.submitErr != nil {
		return domain.Event{}, f.submitErr
	}
	return f.submitResult, nil
}

func (f *fakeGateway) ListEvents(ctx context.Context) ([]domain.Event, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

// fakeTokenStore implements domain.TokenStore in memory.
type fakeTokenStore struct {
	pair       domain.TokenPair
	loadErr    error
	saveErr    error
	clearCalls int
}

func (f *fakeTokenStore) Load() (domain.TokenPair, error) {
	if f.loadErr != nil {
		return domain.TokenPair{}, f.loadErr
	}
	return f.pair, nil
}

func (f *fakeTokenStore) Save(pair domain.TokenPair) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.pair = pair
	return nil
}

func (f *fakeTokenStore) Clear() error {
	f.clearCalls++
	f.pair = domain.TokenPair{}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
