package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventadmin/internal/domain"
)

// PosterState tracks the two-phase poster upload: a local preview first,
// then a server-confirmed URL.
type PosterState int

const (
	PosterEmpty PosterState = iota
	PosterPreviewReady
	PosterUploading
	PosterUploaded
	PosterUploadFailed
)

func (s PosterState) String() string {
	switch s {
	case PosterEmpty:
		return "empty"
	case PosterPreviewReady:
		return "preview"
	case PosterUploading:
		return "uploading"
	case PosterUploaded:
		return "uploaded"
	case PosterUploadFailed:
		return "upload failed"
	default:
		return "unknown"
	}
}

// Form owns one draft for exactly one create-or-edit flow: field state,
// the poster upload, and final submission. Failed submissions leave the
// draft intact so the user can retry without re-entering data.
type Form struct {
	gateway domain.Gateway
	logger  *slog.Logger

	draft   domain.EventDraft
	eventID string

	posterState    PosterState
	posterRequired bool
	posterName     string
	posterData     []byte
	posterURL      string

	user *domain.User
}

// NewForm starts an empty create flow. The poster is required.
func NewForm(gateway domain.Gateway, logger *slog.Logger) *Form {
	return &Form{
		gateway:        gateway,
		logger:         logger,
		posterState:    PosterEmpty,
		posterRequired: true,
	}
}

// NewFormFromEvent starts an edit flow pre-seeded from an existing event.
// An already-uploaded poster URL counts as Uploaded, so re-submitting
// without touching the poster is permitted.
func NewFormFromEvent(ev domain.Event, gateway domain.Gateway, logger *slog.Logger) *Form {
	f := NewForm(gateway, logger)
	f.draft = domain.NewDraftFromEvent(ev)
	f.eventID = ev.ID
	if ev.PosterURL != "" {
		f.posterState = PosterUploaded
		f.posterURL = ev.PosterURL
	}
	return f
}

// Draft exposes the mutable draft for field edits.
func (f *Form) Draft() *domain.EventDraft { return &f.draft }

// EventID returns the id being edited, or empty for a create flow.
func (f *Form) EventID() string { return f.eventID }

// PosterState returns the current poster phase.
func (f *Form) PosterState() PosterState { return f.posterState }

// PosterURL returns the server-confirmed poster URL once Uploaded.
func (f *Form) PosterURL() string { return f.posterURL }

// SelectPoster stages file bytes for a local preview. No network call is
// made. Selecting a new file discards any previously uploaded URL, so the
// upload step must be repeated.
func (f *Form) SelectPoster(filename string, data []byte) error {
	if len(data) == 0 {
		return &domain.UploadError{Message: "selected poster file is empty"}
	}
	f.posterName = filename
	f.posterData = data
	f.posterURL = ""
	f.posterState = PosterPreviewReady
	return nil
}

// UploadPoster sends the staged bytes to the backend. On failure the
// preview is discarded and the file must be reselected; the rest of the
// draft is untouched.
func (f *Form) UploadPoster(ctx context.Context) error {
	if f.posterState != PosterPreviewReady {
		return &domain.UploadError{Message: fmt.Sprintf("no poster staged for upload (state: %s)", f.posterState)}
	}
	f.posterState = PosterUploading
	url, err := f.gateway.UploadPoster(ctx, f.posterName, f.posterData)
	if err != nil {
		f.posterState = PosterUploadFailed
		f.posterName = ""
		f.posterData = nil
		return err
	}
	f.posterState = PosterUploaded
	f.posterURL = url
	return nil
}

// EnsureUser resolves the per-user routing identifier once per form. It
// must complete before Submit is allowed to proceed.
func (f *Form) EnsureUser(ctx context.Context) error {
	if f.user != nil && f.user.PortUUID != "" {
		return nil
	}
	user, err := f.gateway.UserDetails(ctx)
	if err != nil {
		return err
	}
	f.user = user
	return nil
}

// Submit validates the draft and persists it. Local validation failures
// are reported before any network call: every missing required field is
// collected in one pass. On success the server's canonical record is
// returned; on failure the draft is left intact for retry.
func (f *Form) Submit(ctx context.Context) (domain.Event, error) {
	if f.user == nil || f.user.PortUUID == "" {
		return domain.Event{}, &domain.NetworkError{Op: "submit event", Err: domain.ErrUserNotReady}
	}

	if f.posterRequired && f.posterState != PosterUploaded {
		return domain.Event{}, &domain.ValidationError{
			Message: fmt.Sprintf("poster not uploaded yet (state: %s), upload it before submitting", f.posterState),
		}
	}

	f.draft.Trim()
	if missing := f.draft.MissingFields(); len(missing) > 0 {
		return domain.Event{}, &domain.ValidationError{Fields: missing}
	}

	sub := domain.EventSubmission{
		EventDraft: f.draft,
		PosterURL:  f.posterURL,
		PortUUID:   f.user.PortUUID,
	}
	ev, err := f.gateway.SubmitEvent(ctx, sub)
	if err != nil {
		f.logger.Warn("event submission failed", "err", err)
		return domain.Event{}, err
	}
	return ev, nil
}
