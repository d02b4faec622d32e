package domain

import (
	"strings"
	"time"
)

// Layouts for the date and time-of-day fields as they travel on the wire.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is the server's canonical record of a conference-style listing.
// ID is assigned by the backend and immutable after creation.
type Event struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	Location           string    `json:"location"`
	SpeakerName        string    `json:"speaker_name"`
	SpeakerDescription string    `json:"speaker_description"`
	SpeakerPosition    string    `json:"speaker_position"`
	Company            string    `json:"company"`
	PosterURL          string    `json:"poster_url,omitempty"`
	VideoURL           string    `json:"video_url,omitempty"`
	BookingURL         string    `json:"booking_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Day parses the event's calendar date.
func (e Event) Day() (time.Time, error) {
	return time.Parse(DateLayout, e.Date)
}

// Upcoming reports whether the event's date is on or after the given day.
// An unparsable date counts as past.
func (e Event) Upcoming(now time.Time) bool {
	day, err := e.Day()
	if err != nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !day.Before(today)
}

// EventDraft is the mutable write-side staging of an Event: the same scalar
// fields minus identifier and timestamps. The poster travels separately
// through the form's upload flow.
type EventDraft struct {
	Name               string
	Description        string
	Date               string
	Time               string
	Location           string
	SpeakerName        string
	SpeakerDescription string
	SpeakerPosition    string
	Company            string
	VideoURL           string
	BookingURL         string
}

// NewDraftFromEvent pre-seeds a draft from an existing event for the edit
// flow.
func NewDraftFromEvent(ev Event) EventDraft {
	return EventDraft{
		Name:               ev.Name,
		Description:        ev.Description,
		Date:               ev.Date,
		Time:               ev.Time,
		Location:           ev.Location,
		SpeakerName:        ev.SpeakerName,
		SpeakerDescription: ev.SpeakerDescription,
		SpeakerPosition:    ev.SpeakerPosition,
		Company:            ev.Company,
		VideoURL:           ev.VideoURL,
		BookingURL:         ev.BookingURL,
	}
}

// Trim strips surrounding whitespace from every free-text field.
func (d *EventDraft) Trim() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	d.Location = strings.TrimSpace(d.Location)
	d.SpeakerName = strings.TrimSpace(d.SpeakerName)
	d.SpeakerDescription = strings.TrimSpace(d.SpeakerDescription)
	d.SpeakerPosition = strings.TrimSpace(d.SpeakerPosition)
	d.Company = strings.TrimSpace(d.Company)
	d.VideoURL = strings.TrimSpace(d.VideoURL)
	d.BookingURL = strings.TrimSpace(d.BookingURL)
}

// MissingFields returns the wire-format names of every required field that
// is empty, in one pass. The video URL is optional.
func (d EventDraft) MissingFields() []string {
	required := []struct {
		key   string
		value string
	}{
		{"event_name", d.Name},
		{"event_description", d.Description},
		{"event_location", d.Location},
		{"event_time", d.Time},
		{"event_date", d.Date},
		{"speaker_name", d.SpeakerName},
		{"speaker_description", d.SpeakerDescription},
		{"speaker_position", d.SpeakerPosition},
		{"company", d.Company},
		{"booking_url", d.BookingURL},
	}
	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.key)
		}
	}
	return missing
}

// EventSubmission is the fully-assembled payload for a create or update
// call: the draft plus the server-confirmed poster URL and the per-user
// routing identifier.
type EventSubmission struct {
	EventDraft
	PosterURL string
	PortUUID  string
}
