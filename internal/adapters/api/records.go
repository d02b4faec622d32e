package api

import (
	"time"

	"eventadmin/internal/domain"
)

// eventPayload is the snake_case wire form of an event submission. The
// camelCase draft names are translated here and nowhere else.
type eventPayload struct {
	PortUUID           string `json:"port_uuid"`
	EventName          string `json:"event_name"`
	EventDescription   string `json:"event_description"`
	EventLocation      string `json:"event_location"`
	EventTime          string `json:"event_time"`
	EventDate          string `json:"event_date"`
	EventPosterURL     string `json:"event_poster_url"`
	VideoURL           string `json:"video_url"`
	SpeakerName        string `json:"speaker_name"`
	SpeakerDescription string `json:"speaker_description"`
	SpeakerPosition    string `json:"speaker_position"`
	Company            string `json:"company"`
	BookingURL         string `json:"booking_url"`
}

func newEventPayload(sub domain.EventSubmission) eventPayload {
	return eventPayload{
		PortUUID:           sub.PortUUID,
		EventName:          sub.Name,
		EventDescription:   sub.Description,
		EventLocation:      sub.Location,
		EventTime:          sub.Time,
		EventDate:          sub.Date,
		EventPosterURL:     sub.PosterURL,
		VideoURL:           sub.VideoURL,
		SpeakerName:        sub.SpeakerName,
		SpeakerDescription: sub.SpeakerDescription,
		SpeakerPosition:    sub.SpeakerPosition,
		Company:            sub.Company,
		BookingURL:         sub.BookingURL,
	}
}

// eventRecord is the snake_case wire form of a server-confirmed event.
type eventRecord struct {
	ID                 string `json:"id"`
	EventName          string `json:"event_name"`
	EventDescription   string `json:"event_description"`
	EventLocation      string `json:"event_location"`
	EventTime          string `json:"event_time"`
	EventDate          string `json:"event_date"`
	EventPosterURL     string `json:"event_poster_url"`
	VideoURL           string `json:"video_url"`
	SpeakerName        string `json:"speaker_name"`
	SpeakerDescription string `json:"speaker_description"`
	SpeakerPosition    string `json:"speaker_position"`
	Company            string `json:"company"`
	BookingURL         string `json:"booking_url"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// toDomain translates a wire record. Timestamps the backend omits are
// synthesized from now so the collection can still order recent events.
func (r eventRecord) toDomain(now time.Time) domain.Event {
	return domain.Event{
		ID:                 r.ID,
		Name:               r.EventName,
		Description:        r.EventDescription,
		Date:               r.EventDate,
		Time:               r.EventTime,
		Location:           r.EventLocation,
		SpeakerName:        r.SpeakerName,
		SpeakerDescription: r.SpeakerDescription,
		SpeakerPosition:    r.SpeakerPosition,
		Company:            r.Company,
		PosterURL:          r.EventPosterURL,
		VideoURL:           r.VideoURL,
		BookingURL:         r.BookingURL,
		CreatedAt:          parseTimestamp(r.CreatedAt, now),
		UpdatedAt:          parseTimestamp(r.UpdatedAt, now),
	}
}

func parseTimestamp(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return fallback
}
