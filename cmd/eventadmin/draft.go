package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eventadmin/internal/domain"
)

// draftFile is the YAML form of an event draft. Keys match the backend's
// field names so a draft can be written from memory of the API contract.
type draftFile struct {
	Name               string `yaml:"name"`
	Description        string `yaml:"description"`
	Date               string `yaml:"date"`
	Time               string `yaml:"time"`
	Location           string `yaml:"location"`
	SpeakerName        string `yaml:"speaker_name"`
	SpeakerDescription string `yaml:"speaker_description"`
	SpeakerPosition    string `yaml:"speaker_position"`
	Company            string `yaml:"company"`
	VideoURL           string `yaml:"video_url"`
	BookingURL         string `yaml:"booking_url"`
}

// applyDraftFile overlays the file's non-empty values onto the draft. For
// an edit flow the draft arrives pre-seeded, so a partial file touches only
// the fields it names; the submission itself is still a full replace.
func applyDraftFile(path string, draft *domain.EventDraft) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read draft file: %w", err)
	}
	var df draftFile
	if err := yaml.Unmarshal(b, &df); err != nil {
		return fmt.Errorf("parse draft file %s: %w", path, err)
	}
	overlay := []struct {
		src string
		dst *string
	}{
		{df.Name, &draft.Name},
		{df.Description, &draft.Description},
		{df.Date, &draft.Date},
		{df.Time, &draft.Time},
		{df.Location, &draft.Location},
		{df.SpeakerName, &draft.SpeakerName},
		{df.SpeakerDescription, &draft.SpeakerDescription},
		{df.SpeakerPosition, &draft.SpeakerPosition},
		{df.Company, &draft.Company},
		{df.VideoURL, &draft.VideoURL},
		{df.BookingURL, &draft.BookingURL},
	}
	for _, o := range overlay {
		if o.src != "" {
			*o.dst = o.src
		}
	}
	return nil
}
