package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"eventadmin/internal/domain"
)

// Collection is the single source of truth for the set of known events
// within a session. It is filled by Refresh and reconciled after every
// mutation by applying the server's canonical record.
type Collection struct {
	gateway domain.Gateway
	logger  *slog.Logger

	mu      sync.RWMutex
	events  []domain.Event
	index   map[string]int
	loading bool
}

// NewCollection returns an empty collection backed by the gateway.
func NewCollection(gateway domain.Gateway, logger *slog.Logger) *Collection {
	return &Collection{
		gateway: gateway,
		logger:  logger,
		index:   make(map[string]int),
	}
}

// Refresh replaces the whole in-memory collection with the backend's
// result. On failure the collection is left empty and the error is
// returned; callers render an empty state rather than crashing.
func (c *Collection) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	events, err := c.gateway.ListEvents(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.events = nil
		c.index = make(map[string]int)
		c.logger.Warn("failed to fetch events", "err", err)
		return fmt.Errorf("refresh events: %w", err)
	}
	c.events = events
	c.index = make(map[string]int, len(events))
	for i, ev := range events {
		c.index[ev.ID] = i
	}
	return nil
}

// Loading reports whether a refresh is in flight.
func (c *Collection) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Events returns the collection in insertion order.
func (c *Collection) Events() []domain.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Get looks up an already-fetched event. An absent id is not an error;
// callers should treat it as a redirect back to the list.
func (c *Collection) Get(id string) (domain.Event, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return domain.Event{}, false
	}
	return c.events[i], true
}

// Filter returns events whose name, location, or speaker contains the query
// (case-insensitive). Past events are dropped unless includePast is set.
func (c *Collection) Filter(query string, includePast bool, now time.Time) []domain.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Event
	for _, ev := range c.events {
		if !includePast && !ev.Upcoming(now) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(ev.Name), q) &&
			!strings.Contains(strings.ToLower(ev.Location), q) &&
			!strings.Contains(strings.ToLower(ev.SpeakerName), q) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// Stats summarizes the collection for the dashboard.
type Stats struct {
	Total     int
	Upcoming  int
	ThisMonth int
	Locations int
}

// Stats computes dashboard counters over the fetched collection.
func (c *Collection) Stats(now time.Time) Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	st := Stats{Total: len(c.events)}
	locations := make(map[string]struct{})
	for _, ev := range c.events {
		if ev.Upcoming(now) {
			st.Upcoming++
		}
		if day, err := ev.Day(); err == nil &&
			day.Year() == now.Year() && day.Month() == now.Month() {
			st.ThisMonth++
		}
		locations[ev.Location] = struct{}{}
	}
	st.Locations = len(locations)
	return st
}

// ApplyCanonical merges a server-returned record into the collection:
// replace by id when present, append otherwise. This is the single
// reconciliation rule after a mutation; no optimistic local copy survives
// it.
func (c *Collection) ApplyCanonical(ev domain.Event) {
	if ev.ID == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if i, ok := c.index[ev.ID]; ok {
		c.events[i] = ev
		return
	}
	c.events = append(c.events, ev)
	c.index[ev.ID] = len(c.events) - 1
}
