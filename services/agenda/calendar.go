package agenda

import (
	"context"
	"fmt"
	"sync"

	"agendly/services/scheduling"
)

// Config is the calendar initialization contract shared by every agenda page.
type Config struct {
	// LoadEvents fetches the display-ready events for the agenda. Required.
	LoadEvents func(ctx context.Context) ([]DisplayEvent, error)
	// BlockedDates feeds the day-cell decoration hook.
	BlockedDates []scheduling.BlockedDate
	// WorkingHours is handed to the widget as its business-hours option.
	WorkingHours scheduling.WorkingHours
	// Selectable enables date selection on the rendered widget.
	Selectable bool
	// OnEventClick, when set, receives the clicked event. This is the single
	// dispatch point between the calendar and its page controller.
	OnEventClick func(DisplayEvent)
}

// Calendar is a live handle over a page's event collection. The event list is
// a transient cache derived from the store: it is rebuilt wholesale by
// RefetchEvents and never treated as the source of truth. A handle belongs to
// one page controller and is not shared.
type Calendar struct {
	mu      sync.RWMutex
	cfg     Config
	events  []DisplayEvent
	options map[string]any
}

// New builds a calendar handle and performs the initial event load.
func New(ctx context.Context, cfg Config) (*Calendar, error) {
	if cfg.LoadEvents == nil {
		return nil, fmt.Errorf("agenda: LoadEvents is required")
	}
	cal := &Calendar{
		cfg: cfg,
		options: map[string]any{
			"businessHours": cfg.WorkingHours,
			"selectable":    cfg.Selectable,
		},
	}
	if err := cal.RefetchEvents(ctx); err != nil {
		return nil, err
	}
	return cal, nil
}

// RefetchEvents rebuilds the event cache from the loader. On failure the
// previous cache is kept and the load error is returned; there is no retry.
func (c *Calendar) RefetchEvents(ctx context.Context) error {
	events, err := c.cfg.LoadEvents(ctx)
	if err != nil {
		return fmt.Errorf("agenda: failed to load events: %w", err)
	}
	c.mu.Lock()
	c.events = events
	c.mu.Unlock()
	return nil
}

// AddEvent optimistically inserts an event after a successful write, ahead of
// the next full refetch.
func (c *Calendar) AddEvent(ev DisplayEvent) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

// RemoveEvent drops an event from the cache by ID.
func (c *Calendar) RemoveEvent(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ev := range c.events {
		if ev.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			return
		}
	}
}

// GetEvents returns a snapshot of the current event collection.
func (c *Calendar) GetEvents() []DisplayEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]DisplayEvent, len(c.events))
	copy(out, c.events)
	return out
}

// GetEventByID returns the cached event with the given ID, or nil.
func (c *Calendar) GetEventByID(id string) *DisplayEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ev := range c.events {
		if ev.ID == id {
			out := ev
			return &out
		}
	}
	return nil
}

// Intervals returns the occupied slots of all cached events, the input the
// conflict detector expects.
func (c *Calendar) Intervals() []scheduling.Interval {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]scheduling.Interval, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Interval()
	}
	return out
}

// SetOption updates a widget option on the handle (e.g. businessHours after
// the establishment saves a new schedule).
func (c *Calendar) SetOption(name string, value any) {
	c.mu.Lock()
	c.options[name] = value
	c.mu.Unlock()
}

// Option reads back a widget option.
func (c *Calendar) Option(name string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options[name]
}

// ClickEvent dispatches the cached event with the given ID to the configured
// click handler. It reports whether a handler consumed the click.
func (c *Calendar) ClickEvent(id string) bool {
	if c.cfg.OnEventClick == nil {
		return false
	}
	ev := c.GetEventByID(id)
	if ev == nil {
		return false
	}
	c.cfg.OnEventClick(*ev)
	return true
}
