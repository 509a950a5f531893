package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Calendar resolves named events against a Google Calendar. Templates reference
// events by name (anchor rules); the first upcoming event whose summary contains
// the name wins.
type Calendar struct {
	svc        *calendar.Service
	calendarID string

	log *slog.Logger
}

// NewCalendar builds a Calendar API client using a service account JSON key file.
// Read-only scope is enough: the funnel only looks event dates up.
func NewCalendar(ctx context.Context, credentialsPath, calendarID string, log *slog.Logger) (*Calendar, error) {
	srv, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(calendar.CalendarEventsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &Calendar{
		svc:        srv,
		calendarID: calendarID,
		log:        log.With("component", "events"),
	}, nil
}

// Resolve returns the start time of the first upcoming event whose summary
// contains name (case-insensitive). The second result is false when no such
// event exists; that is not an error.
func (c *Calendar) Resolve(ctx context.Context, name string) (time.Time, bool, error) {
	call := c.svc.Events.List(c.calendarID).
		Context(ctx).
		TimeMin(time.Now().Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime")

	needle := strings.ToLower(name)

	var found bool
	var when time.Time
	err := call.Pages(ctx, func(events *calendar.Events) error {
		for _, e := range events.Items {
			if found || e.Start == nil {
				continue
			}
			if !strings.Contains(strings.ToLower(e.Summary), needle) {
				continue
			}

			start, err := parseEventStart(e.Start)
			if err != nil {
				c.log.WarnContext(ctx, "Skipping event with unparsable start",
					"event", e.Summary, "error", err)
				continue
			}

			when = start
			found = true
		}
		return nil
	})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("list events: %w", err)
	}

	return when, found, nil
}

func parseEventStart(start *calendar.EventDateTime) (time.Time, error) {
	if start.DateTime != "" {
		t, err := time.Parse(time.RFC3339, start.DateTime)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse datetime %q: %w", start.DateTime, err)
		}
		return t, nil
	}
	if start.Date != "" {
		t, err := time.Parse("2006-01-02", start.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse date %q: %w", start.Date, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("event has no start date")
}

// Noop is the lookup used when no calendar is configured. Every resolution
// misses, so anchored templates fall back to the default offset.
type Noop struct{}

func (Noop) Resolve(context.Context, string) (time.Time, bool, error) {
	return time.Time{}, false, nil
}
