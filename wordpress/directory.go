package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Partners retrieves the partners collection.
func (c *Client) Partners(ctx context.Context) ([]Partner, error) {
	var partners []Partner
	err := c.collectPages(ctx, "/wp/v2/partners/", func(body []byte) (int, error) {
		var wires []wirePartner
		if err := json.Unmarshal(body, &wires); err != nil {
			return 0, err
		}
		for _, w := range wires {
			partners = append(partners, Partner{
				ID:      w.ID,
				Name:    w.Title.Rendered,
				Link:    w.Link,
				MediaID: w.FeaturedMedia,
			})
		}
		return len(wires), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get partners: %w", err)
	}
	return partners, nil
}

// Personnel retrieves the personnel collection.
func (c *Client) Personnel(ctx context.Context) ([]Personnel, error) {
	var people []Personnel
	err := c.collectPages(ctx, "/wp/v2/personnel/", func(body []byte) (int, error) {
		var wires []wirePersonnel
		if err := json.Unmarshal(body, &wires); err != nil {
			return 0, err
		}
		for _, w := range wires {
			people = append(people, Personnel{
				ID:   w.ID,
				Name: w.Title.Rendered,
				Link: w.Link,
			})
		}
		return len(wires), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}
	return people, nil
}

// Events retrieves the school-events collection.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	err := c.collectPages(ctx, "/wp/v2/school-events/", func(body []byte) (int, error) {
		var wires []wireEvent
		if err := json.Unmarshal(body, &wires); err != nil {
			return 0, err
		}
		for _, w := range wires {
			events = append(events, Event{
				ID:    w.ID,
				Title: w.Title.Rendered,
				Link:  w.Link,
			})
		}
		return len(wires), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get school events: %w", err)
	}
	return events, nil
}

// collectPages walks a list endpoint page by page, handing each page body
// to consume. consume reports how many records the page held. The walk
// stops once the X-WP-Total header is reached; requesting past the last
// page would draw a 400 rest_post_invalid_page_number from the server.
func (c *Client) collectPages(ctx context.Context, endpoint string, consume func(body []byte) (int, error)) error {
	collected := 0
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(c.pageSize))

		body, header, err := c.doRequest(ctx, http.MethodGet, endpoint, params, nil)
		if err != nil {
			return err
		}

		count, err := consume(body)
		if err != nil {
			return fmt.Errorf("failed to parse page %d: %w", page, err)
		}
		collected += count

		total, err := strconv.Atoi(header.Get("X-WP-Total"))
		if err != nil {
			return fmt.Errorf("unexpected X-WP-Total header %q: %w", header.Get("X-WP-Total"), err)
		}
		if collected >= total || count == 0 {
			return nil
		}
	}
}

const calendarEndpoint = "/tribe/events/v1/events/"

// CalendarEvents retrieves all events from the Tribe Events calendar.
func (c *Client) CalendarEvents(ctx context.Context) ([]CalendarEvent, error) {
	body, _, err := c.doRequest(ctx, http.MethodGet, calendarEndpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar events: %w", err)
	}

	var envelope wireEvents
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse calendar events: %w", err)
	}
	return envelope.Events, nil
}

// CalendarEvent retrieves a single calendar event by id.
func (c *Client) CalendarEvent(ctx context.Context, id int) (*CalendarEvent, error) {
	body, _, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("%s%d", calendarEndpoint, id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar event %d: %w", id, err)
	}

	var event CalendarEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to parse calendar event: %w", err)
	}
	return &event, nil
}

// CreateCalendarEvent creates a new calendar event.
func (c *Client) CreateCalendarEvent(ctx context.Context, event CalendarEvent) (*CalendarEvent, error) {
	if event.Title == "" {
		return nil, &InvalidArgumentError{Reason: "event title is required"}
	}
	if event.StartDate.IsZero() || event.EndDate.IsZero() {
		return nil, &InvalidArgumentError{Reason: "event start and end dates are required"}
	}

	body, _, err := c.doRequest(ctx, http.MethodPost, calendarEndpoint, nil, event)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	var created CalendarEvent
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to parse created calendar event: %w", err)
	}

	c.logger.Info().Int("event_id", created.ID).Msg("Successfully created calendar event")
	return &created, nil
}

// DeleteCalendarEvent removes a calendar event.
func (c *Client) DeleteCalendarEvent(ctx context.Context, id int) error {
	_, _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("%s%d", calendarEndpoint, id), nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event %d: %w", id, err)
	}

	c.logger.Info().Int("event_id", id).Msg("Successfully deleted calendar event")
	return nil
}
