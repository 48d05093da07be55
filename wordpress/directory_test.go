package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectionServer serves a paged custom-post-type collection at the
// given route.
func collectionServer(t *testing.T, route string, records []wirePartner) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json"+route {
			writeWireError(w, http.StatusNotFound, "rest_no_route", "no route")
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		totalPages := (len(records) + perPage - 1) / perPage
		if totalPages == 0 {
			totalPages = 1
		}
		// WordPress rejects out-of-range pages instead of returning an
		// empty array.
		if page > totalPages {
			writeWireError(w, http.StatusBadRequest, "rest_post_invalid_page_number",
				"The page number requested is larger than the number of pages available.")
			return
		}
		start := (page - 1) * perPage
		end := start + perPage
		if end > len(records) {
			end = len(records)
		}
		pageRecords := records[start:end]
		if pageRecords == nil {
			pageRecords = []wirePartner{}
		}
		w.Header().Set("X-WP-Total", strconv.Itoa(len(records)))
		w.Header().Set("X-WP-TotalPages", strconv.Itoa(totalPages))
		writeJSON(w, http.StatusOK, pageRecords)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, BasicAuth("admin", "secret"), zerolog.Nop(), WithPageSize(10))
	require.NoError(t, err)
	return client
}

func makeWireRecords(n int) []wirePartner {
	records := make([]wirePartner, n)
	for i := range records {
		records[i] = wirePartner{
			ID:            i + 1,
			Title:         renderedText{Rendered: fmt.Sprintf("Record %d", i+1)},
			Link:          fmt.Sprintf("https://example.com/record-%d", i+1),
			FeaturedMedia: 100 + i,
		}
	}
	return records
}

func TestPartners(t *testing.T) {
	client := collectionServer(t, "/wp/v2/partners/", makeWireRecords(25))

	partners, err := client.Partners(context.Background())
	require.NoError(t, err)
	require.Len(t, partners, 25)
	assert.Equal(t, Partner{ID: 1, Name: "Record 1", Link: "https://example.com/record-1", MediaID: 100}, partners[0])
	assert.Equal(t, 25, partners[24].ID)
}

func TestPersonnel(t *testing.T) {
	client := collectionServer(t, "/wp/v2/personnel/", makeWireRecords(3))

	people, err := client.Personnel(context.Background())
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, Personnel{ID: 2, Name: "Record 2", Link: "https://example.com/record-2"}, people[1])
}

func TestEvents(t *testing.T) {
	client := collectionServer(t, "/wp/v2/school-events/", makeWireRecords(10))

	// Exactly one full page: the walk must stop without requesting a
	// second page, which the server would reject.
	events, err := client.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 10)
	assert.Equal(t, Event{ID: 1, Title: "Record 1", Link: "https://example.com/record-1"}, events[0])
}

func TestPartnersPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int
	}{
		{name: "empty collection", total: 0},
		{name: "exact multiple of page size", total: 20},
		{name: "partial last page", total: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := collectionServer(t, "/wp/v2/partners/", makeWireRecords(tt.total))

			partners, err := client.Partners(context.Background())
			require.NoError(t, err)
			require.Len(t, partners, tt.total)
			for i, partner := range partners {
				assert.Equal(t, i+1, partner.ID)
			}
		})
	}
}

func TestCalendarEvents(t *testing.T) {
	start := EventTime{Time: time.Date(2023, 11, 24, 10, 0, 0, 0, time.UTC)}
	end := EventTime{Time: time.Date(2023, 11, 24, 12, 0, 0, 0, time.UTC)}
	events := []CalendarEvent{
		{ID: 1, Title: "Open Day", StartDate: start, EndDate: end},
		{ID: 2, Title: "Graduation", StartDate: start, EndDate: end, AllDay: true},
	}

	var deleted []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/wp-json/tribe/events/v1/events/" && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, wireEvents{Events: events, Total: len(events)})
		case r.URL.Path == "/wp-json/tribe/events/v1/events/1" && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, events[0])
		case r.URL.Path == "/wp-json/tribe/events/v1/events/" && r.Method == http.MethodPost:
			var event CalendarEvent
			require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
			event.ID = 3
			writeJSON(w, http.StatusCreated, event)
		case r.Method == http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
			writeJSON(w, http.StatusOK, map[string]any{})
		default:
			writeWireError(w, http.StatusNotFound, "rest_no_route", "no route")
		}
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, BasicAuth("admin", "secret"), zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		got, err := client.CalendarEvents(ctx)
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("single", func(t *testing.T) {
		got, err := client.CalendarEvent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Open Day", got.Title)
	})

	t.Run("create", func(t *testing.T) {
		created, err := client.CreateCalendarEvent(ctx, CalendarEvent{
			Title:     "Sports Day",
			StartDate: start,
			EndDate:   end,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, created.ID)
	})

	t.Run("create requires title and dates", func(t *testing.T) {
		_, err := client.CreateCalendarEvent(ctx, CalendarEvent{Title: "No Dates"})
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr)

		_, err = client.CreateCalendarEvent(ctx, CalendarEvent{StartDate: start, EndDate: end})
		require.ErrorAs(t, err, &argErr)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.DeleteCalendarEvent(ctx, 2))
		assert.Equal(t, []string{"/wp-json/tribe/events/v1/events/2"}, deleted)
	})
}
