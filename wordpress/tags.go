package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// maxTagConcurrency bounds the number of in-flight tag lookups.
const maxTagConcurrency = 10

const tagsEndpoint = "/wp/v2/tags"

// TagNames resolves tag ids to names. Lookups run concurrently; the
// returned names correspond positionally to the input ids regardless of
// completion order. A single failing lookup fails the whole batch.
func (c *Client) TagNames(ctx context.Context, ids []int) ([]string, error) {
	names := make([]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxTagConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			body, _, err := c.doRequest(gctx, http.MethodGet, fmt.Sprintf("/wp/v2/tags/%d", id), nil, nil)
			if err != nil {
				return fmt.Errorf("failed to get tag %d: %w", id, err)
			}

			var tag Tag
			if err := json.Unmarshal(body, &tag); err != nil {
				return fmt.Errorf("failed to parse tag %d: %w", id, err)
			}

			names[i] = tag.Name
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

// TagID resolves a tag name to its id. With createIfMissing, a name with
// no match is created (name and slug both derived from the input) and the
// new id returned; otherwise the call fails with TagNotFoundError.
// Among multiple matches an exact name match wins, then the first result
// in server order.
func (c *Client) TagID(ctx context.Context, name string, createIfMissing bool) (int, error) {
	tag, err := c.findTag(ctx, name)
	if err != nil {
		return 0, err
	}
	if tag != nil {
		return tag.ID, nil
	}

	if !createIfMissing {
		return 0, &TagNotFoundError{Name: name}
	}
	return c.createTag(ctx, name)
}

// TagSlug returns the slug of the named tag.
func (c *Client) TagSlug(ctx context.Context, name string) (string, error) {
	tag, err := c.findTag(ctx, name)
	if err != nil {
		return "", err
	}
	if tag == nil {
		return "", &TagNotFoundError{Name: name}
	}
	return tag.Slug, nil
}

// findTag searches for a tag by name. It returns nil without error when
// nothing matches. The exact-match preference keeps repeated resolutions
// stable even when the server's relevance ordering shifts.
func (c *Client) findTag(ctx context.Context, name string) (*Tag, error) {
	if name == "" {
		return nil, &InvalidArgumentError{Reason: "tag name must not be empty"}
	}

	params := url.Values{}
	params.Set("search", name)
	// Without per_page the server returns only its default 10 hits and an
	// exact match further down the result list would never be seen.
	params.Set("per_page", strconv.Itoa(c.pageSize))

	body, _, err := c.doRequest(ctx, http.MethodGet, tagsEndpoint, params, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search tag %q: %w", name, err)
	}

	var tags []Tag
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("failed to parse tag search result: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}

	for _, tag := range tags {
		if tag.Name == name {
			return &tag, nil
		}
	}
	return &tags[0], nil
}

// createTag creates a new tag and returns its server-assigned id.
func (c *Client) createTag(ctx context.Context, name string) (int, error) {
	payload := wireTag{Name: name, Slug: slugify(name)}

	body, _, err := c.doRequest(ctx, http.MethodPost, tagsEndpoint, nil, payload)
	if err != nil {
		return 0, fmt.Errorf("failed to create tag %q: %w", name, err)
	}

	var tag Tag
	if err := json.Unmarshal(body, &tag); err != nil {
		return 0, fmt.Errorf("failed to parse created tag: %w", err)
	}

	c.logger.Debug().Int("tag_id", tag.ID).Str("name", name).Msg("Created tag")
	return tag.ID, nil
}
