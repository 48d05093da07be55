package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// defaultPageSize is the per_page maximum the WordPress list endpoints
// accept.
const defaultPageSize = 100

const postsEndpoint = "/wp/v2/posts/"

// PostCount retrieves the total number of posts from the X-WP-Total
// header of a minimal list request. A failed request is an error; zero is
// only ever a valid count.
func (c *Client) PostCount(ctx context.Context) (int, error) {
	stats, err := c.PageStats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.Total, nil
}

// PageStats retrieves the post total and the page total for the client's
// page size. The count comes from the X-WP-Total header of a minimal
// probe; X-WP-TotalPages is relative to the probe's per_page and is
// therefore recomputed rather than read.
func (c *Client) PageStats(ctx context.Context) (PageStats, error) {
	params := url.Values{}
	params.Set("per_page", "1")

	_, header, err := c.doRequest(ctx, http.MethodGet, postsEndpoint, params, nil)
	if err != nil {
		return PageStats{}, fmt.Errorf("failed to get post count: %w", err)
	}

	total, err := strconv.Atoi(header.Get("X-WP-Total"))
	if err != nil {
		return PageStats{}, fmt.Errorf("unexpected X-WP-Total header %q: %w", header.Get("X-WP-Total"), err)
	}

	return PageStats{
		Total:      total,
		TotalPages: (total + c.pageSize - 1) / c.pageSize,
	}, nil
}

// GetPost retrieves a single post by id, with its tag ids resolved to
// names.
func (c *Client) GetPost(ctx context.Context, id int) (*Post, error) {
	body, _, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/wp/v2/posts/%d", id), nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, &PostNotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}

	var wp wirePost
	if err := json.Unmarshal(body, &wp); err != nil {
		return nil, fmt.Errorf("failed to parse post: %w", err)
	}

	return c.postFromWire(ctx, wp)
}

// GetAllPosts retrieves every post, in ascending page order.
func (c *Client) GetAllPosts(ctx context.Context) ([]Post, error) {
	total, err := c.PostCount(ctx)
	if err != nil {
		return nil, err
	}
	return c.getAmount(ctx, total)
}

// GetPosts retrieves up to amount posts in ascending page order. An
// amount exceeding the true total is clamped to the total.
func (c *Client) GetPosts(ctx context.Context, amount int) ([]Post, error) {
	if amount < 0 {
		return nil, &InvalidArgumentError{Reason: "amount must not be negative"}
	}

	total, err := c.PostCount(ctx)
	if err != nil {
		return nil, err
	}
	if amount > total {
		amount = total
	}
	return c.getAmount(ctx, amount)
}

// getAmount paginates through the posts collection until amount posts
// have been collected. Pages are fetched sequentially; posts keep server
// order within each page.
func (c *Client) getAmount(ctx context.Context, amount int) ([]Post, error) {
	posts := make([]Post, 0, amount)

	for page := 1; len(posts) < amount; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(c.pageSize))

		body, _, err := c.doRequest(ctx, http.MethodGet, postsEndpoint, params, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get posts page %d: %w", page, err)
		}

		var wires []wirePost
		if err := json.Unmarshal(body, &wires); err != nil {
			return nil, fmt.Errorf("failed to parse posts page %d: %w", page, err)
		}
		if len(wires) == 0 {
			// Server disagrees with its own total; stop rather than loop.
			break
		}

		for _, wp := range wires {
			if len(posts) == amount {
				break
			}
			post, err := c.postFromWire(ctx, wp)
			if err != nil {
				return nil, err
			}
			posts = append(posts, *post)
		}

		c.logger.Debug().
			Int("page", page).
			Int("count", len(wires)).
			Int("total", len(posts)).
			Msg("Retrieved posts page")
	}

	return posts, nil
}

// GetPostsByTags retrieves the posts carrying any of the named tags. The
// names are resolved to ids first; a name with no matching tag fails the
// whole call with TagNotFoundError. An empty name list is an error, not
// an unfiltered listing.
func (c *Client) GetPostsByTags(ctx context.Context, tagNames []string) ([]Post, error) {
	if len(tagNames) == 0 {
		return nil, &InvalidArgumentError{Reason: "at least one tag name is required"}
	}

	ids := make([]int, len(tagNames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxTagConcurrency)
	for i, name := range tagNames {
		g.Go(func() error {
			id, err := c.TagID(gctx, name, false)
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idList := make([]string, len(ids))
	for i, id := range ids {
		idList[i] = strconv.Itoa(id)
	}

	params := url.Values{}
	params.Set("tags", strings.Join(idList, ","))
	params.Set("per_page", strconv.Itoa(c.pageSize))

	body, _, err := c.doRequest(ctx, http.MethodGet, postsEndpoint, params, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts by tags: %w", err)
	}

	var wires []wirePost
	if err := json.Unmarshal(body, &wires); err != nil {
		return nil, fmt.Errorf("failed to parse posts: %w", err)
	}

	posts := make([]Post, 0, len(wires))
	for _, wp := range wires {
		post, err := c.postFromWire(ctx, wp)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}

	return posts, nil
}

// CreatePost creates a new post. Tag names are resolved to ids, creating
// tags that do not exist yet, and the server's response is reshaped back
// into a Post with resolved names.
func (c *Client) CreatePost(ctx context.Context, post Post) (*Post, error) {
	if err := post.validate(); err != nil {
		return nil, err
	}

	ids := make([]int, len(post.Tags))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxTagConcurrency)
	for i, name := range post.Tags {
		g.Go(func() error {
			id, err := c.TagID(gctx, name, true)
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	payload := apiPost{
		Title:   post.Title,
		Content: post.Content,
		Status:  post.Status,
		Tags:    ids,
	}

	body, _, err := c.doRequest(ctx, http.MethodPost, postsEndpoint, nil, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	var wp wirePost
	if err := json.Unmarshal(body, &wp); err != nil {
		return nil, fmt.Errorf("failed to parse created post: %w", err)
	}

	created, err := c.postFromWire(ctx, wp)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Int("post_id", created.ID).Str("status", string(created.Status)).
		Msg("Successfully created post")
	return created, nil
}

// DeletePost permanently deletes a post, bypassing the trash.
func (c *Client) DeletePost(ctx context.Context, id int) error {
	params := url.Values{}
	params.Set("force", "true")

	_, _, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/wp/v2/posts/%d", id), params, nil)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	c.logger.Info().Int("post_id", id).Msg("Successfully deleted post")
	return nil
}

// postFromWire reshapes a wire-level post into a Post, resolving its tag
// ids to names.
func (c *Client) postFromWire(ctx context.Context, wp wirePost) (*Post, error) {
	names, err := c.TagNames(ctx, wp.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags of post %d: %w", wp.ID, err)
	}

	return &Post{
		ID:      wp.ID,
		Title:   wp.Title.Rendered,
		Content: wp.Content.Rendered,
		Status:  wp.Status,
		Tags:    names,
	}, nil
}
