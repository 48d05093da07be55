// Package wordpress provides a client for the WordPress REST API.
//
// The client wraps the /wp-json routes of a WordPress installation and
// exposes typed operations for posts, tags, and the site's custom
// collections (partners, personnel, school events) plus the Tribe Events
// calendar.
//
// # Architecture
//
//   - Client: immutable API client carrying the server address and the
//     header set applied to every request
//   - Types: domain models (Post, Tag, Partner, Personnel, Event) and the
//     wire-level representations they are reshaped from
//   - Errors: structured error types for classification at call sites
//
// Tag handling is the main convenience the package adds over the raw API:
// fetched posts always carry tag names, never numeric ids. The client
// resolves ids to names on every read and names to ids on every write,
// creating missing tags on post creation.
//
// # Usage
//
// Create a client with the server address and a header set:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := wordpress.NewClient(
//		"https://example.com",
//		wordpress.BasicAuth("admin", "xxxx xxxx xxxx xxxx"),
//		logger,
//		wordpress.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	posts, err := client.GetAllPosts(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Operations return exactly one of a typed result or a classified error:
//
//   - PostNotFoundError: the requested post id does not exist
//   - TagNotFoundError: a tag name has no match and creation was not requested
//   - AuthenticationError: the server rejected the credentials
//   - InvalidURLError: the server address cannot be resolved or reached
//   - InvalidArgumentError: malformed caller input, surfaced before any request
//   - APIError: any other non-success response, with the status code and the
//     server-reported error code attached
//
// APIError includes helper methods for classification:
//
//	var apiErr *wordpress.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// handle auth failure
//	}
package wordpress
