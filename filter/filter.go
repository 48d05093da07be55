package filter

import (
	"strings"

	"github.com/MichaelGloessl04/wpapihandler/wordpress"
)

// ParseAndCreateFilter compiles a filter expression and returns a filter function.
// An empty expression matches every post.
func ParseAndCreateFilter(expression string) (func(wordpress.Post) bool, error) {
	if strings.TrimSpace(expression) == "" {
		return func(wordpress.Post) bool { return true }, nil
	}

	compiled, err := NewExprCompiler().Compile(expression)
	if err != nil {
		return nil, err
	}

	return compiled.Evaluate, nil
}

// Apply returns the posts matching the compiled filter, preserving input order.
func Apply(posts []wordpress.Post, match func(wordpress.Post) bool) []wordpress.Post {
	matched := make([]wordpress.Post, 0, len(posts))
	for _, post := range posts {
		if match(post) {
			matched = append(matched, post)
		}
	}
	return matched
}
