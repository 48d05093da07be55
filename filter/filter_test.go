package filter

import (
	"strings"
	"testing"

	"github.com/MichaelGloessl04/wpapihandler/wordpress"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `hasTag("news")`,
			wantErr:    false,
		},
		{
			name:        "empty expression",
			expression:  "",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `hasTag("unclosed`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasTag("news") and contains(Title, "welcome") and Status == "publish"`,
			wantErr:    false,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if filter == nil {
					t.Errorf("expected filter but got nil")
				}
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	post := wordpress.Post{
		ID:      42,
		Title:   "Welcome Back to School",
		Content: "<p>The new term starts on Monday.</p>",
		Status:  wordpress.StatusPublish,
		Tags:    []string{"news", "events"},
	}

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{
			name:       "has tag",
			expression: `hasTag("news")`,
			expected:   true,
		},
		{
			name:       "has tag case insensitive",
			expression: `hasTag("News")`,
			expected:   true,
		},
		{
			name:       "does not have tag",
			expression: `hasTag("sports")`,
			expected:   false,
		},
		{
			name:       "title contains",
			expression: `contains(Title, "school")`,
			expected:   true,
		},
		{
			name:       "title prefix",
			expression: `startsWith(Title, "welcome")`,
			expected:   true,
		},
		{
			name:       "status comparison",
			expression: `Status == "publish"`,
			expected:   true,
		},
		{
			name:       "id comparison",
			expression: `ID > 10`,
			expected:   true,
		},
		{
			name:       "complex expression",
			expression: `hasTag("events") and contains(Content, "monday") and Status != "draft"`,
			expected:   true,
		},
		{
			name:       "negation",
			expression: `not hasTag("sports")`,
			expected:   true,
		},
		{
			name:       "post struct access",
			expression: `Post.Title == "Welcome Back to School"`,
			expected:   true,
		},
	}

	compiler := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile filter: %v", err)
			}

			result := filter.Evaluate(post)
			if result != tt.expected {
				t.Errorf("expected %v but got %v for expression %q", tt.expected, result, tt.expression)
			}
		})
	}
}

func TestParseAndCreateFilter(t *testing.T) {
	posts := []wordpress.Post{
		{ID: 1, Title: "Sports Day", Status: wordpress.StatusPublish, Tags: []string{"sports"}},
		{ID: 2, Title: "Exam Schedule", Status: wordpress.StatusDraft, Tags: []string{"news"}},
		{ID: 3, Title: "Sports Results", Status: wordpress.StatusPublish, Tags: []string{"sports", "news"}},
	}

	t.Run("empty expression matches everything", func(t *testing.T) {
		match, err := ParseAndCreateFilter("   ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := Apply(posts, match); len(got) != len(posts) {
			t.Errorf("expected %d posts but got %d", len(posts), len(got))
		}
	})

	t.Run("tag filter", func(t *testing.T) {
		match, err := ParseAndCreateFilter(`hasTag("sports") and Status == "publish"`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := Apply(posts, match)
		if len(got) != 2 {
			t.Fatalf("expected 2 posts but got %d", len(got))
		}
		if got[0].ID != 1 || got[1].ID != 3 {
			t.Errorf("expected posts 1 and 3 but got %d and %d", got[0].ID, got[1].ID)
		}
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := ParseAndCreateFilter(`hasTag(`)
		if err == nil {
			t.Fatal("expected error but got none")
		}
	})
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(10))
	expression := `hasTag("news") and ID > 0`

	first, err := compiler.Compile(expression)
	if err != nil {
		t.Fatalf("first compilation failed: %v", err)
	}

	second, err := compiler.Compile(expression)
	if err != nil {
		t.Fatalf("second compilation failed: %v", err)
	}
	if first != second {
		t.Error("expected cached filter to be reused")
	}

	cachingCompiler, ok := compiler.(CachingCompiler)
	if !ok {
		t.Fatal("expected compiler to implement CachingCompiler")
	}
	if cachingCompiler.Size() != 1 {
		t.Errorf("expected cache size 1 but got %d", cachingCompiler.Size())
	}

	cachingCompiler.Clear()
	if cachingCompiler.Size() != 0 {
		t.Errorf("expected cache size 0 after clear but got %d", cachingCompiler.Size())
	}
}

func TestCacheEviction(t *testing.T) {
	cache := newLRUCache(2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	// Touch "a" so "b" becomes the eviction candidate
	if _, ok := cache.Get("a"); !ok {
		t.Fatal("expected key a to be present")
	}

	cache.Put("c", 3)
	if _, ok := cache.Get("b"); ok {
		t.Error("expected key b to be evicted")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("expected key a to survive eviction")
	}
	if cache.Size() != 2 {
		t.Errorf("expected size 2 but got %d", cache.Size())
	}
}
