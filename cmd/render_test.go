package cmd

import (
	"testing"
)

func TestRenderText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Welcome back",
			want: "Welcome back",
		},
		{
			name: "paragraph tags dropped",
			in:   "\n<p>The new term starts on Monday.</p>\n",
			want: "The new term starts on Monday.",
		},
		{
			name: "entities decoded",
			in:   "<p>Fish &amp; Chips &#8211; every Friday</p>",
			want: "Fish & Chips – every Friday",
		},
		{
			name: "adjacent blocks separated",
			in:   "<h2>Notice</h2><p>School closed.</p>",
			want: "Notice School closed.",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderText(tt.in); got != tt.want {
				t.Errorf("renderText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q, want %q", got, "short")
	}
	if got := truncate("a long piece of content", 10); got != "a long ..." {
		t.Errorf("truncate() = %q, want %q", got, "a long ...")
	}
}
