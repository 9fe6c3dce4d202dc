package message

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Add input validation to parser", "Add input validation to parser"},
		{"whitespace", "  \nAdd input validation to parser\n ", "Add input validation to parser"},
		{"double quotes", `"Add input validation to parser"`, "Add input validation to parser"},
		{"single quotes", `'Add input validation to parser'`, "Add input validation to parser"},
		{"quotes and whitespace", " \"Add input validation to parser\" \n", "Add input validation to parser"},
		{"mismatched quotes kept", `"Add input validation'`, `"Add input validation'`},
		{"inner quotes kept", `Add "validation" to parser`, `Add "validation" to parser`},
		{"code fence", "```\nAdd input validation to parser\n```", "Add input validation to parser"},
		{"code fence with language", "```text\nAdd input validation to parser\n```", "Add input validation to parser"},
		{"empty", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	candidate := "Fix race in retriever shutdown"
	if got := Sanitize(`"` + candidate + `"`); got != candidate {
		t.Fatalf("round-trip through quotes lost the candidate: %q", got)
	}
}
