package hook

import (
	"reflect"
	"regexp"
	"testing"

	"github.com/wahlandcase/commitcraft/internal/ticket"
)

const (
	testPattern = `[A-Z]+-\d+`
	testFormat  = "{ticket} {commit_msg}"
	testBody    = "Ticket: [{ticket}](https://jira.example.com/browse/{ticket})"
)

func compilePattern(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()
	re, err := ticket.Compile(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	return re
}

func TestTransformAddsTicketPrefix(t *testing.T) {
	re := compilePattern(t, testPattern)
	lines := []string{"Fix authentication bug\n"}

	got, modified, err := Transform(lines, "NDC-123_feature", re, testFormat, "")
	if err != nil {
		t.Fatal(err)
	}
	if !modified {
		t.Fatal("modified = false, want true")
	}
	want := []string{"NDC-123 Fix authentication bug\n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestTransformSkips(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		branch string
	}{
		{"fixup commit", []string{"fixup! Previous commit\n"}, "NDC-123_feature"},
		{"squash commit", []string{"squash! Previous commit\n"}, "NDC-123_feature"},
		{"amend commit", []string{"amend! Previous commit\n"}, "NDC-123_feature"},
		{"merge commit", []string{"Merge branch 'dev'\n"}, "NDC-123_feature"},
		{"no ticket in branch", []string{"Fix bug\n"}, "feature_branch"},
		{"ticket already in subject", []string{"NDC-123 Already has ticket\n"}, "NDC-123_feature"},
		{"ticket already in body", []string{"Fix bug\n", "\n", "Refs NDC-123\n"}, "NDC-123_feature"},
	}

	re := compilePattern(t, testPattern)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, modified, err := Transform(tt.lines, tt.branch, re, testFormat, "")
			if err != nil {
				t.Fatal(err)
			}
			if modified {
				t.Error("modified = true, want false")
			}
			if !reflect.DeepEqual(got, tt.lines) {
				t.Errorf("lines changed: %q", got)
			}
		})
	}
}

func TestTransformEmptyBuffer(t *testing.T) {
	re := compilePattern(t, testPattern)
	got, modified, err := Transform(nil, "NDC-123_feature", re, testFormat, "")
	if err != nil {
		t.Fatal(err)
	}
	if modified || len(got) != 0 {
		t.Errorf("Transform(nil) = %q, modified=%v", got, modified)
	}
}

func TestTransformIdempotent(t *testing.T) {
	re := compilePattern(t, testPattern)
	lines := []string{"Fix bug\n"}

	first, modified, err := Transform(lines, "NDC-123_feature", re, testFormat, testBody)
	if err != nil {
		t.Fatal(err)
	}
	if !modified {
		t.Fatal("first pass: modified = false")
	}

	second, modified, err := Transform(first, "NDC-123_feature", re, testFormat, testBody)
	if err != nil {
		t.Fatal(err)
	}
	if modified {
		t.Error("second pass: modified = true, want false")
	}
	if !reflect.DeepEqual(second, first) {
		t.Errorf("second pass changed buffer: %q", second)
	}
}

func TestTransformInsertsBody(t *testing.T) {
	re := compilePattern(t, testPattern)
	lines := []string{"Fix bug\n"}

	got, modified, err := Transform(lines, "NDC-123_feature", re, testFormat, testBody)
	if err != nil {
		t.Fatal(err)
	}
	if !modified {
		t.Fatal("modified = false, want true")
	}
	want := []string{
		"NDC-123 Fix bug\n",
		"\n",
		"Ticket: [NDC-123](https://jira.example.com/browse/NDC-123)\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestTransformBodySeparatedFromExistingBody(t *testing.T) {
	// A non-blank second line gets pushed down behind a new blank line
	re := compilePattern(t, `QA-\d+`)
	lines := []string{"Fix bug\n", "Existing body line\n"}

	got, modified, err := Transform(lines, "qa-7_fix", re, testFormat, "Refs {ticket}")
	if err != nil {
		t.Fatal(err)
	}
	if !modified {
		t.Fatal("modified = false, want true")
	}
	want := []string{
		"QA-7 Fix bug\n",
		"\n",
		"Refs QA-7\n",
		"Existing body line\n",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestTransformBodyDuplicateGuard(t *testing.T) {
	// Body content already below the subject is not inserted again, but the
	// subject rewrite still counts as a modification
	re := compilePattern(t, `QA-\d+`)
	lines := []string{"Fix bug\n", "\n", "Refs ticket seven\n"}

	got, modified, err := Transform(lines, "qa-7_fix", re, testFormat, "Refs ticket seven")
	if err != nil {
		t.Fatal(err)
	}
	if !modified {
		t.Fatal("modified = false, want true")
	}
	want := []string{"QA-7 Fix bug\n", "\n", "Refs ticket seven\n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestTransformTemplateError(t *testing.T) {
	re := compilePattern(t, testPattern)
	lines := []string{"Fix bug\n"}

	_, _, err := Transform(lines, "NDC-123_feature", re, "{bogus}", "")
	if err == nil {
		t.Fatal("expected template error")
	}
}

func TestTransformKeepsMultipleTickets(t *testing.T) {
	re := compilePattern(t, `NDC-\d+`)
	lines := []string{"Fix bug\n"}

	got, _, err := Transform(lines, "NDC-123_NDC-456", re, "[{tickets}] {commit_msg}", "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"[NDC-123, NDC-456] Fix bug\n"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}
