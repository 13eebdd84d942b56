package cardocr

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	layout := DefaultLayout()

	if got := c.Len(KindRank); got != len(Ranks) {
		t.Errorf("Expected %d ranks, got %d", len(Ranks), got)
	}
	if got := c.Len(KindSuit); got != len(Suits) {
		t.Errorf("Expected %d suits, got %d", len(Suits), got)
	}
	for i, e := range c.Entries(KindRank) {
		if e.Label != Ranks[i] {
			t.Errorf("Rank %d: expected %s, got %s", i, Ranks[i], e.Label)
		}
		if e.Width != layout.Number.Width || e.Height != layout.Number.Height {
			t.Errorf("Rank %s is %dx%d, expected number window size", e.Label, e.Width, e.Height)
		}
	}
	for i, e := range c.Entries(KindSuit) {
		if e.Label != Suits[i] {
			t.Errorf("Suit %d: expected %s, got %s", i, Suits[i], e.Label)
		}
		if e.Width != layout.Suit.Width || e.Height != layout.Suit.Height {
			t.Errorf("Suit %s is %dx%d, expected suit window size", e.Label, e.Width, e.Height)
		}
	}
	for _, e := range c.All() {
		if !e.Pattern.HasBackground() || e.Pattern.Count(Foreground) == 0 {
			t.Errorf("%s %s should contain both symbols", e.Kind, e.Label)
		}
	}
}

func TestCatalogEntriesReturnsCopy(t *testing.T) {
	c := DefaultCatalog()
	entries := c.Entries(KindSuit)
	entries[0].Label = "x"
	if e, ok := c.Lookup(KindSuit, "h"); !ok || e.Label != "h" {
		t.Error("Modifying Entries result must not change the catalog")
	}
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()
	e, ok := c.Lookup(KindRank, "10")
	if !ok || e.Label != "10" || e.Kind != KindRank {
		t.Errorf("Expected rank 10, got %+v (ok=%v)", e, ok)
	}
	if _, ok := c.Lookup(KindRank, "h"); ok {
		t.Error("Suit label should not be found among ranks")
	}
}

const tinyCatalog = `# tiny
[rank K]
*..
.*.

[rank A]
.*.
*.*
[suit s]
.*
**
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog(strings.NewReader(tinyCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	ranks := c.Entries(KindRank)
	if len(ranks) != 2 || ranks[0].Label != "K" || ranks[1].Label != "A" {
		t.Fatalf("Unexpected ranks %+v", ranks)
	}
	if ranks[0].Pattern != "*...*." || ranks[0].Width != 3 || ranks[0].Height != 2 {
		t.Errorf("Unexpected K entry %+v", ranks[0])
	}
	suit, ok := c.Lookup(KindSuit, "s")
	if !ok || suit.Pattern != ".***" {
		t.Errorf("Unexpected suit entry %+v", suit)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"row outside section", "*..\n", "outside a section"},
		{"bad symbol", "[rank K]\n*x.\n", "may only contain"},
		{"ragged rows", "[rank K]\n*..\n**\n", "row width"},
		{"unknown kind", "[card K]\n*.\n", "unknown section kind"},
		{"malformed header", "[rank]\n*.\n", "malformed section header"},
		{"empty section", "[rank K]\n\n[suit s]\n*.\n", "no pattern rows"},
		{"duplicate", "[rank K]\n*.\n[rank K]\n.*\n[suit s]\n*.\n", "duplicate"},
		{"missing suits", "[rank K]\n*.\n", "no suit entries"},
		{"mixed sizes", "[rank K]\n*.\n[rank A]\n*..\n[suit s]\n*.\n", "is 3x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err)
			}
		})
	}
}

func TestParseCatalogUnknownLabel(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("[rank Z]\n*.\n"))
	var labelErr *LabelError
	if !errors.As(err, &labelErr) {
		t.Fatalf("Expected LabelError, got %v", err)
	}
	if labelErr.Kind != KindRank || labelErr.Label != "Z" {
		t.Errorf("Unexpected LabelError %+v", labelErr)
	}
}

func TestWriteCatalogRoundTrip(t *testing.T) {
	want := DefaultCatalog().All()

	var buf bytes.Buffer
	if err := WriteCatalog(&buf, "regenerated\nfor a test", want); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# regenerated\n# for a test\n") {
		t.Errorf("Header not written as comments:\n%s", buf.String()[:40])
	}

	c, err := ParseCatalog(&buf)
	if err != nil {
		t.Fatalf("ParseCatalog failed: %v", err)
	}
	got := c.All()
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	if err := os.WriteFile(path, []byte(tinyCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if c.Len(KindRank) != 2 || c.Len(KindSuit) != 1 {
		t.Errorf("Unexpected catalog sizes %d/%d", c.Len(KindRank), c.Len(KindSuit))
	}

	if err := os.WriteFile(path, []byte("[rank K]\n*x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(path); err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("Expected an error naming the file, got %v", err)
	}
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
