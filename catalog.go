package cardocr

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// Embedded reference patterns for DefaultLayout. To regenerate from a font or
// capture them from a screenshot, run ./cmd/compute_catalog and replace this
// file.
//
//go:embed catalogdata/reference.txt
var referenceCatalog []byte

var defaultCatalog = mustParseCatalog(referenceCatalog)

// Entry is one labelled reference pattern.
type Entry struct {
	Kind    Kind
	Label   string
	Pattern Pattern
	Width   int
	Height  int
}

// Catalog is an immutable set of reference patterns for ranks and suits.
// Entries keep the order in which they were read. A Catalog is safe for
// concurrent use.
type Catalog struct {
	ranks []Entry
	suits []Entry
}

// DefaultCatalog returns the catalog embedded in the package.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func mustParseCatalog(data []byte) *Catalog {
	c, err := ParseCatalog(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Entries returns a copy of the entries of one kind in catalog order.
func (c *Catalog) Entries(kind Kind) []Entry {
	src := c.ranks
	if kind == KindSuit {
		src = c.suits
	}
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// All returns every entry, ranks first, in catalog order.
func (c *Catalog) All() []Entry {
	return append(c.Entries(KindRank), c.suits...)
}

// entries returns the backing slice without copying. Callers must not modify
// it.
func (c *Catalog) entries(kind Kind) []Entry {
	if kind == KindSuit {
		return c.suits
	}
	return c.ranks
}

// Lookup returns the entry for label.
func (c *Catalog) Lookup(kind Kind, label string) (Entry, bool) {
	for _, e := range c.entries(kind) {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries of one kind.
func (c *Catalog) Len(kind Kind) int {
	return len(c.entries(kind))
}

// NewCatalog builds a catalog from entries, keeping their order. Every label
// must belong to its kind and appear once, every pattern must be exactly
// Width x Height symbols, all entries of one kind must share dimensions, and
// both kinds must be present.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{}
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.Kind != KindRank && e.Kind != KindSuit {
			return nil, fmt.Errorf("entry %q has unknown kind %d", e.Label, e.Kind)
		}
		if !validLabel(e.Kind, e.Label) {
			return nil, &LabelError{Kind: e.Kind, Label: e.Label}
		}
		key := e.Kind.String() + "/" + e.Label
		if seen[key] {
			return nil, fmt.Errorf("duplicate %s %s", e.Kind, e.Label)
		}
		seen[key] = true
		if e.Width <= 0 || e.Height <= 0 || len(e.Pattern) != e.Width*e.Height {
			return nil, fmt.Errorf("%s %s: pattern length %d does not match %dx%d",
				e.Kind, e.Label, len(e.Pattern), e.Width, e.Height)
		}
		if e.Kind == KindRank {
			c.ranks = append(c.ranks, e)
		} else {
			c.suits = append(c.suits, e)
		}
	}

	for _, kind := range []Kind{KindRank, KindSuit} {
		kindEntries := c.entries(kind)
		if len(kindEntries) == 0 {
			return nil, fmt.Errorf("catalog has no %s entries", kind)
		}
		first := kindEntries[0]
		for _, e := range kindEntries[1:] {
			if e.Width != first.Width || e.Height != first.Height {
				return nil, fmt.Errorf("%s %s is %dx%d, %s %s is %dx%d",
					kind, e.Label, e.Width, e.Height, kind, first.Label, first.Width, first.Height)
			}
		}
	}
	return c, nil
}

// ParseCatalog reads a catalog in the text format of catalogdata/reference.txt:
//
//	# comment
//	[rank K]
//	.**......**.
//	...
//
// Each section header names a kind and a label, followed by one line per
// pattern row. A blank line or the next header ends a section. The entries
// are then checked by NewCatalog.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	var entries []Entry
	var cur *Entry
	var rows strings.Builder

	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Height == 0 {
			return fmt.Errorf("%s %s: no pattern rows", cur.Kind, cur.Label)
		}
		cur.Pattern = Pattern(rows.String())
		entries = append(entries, *cur)
		cur = nil
		rows.Reset()
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "["):
			if err := flush(); err != nil {
				return nil, err
			}
			e, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cur = &e
		default:
			if cur == nil {
				return nil, fmt.Errorf("line %d: pattern row outside a section", lineNo)
			}
			if strings.Trim(line, string([]byte{Foreground, Background})) != "" {
				return nil, fmt.Errorf("line %d: pattern rows may only contain %q and %q",
					lineNo, Foreground, Background)
			}
			if cur.Height > 0 && len(line) != cur.Width {
				return nil, fmt.Errorf("line %d: row width %d, want %d", lineNo, len(line), cur.Width)
			}
			cur.Width = len(line)
			cur.Height++
			rows.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return NewCatalog(entries)
}

// LoadCatalog reads a catalog file from path.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// parseHeader parses "[rank K]" or "[suit s]".
func parseHeader(line string) (Entry, error) {
	if !strings.HasSuffix(line, "]") {
		return Entry{}, fmt.Errorf("malformed section header %q", line)
	}
	fields := strings.Fields(line[1 : len(line)-1])
	if len(fields) != 2 {
		return Entry{}, fmt.Errorf("malformed section header %q", line)
	}
	var kind Kind
	switch fields[0] {
	case "rank":
		kind = KindRank
	case "suit":
		kind = KindSuit
	default:
		return Entry{}, fmt.Errorf("unknown section kind %q", fields[0])
	}
	if !validLabel(kind, fields[1]) {
		return Entry{}, &LabelError{Kind: kind, Label: fields[1]}
	}
	return Entry{Kind: kind, Label: fields[1]}, nil
}

// WriteCatalog writes entries in the format read by ParseCatalog.
func WriteCatalog(w io.Writer, header string, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, line := range strings.Split(strings.TrimSpace(header), "\n") {
		if line != "" {
			fmt.Fprintf(bw, "# %s\n", line)
		}
	}
	for _, e := range entries {
		fmt.Fprintf(bw, "\n[%s %s]\n", e.Kind, e.Label)
		for _, row := range e.Pattern.Rows(e.Width) {
			fmt.Fprintln(bw, row)
		}
	}
	return bw.Flush()
}
