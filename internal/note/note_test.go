package note

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/i474232898/weatherline/internal/weather"
)

var rec = weather.Record{
	Temp:       "18°C",
	Conditions: "Partly cloudy",
	Icon:       "⛅",
	Wind:       "12 km/h",
	Humidity:   "62%",
	FeelsLike:  "18°C",
	Location:   "London, England",
}

const block = `---
temp: "18°C"
conditions: "Partly cloudy"
icon: "⛅"
wind: "12 km/h"
humidity: "62%"
location: "London, England"
---
`

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		cur     Cursor
		text    string
		wantDoc string
		wantCur Cursor
	}{
		{
			name:    "middle of line",
			doc:     "Today: \nmore",
			cur:     Cursor{Line: 0, Ch: 7},
			text:    "⛅ 18°C",
			wantDoc: "Today: ⛅ 18°C\nmore",
			wantCur: Cursor{Line: 0, Ch: 13},
		},
		{
			name:    "empty document",
			doc:     "",
			cur:     Cursor{},
			text:    "sunny",
			wantDoc: "sunny",
			wantCur: Cursor{Line: 0, Ch: 5},
		},
		{
			name:    "cursor past end is clamped",
			doc:     "a\nbc",
			cur:     Cursor{Line: 9, Ch: 9},
			text:    "!",
			wantDoc: "a\nbc!",
			wantCur: Cursor{Line: 1, Ch: 3},
		},
		{
			name:    "multi-line text",
			doc:     "xy",
			cur:     Cursor{Line: 0, Ch: 1},
			text:    "1\n22",
			wantDoc: "x1\n22y",
			wantCur: Cursor{Line: 1, Ch: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, cur := Insert(tt.doc, tt.cur, tt.text)
			if doc != tt.wantDoc {
				t.Fatalf("expected doc %q, got %q", tt.wantDoc, doc)
			}
			if cur != tt.wantCur {
				t.Fatalf("expected cursor %v, got %v", tt.wantCur, cur)
			}
		})
	}
}

func TestMergeFrontmatterCreatesBlock(t *testing.T) {
	got := MergeFrontmatter("# Journal\n", weather.NewFrontmatter(rec, false))
	want := block + "# Journal\n"
	if got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestMergeFrontmatterReplacesExistingKeys(t *testing.T) {
	doc := "---\ntitle: Diary\ntemp: \"3°C\"\ntags: [daily]\n---\nbody\n"
	got := MergeFrontmatter(doc, weather.NewFrontmatter(rec, false))

	want := "---\ntitle: Diary\ntemp: \"18°C\"\ntags: [daily]\n" +
		"conditions: \"Partly cloudy\"\nicon: \"⛅\"\nwind: \"12 km/h\"\nhumidity: \"62%\"\nlocation: \"London, England\"\n" +
		"---\nbody\n"
	if got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
	if err := ValidateFrontmatter(got); err != nil {
		t.Fatalf("merged frontmatter should parse: %v", err)
	}
}

func TestValidateFrontmatterCatchesUnescapedQuotes(t *testing.T) {
	quoted := rec
	quoted.Location = `The "Big" Smoke`

	bad := MergeFrontmatter("", weather.NewFrontmatter(quoted, false))
	if err := ValidateFrontmatter(bad); !errors.Is(err, ErrInvalidFrontmatter) {
		t.Fatalf("expected ErrInvalidFrontmatter, got %v", err)
	}

	good := MergeFrontmatter("", weather.NewFrontmatter(quoted, true))
	if err := ValidateFrontmatter(good); err != nil {
		t.Fatalf("escaped frontmatter should parse: %v", err)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day.md")
	if err := os.WriteFile(path, []byte("Weather: \n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cur, err := InsertFile(path, Cursor{Line: 0, Ch: 9}, "⛅")
	if err != nil {
		t.Fatalf("InsertFile: %v", err)
	}
	if cur != (Cursor{Line: 0, Ch: 10}) {
		t.Fatalf("unexpected cursor %v", cur)
	}

	if err := MergeFile(path, weather.NewFrontmatter(rec, false)); err != nil {
		t.Fatalf("MergeFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != block+"Weather: ⛅\n" {
		t.Fatalf("unexpected file content %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode to be preserved, got %v", info.Mode().Perm())
	}
}

func TestMergeFileLeavesFileOnInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	if err := os.WriteFile(path, []byte("body\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	quoted := rec
	quoted.Conditions = `"Sunny"`
	if err := MergeFile(path, weather.NewFrontmatter(quoted, false)); !errors.Is(err, ErrInvalidFrontmatter) {
		t.Fatalf("expected ErrInvalidFrontmatter, got %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "body\n" {
		t.Fatalf("file must be untouched, got %q", got)
	}
}
