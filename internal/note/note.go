// Package note edits markdown notes on disk: it inserts a rendered weather
// line at a cursor and merges the weather block into YAML frontmatter.
package note

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/i474232898/weatherline/internal/weather"
)

const fence = "---"

// ErrInvalidFrontmatter is returned when the merged block is not valid YAML,
// typically because a value contains an unescaped double quote.
var ErrInvalidFrontmatter = errors.New("frontmatter is not valid YAML")

// Cursor is a 0-based position; Ch counts runes within the line.
type Cursor struct {
	Line int
	Ch   int
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Ch)
}

// Insert places text at cur and returns the new document together with the
// cursor advanced past the inserted text. Positions past the end of a line or
// of the document are clamped.
func Insert(doc string, cur Cursor, text string) (string, Cursor) {
	lines := strings.Split(doc, "\n")

	line := cur.Line
	if line < 0 {
		line = 0
	}
	if line >= len(lines) {
		line = len(lines) - 1
		cur.Ch = len([]rune(lines[line]))
	}

	runes := []rune(lines[line])
	ch := cur.Ch
	if ch < 0 {
		ch = 0
	}
	if ch > len(runes) {
		ch = len(runes)
	}

	before, after := string(runes[:ch]), string(runes[ch:])
	lines[line] = before + text + after
	out := strings.Join(lines, "\n")

	inserted := strings.Split(text, "\n")
	next := Cursor{Line: line + len(inserted) - 1}
	if len(inserted) == 1 {
		next.Ch = ch + len([]rune(text))
	} else {
		next.Ch = len([]rune(inserted[len(inserted)-1]))
	}
	return out, next
}

// split separates a leading frontmatter block from the body. ok is false when
// the document has no complete block.
func split(doc string) (block []string, body string, ok bool) {
	lines := strings.Split(doc, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != fence {
		return nil, doc, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == fence {
			return lines[1:i], strings.Join(lines[i+1:], "\n"), true
		}
	}
	return nil, doc, false
}

// MergeFrontmatter writes fm into the document's frontmatter. Existing lines
// for the same keys are replaced in place; the rest are appended before the
// closing fence. A document without frontmatter gets a new block on top.
func MergeFrontmatter(doc string, fm weather.Frontmatter) string {
	lines := fm.Lines()

	block, body, ok := split(doc)
	if !ok {
		return fence + "\n" + strings.Join(lines, "\n") + "\n" + fence + "\n" + doc
	}

	byKey := make(map[string]string, len(fm.Fields))
	for i, fld := range fm.Fields {
		byKey[fld.Key] = lines[i]
	}

	seen := make(map[string]bool, len(fm.Fields))
	merged := make([]string, 0, len(block)+len(lines))
	for _, l := range block {
		key, _, found := strings.Cut(l, ":")
		key = strings.TrimSpace(key)
		if replacement, ok := byKey[key]; found && ok && !strings.HasPrefix(l, " ") && !seen[key] {
			merged = append(merged, replacement)
			seen[key] = true
			continue
		}
		merged = append(merged, l)
	}
	for _, fld := range fm.Fields {
		if !seen[fld.Key] {
			merged = append(merged, byKey[fld.Key])
		}
	}

	return fence + "\n" + strings.Join(merged, "\n") + "\n" + fence + "\n" + body
}

// ValidateFrontmatter parses the document's frontmatter as YAML.
func ValidateFrontmatter(doc string) error {
	block, _, ok := split(doc)
	if !ok {
		return nil
	}
	var out map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(block, "\n")), &out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	return nil
}

// InsertFile inserts text into the note at path and returns the new cursor.
func InsertFile(path string, cur Cursor, text string) (Cursor, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return cur, err
	}
	out, next := Insert(string(doc), cur, text)
	if err := writeAtomic(path, out); err != nil {
		return cur, err
	}
	return next, nil
}

// MergeFile merges fm into the note at path, creating the file when it does
// not exist. The returned error wraps ErrInvalidFrontmatter when the result
// would not parse; the file is left untouched in that case.
func MergeFile(path string, fm weather.Frontmatter) error {
	doc, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	out := MergeFrontmatter(string(doc), fm)
	if err := ValidateFrontmatter(out); err != nil {
		return err
	}
	return writeAtomic(path, out)
}

// writeAtomic replaces path through a temp file in the same directory.
func writeAtomic(path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
