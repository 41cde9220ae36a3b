package srt

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"translatesrt/internal/fileutil"
)

var (
	// ErrNotExist reports a missing subtitle path.
	ErrNotExist = errors.New("file does not exist")
	// ErrNoCues reports a subtitle file without any cues.
	ErrNoCues = errors.New("not a valid SRT file")
	// ErrMalformed wraps structural parse failures.
	ErrMalformed = errors.New("malformed srt")
)

// Load reads and parses the SRT file at path.
func Load(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read srt %s: %w", path, ErrNotExist)
		}
		return nil, fmt.Errorf("read srt: %w", err)
	}
	cues, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cues, nil
}

// Parse decodes SRT content. Blank-line separated blocks hold an index line,
// a timing line, and zero or more text lines. When indices are missing,
// non-positive, or duplicated the cues are renumbered from 1.
func Parse(data []byte) ([]Cue, error) {
	content := strings.TrimPrefix(string(data), "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")

	var cues []Cue
	renumber := false
	seen := make(map[int]struct{})

	i := 0
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		lineNo := i + 1
		head := strings.TrimSpace(lines[i])

		var (
			index  int
			timing string
		)
		switch {
		case strings.Contains(head, "-->"):
			timing = head
			renumber = true
			i++
		default:
			parsed, err := strconv.Atoi(head)
			if err != nil || i+1 >= len(lines) || !strings.Contains(lines[i+1], "-->") {
				if len(cues) > 0 {
					// Stray text after a blank line belongs to the previous cue.
					last := &cues[len(cues)-1]
					last.Text = joinText(last.Text, normalizeLine(lines[i]))
					i++
					continue
				}
				return nil, fmt.Errorf("%w: line %d: expected cue index, got %q", ErrMalformed, lineNo, head)
			}
			index = parsed
			timing = strings.TrimSpace(lines[i+1])
			i += 2
		}

		start, end, err := parseTimingLine(timing)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, lineNo, err)
		}

		var text []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			text = append(text, normalizeLine(lines[i]))
			i++
		}

		if index <= 0 {
			renumber = true
		} else if _, dup := seen[index]; dup {
			renumber = true
		}
		seen[index] = struct{}{}

		cues = append(cues, Cue{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(text, "\n"),
		})
	}

	if renumber {
		for i := range cues {
			cues[i].Index = i + 1
		}
	}
	return cues, nil
}

func normalizeLine(line string) string {
	return norm.NFC.String(strings.TrimRight(line, " \t"))
}

func joinText(existing, line string) string {
	if existing == "" {
		return line
	}
	return existing + "\n" + line
}

// Format renders cues as SRT. Every cue is written, including cues whose text
// is empty, so the output keeps the input's cue sequence.
func Format(cues []Cue) []byte {
	var buf bytes.Buffer
	for _, cue := range cues {
		buf.WriteString(strconv.Itoa(cue.Index))
		buf.WriteByte('\n')
		buf.WriteString(formatTimestamp(cue.Start))
		buf.WriteString(" --> ")
		buf.WriteString(formatTimestamp(cue.End))
		buf.WriteByte('\n')
		if cue.Text != "" {
			buf.WriteString(cue.Text)
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save writes cues to path as UTF-8.
func Save(cues []Cue, path string) error {
	if err := fileutil.WriteFileAtomic(path, Format(cues), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// Validate reports whether path names an existing SRT file with at least one
// cue.
func Validate(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("input path: %w", ErrNotExist)
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNotExist)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, ErrNoCues)
	}
	cues, err := Load(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoCues, err)
	}
	if len(cues) == 0 {
		return fmt.Errorf("%s: %w", path, ErrNoCues)
	}
	return nil
}
