package render

import (
	"os"
	"path/filepath"
	"strings"
)

// Style is the visual role of one line of notes
type Style int

const (
	Body Style = iota
	Subheading
	Heading
)

func (s Style) String() string {
	switch s {
	case Heading:
		return "heading"
	case Subheading:
		return "subheading"
	default:
		return "body"
	}
}

// Classify picks a line's style by substring, not by position: any "#" makes
// a heading, otherwise any "*" makes a subheading. A body line that happens
// to contain either character is styled as a heading or subheading.
func Classify(line string) Style {
	switch {
	case strings.Contains(line, "#"):
		return Heading
	case strings.Contains(line, "*"):
		return Subheading
	default:
		return Body
	}
}

// Segment is one line of notes with its style
type Segment struct {
	Style Style
	Text  string
}

// Layout splits text into lines and classifies each one, preserving order.
func Layout(text string) []Segment {
	lines := splitLines(text)
	segments := make([]Segment, 0, len(lines))
	for _, line := range lines {
		segments = append(segments, Segment{Style: Classify(line), Text: line})
	}
	return segments
}

// splitLines breaks on \n, \r\n and \r. A trailing line break does not
// produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func readSegments(notesPath string) ([]Segment, error) {
	data, err := os.ReadFile(notesPath)
	if err != nil {
		return nil, &Error{Op: "read notes", Path: notesPath, Err: err}
	}
	return Layout(string(data)), nil
}

func outputPath(notesPath, ext string) string {
	return strings.TrimSuffix(notesPath, filepath.Ext(notesPath)) + ext
}
