package shift

import "strings"

// =============================================================================
// NOTE LOG - Append-only audit trail carried on a Record
// =============================================================================

// Note is one audit entry: the day it was recorded and free text.
// Redistribution and manual payouts append Notes; nothing ever edits or
// removes one.
type Note struct {
	Recorded Date
	Text     string
}

// NoteLog is the ordered audit trail of a Record. It stays a typed slice
// inside the core so tests can assert on entries without string parsing;
// only the storage layer flattens it to text.
type NoteLog []Note

// Append adds an entry dated today.
func (l NoteLog) Append(text string) NoteLog {
	return l.AppendOn(Today(), text)
}

// AppendOn adds an entry with an explicit date.
func (l NoteLog) AppendOn(day Date, text string) NoteLog {
	return append(l, Note{Recorded: day, Text: text})
}

// Encode flattens the log to the newline-separated text stored in the
// notes column. Entries are rendered as "[YYYY-MM-DD] text"; entries with
// a zero date (hand-typed user notes) are kept verbatim.
func (l NoteLog) Encode() string {
	if len(l) == 0 {
		return ""
	}
	lines := make([]string, 0, len(l))
	for _, n := range l {
		if n.Recorded.IsZero() {
			lines = append(lines, n.Text)
			continue
		}
		lines = append(lines, "["+n.Recorded.String()+"] "+n.Text)
	}
	return strings.Join(lines, "\n")
}

// DecodeNotes parses stored note text back into a log. Lines that do not
// carry a date prefix survive as undated entries, so rows written by hand
// or by older versions still load.
func DecodeNotes(s string) NoteLog {
	if s == "" {
		return nil
	}
	var log NoteLog
	for _, line := range strings.Split(s, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if end := strings.Index(line, "] "); end > 0 {
				if d, err := ParseDate(line[1:end]); err == nil {
					log = append(log, Note{Recorded: d, Text: line[end+2:]})
					continue
				}
			}
		}
		log = append(log, Note{Text: line})
	}
	return log
}
