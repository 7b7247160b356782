package shift

import (
	"testing"
	"time"
)

func TestNoteLog_EncodeDecode(t *testing.T) {
	log := NoteLog{}.
		AppendOn(NewDate(2026, time.March, 5), "closed 30 min of undertime from surplus on 2026-03-10").
		AppendOn(NewDate(2026, time.March, 6), "manual overtime payout: 150")

	encoded := log.Encode()
	want := "[2026-03-05] closed 30 min of undertime from surplus on 2026-03-10\n" +
		"[2026-03-06] manual overtime payout: 150"
	if encoded != want {
		t.Errorf("Encode:\ngot  %q\nwant %q", encoded, want)
	}

	decoded := DecodeNotes(encoded)
	if len(decoded) != 2 {
		t.Fatalf("decoded %d entries", len(decoded))
	}
	if !decoded[0].Recorded.Equal(NewDate(2026, time.March, 5)) {
		t.Errorf("first entry date: got %s", decoded[0].Recorded)
	}
	if decoded[1].Text != "manual overtime payout: 150" {
		t.Errorf("second entry text: got %q", decoded[1].Text)
	}
}

func TestDecodeNotes_UndatedLinesSurvive(t *testing.T) {
	// Hand-typed notes and rows written before the audit format existed
	// carry no date prefix. They must load as undated entries, not vanish.
	log := DecodeNotes("remember to ask about the bonus\n[2026-03-05] dated entry\n[not a date] odd but kept")
	if len(log) != 3 {
		t.Fatalf("decoded %d entries", len(log))
	}
	if !log[0].Recorded.IsZero() || log[0].Text != "remember to ask about the bonus" {
		t.Errorf("first entry: %+v", log[0])
	}
	if log[1].Recorded.IsZero() {
		t.Error("second entry should carry its date")
	}
	if !log[2].Recorded.IsZero() || log[2].Text != "[not a date] odd but kept" {
		t.Errorf("third entry: %+v", log[2])
	}
}

func TestNoteLog_EmptyEncodesEmpty(t *testing.T) {
	if got := (NoteLog{}).Encode(); got != "" {
		t.Errorf("got %q", got)
	}
	if got := DecodeNotes(""); got != nil {
		t.Errorf("got %v", got)
	}
}

func TestNoteLog_AppendDoesNotMutate(t *testing.T) {
	base := NoteLog{}.AppendOn(NewDate(2026, time.March, 1), "first")
	grown := base.AppendOn(NewDate(2026, time.March, 2), "second")

	if len(base) != 1 {
		t.Errorf("base grew to %d entries", len(base))
	}
	if len(grown) != 2 {
		t.Errorf("grown has %d entries", len(grown))
	}
}
