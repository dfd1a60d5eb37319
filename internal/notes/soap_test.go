package notes

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

var noteTime = time.Date(2025, time.March, 14, 15, 30, 0, 0, time.UTC)

func TestComposeSections(t *testing.T) {
	duration := 25
	note := Compose(noteTime, Snapshot{
		PatientName:     "Alex",
		DurationMinutes: &duration,
		PrimaryEmotion:  "joy",
		Emotions:        []string{"joy", "neutral"},
	})

	for _, want := range []string{
		"SOAP NOTE - March 14, 2025",
		"Patient: Alex",
		"Session Duration: 25 minutes",
		"SUBJECTIVE:",
		"OBJECTIVE:",
		"ASSESSMENT:",
		"PLAN:",
		"Patient expressed primary emotion of joy during session.",
		"Emotional range observed: joy, neutral",
		"Generated by AI MedScribe on 03/14/2025 at 3:30 PM",
	} {
		if !strings.Contains(note, want) {
			t.Errorf("note missing %q", want)
		}
	}
}

func TestComposeEmptySession(t *testing.T) {
	note := Compose(noteTime, Snapshot{PatientName: "Alex"})

	if !strings.Contains(note, "Session Duration: In Progress minutes") {
		t.Error("missing duration should render as In Progress")
	}
	if !strings.Contains(note, "primary emotion of mixed emotions") {
		t.Error("missing primary emotion should render as mixed emotions")
	}
	if !strings.Contains(note, "Emotional range observed: Neutral to positive range") {
		t.Error("empty emotion list should render the neutral range phrase")
	}
}

func TestComposeDedupesEmotions(t *testing.T) {
	note := Compose(noteTime, Snapshot{
		PatientName: "Alex",
		Emotions:    []string{"sadness", "joy", "sadness", "joy", "fear"},
	})
	if !strings.Contains(note, "Emotional range observed: sadness, joy, fear") {
		t.Errorf("duplicate emotions not collapsed:\n%s", note)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"keeps first-seen order", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"drops blanks", []string{"", "joy", ""}, []string{"joy"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dedupe(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dedupe(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
