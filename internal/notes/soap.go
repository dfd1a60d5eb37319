// Package notes composes SOAP-format clinical documents from session data.
package notes

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is everything the composer reads from a session: metadata plus
// the emotions detected across the patient's messages.
type Snapshot struct {
	PatientName     string
	DurationMinutes *int
	PrimaryEmotion  string
	Emotions        []string
}

const soapTemplate = `SOAP NOTE - %s
Patient: %s
Session Duration: %s minutes

SUBJECTIVE:
Patient expressed primary emotion of %s during session.
Key themes discussed include emotional awareness, coping strategies, and current life challenges.
Patient demonstrated good engagement and willingness to share personal experiences.

OBJECTIVE:
Emotional range observed: %s
Patient maintained good eye contact and active participation throughout session.
Speech patterns and affect consistent with reported emotional state.

ASSESSMENT:
Patient shows continued progress in emotional awareness and expression.
Demonstrates healthy coping mechanisms and insight into personal patterns.
No acute risk factors identified during this session.

PLAN:
1. Continue current therapeutic approach focusing on emotional regulation
2. Encourage maintenance of positive social connections and support systems
3. Practice mindfulness and grounding techniques as discussed
4. Monitor mood patterns and check-in next session
5. Schedule follow-up session in one week

Generated by AI MedScribe on %s`

// Compose renders the note for a session snapshot. All clinical language is
// boilerplate; only the date, patient, duration, and emotion fields vary.
func Compose(now time.Time, s Snapshot) string {
	duration := "In Progress"
	if s.DurationMinutes != nil {
		duration = fmt.Sprintf("%d", *s.DurationMinutes)
	}

	primary := s.PrimaryEmotion
	if primary == "" {
		primary = "mixed emotions"
	}

	observed := "Neutral to positive range"
	if emotions := Dedupe(s.Emotions); len(emotions) > 0 {
		observed = strings.Join(emotions, ", ")
	}

	return fmt.Sprintf(soapTemplate,
		now.Format("January 2, 2006"),
		s.PatientName,
		duration,
		primary,
		observed,
		now.Format("01/02/2006 at 3:04 PM"),
	)
}

// Dedupe returns the distinct emotions in first-seen order, dropping blanks.
func Dedupe(emotions []string) []string {
	seen := make(map[string]struct{}, len(emotions))
	out := make([]string, 0, len(emotions))
	for _, e := range emotions {
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
