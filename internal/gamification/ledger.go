// Package gamification turns submissions and explicit actions into
// point/streak/energy updates. Events compute a Delta; persistence applies
// the delta as a single arithmetic UPDATE so concurrent submissions for the
// same user cannot lose increments.
package gamification

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidEnergyLevel rejects check-ins outside the 1..5 scale.
var ErrInvalidEnergyLevel = errors.New("energy level must be between 1 and 5")

// Delta is the metrics change produced by one event. Points are always
// non-negative: no event ever decreases growth points.
type Delta struct {
	Points            int
	MoodScore         *float64
	EnergyLevel       *int
	IncrementCheckIns bool
	IncrementStreak   bool
}

// Event is anything that moves a user's metrics.
type Event interface {
	Delta() (Delta, error)
}

// TextSubmission is a scored journal/text entry.
type TextSubmission struct {
	SentimentScore float64
}

func (e TextSubmission) Delta() (Delta, error) {
	mood := e.SentimentScore
	return Delta{Points: 10, MoodScore: &mood}, nil
}

// VoiceSubmission is an uploaded voice message. The analyzed mood score is
// stored on the analysis row only, not on the metrics snapshot.
type VoiceSubmission struct {
	MoodScore float64
}

func (e VoiceSubmission) Delta() (Delta, error) {
	return Delta{Points: 15}, nil
}

// FamilyFeedback is third-party feedback about the user. Feedback from
// family carries extra weight.
type FamilyFeedback struct {
	Relationship string
	RawSentiment float64
}

// WeightedScore applies the relationship weight, capped at 1.0.
func (e FamilyFeedback) WeightedScore() float64 {
	weight := 1.0
	if e.Relationship == "family" {
		weight = 1.5
	}
	return min(e.RawSentiment*weight, 1.0)
}

func (e FamilyFeedback) Delta() (Delta, error) {
	mood := e.WeightedScore()
	return Delta{Points: 20, MoodScore: &mood}, nil
}

// EnergyCheckIn is an explicit self-reported energy level.
type EnergyCheckIn struct {
	Level int
}

func (e EnergyCheckIn) Delta() (Delta, error) {
	if e.Level < 1 || e.Level > 5 {
		return Delta{}, fmt.Errorf("%w: got %d", ErrInvalidEnergyLevel, e.Level)
	}
	level := e.Level
	return Delta{
		Points:            5,
		EnergyLevel:       &level,
		IncrementCheckIns: true,
		IncrementStreak:   true,
	}, nil
}

// powerUpPoints is the reward table for recognized activities; anything
// else earns the base reward.
var powerUpPoints = map[string]int{
	"breathing":  15,
	"gratitude":  20,
	"connection": 25,
}

// PowerUp is a completed wellness activity. Always succeeds.
type PowerUp struct {
	ActivityType string
}

func (e PowerUp) Delta() (Delta, error) {
	points, ok := powerUpPoints[e.ActivityType]
	if !ok {
		points = 10
	}
	return Delta{Points: points}, nil
}

// LogContent is the activity-log line recorded alongside the reward.
func (e PowerUp) LogContent() string {
	return fmt.Sprintf("Completed %s power-up", e.ActivityType)
}

// MockBatch summarizes a bulk test-data generation run.
type MockBatch struct {
	AvgSentiment float64
	Count        int
}

func (e MockBatch) Delta() (Delta, error) {
	level := int(math.Round(e.AvgSentiment * 5))
	if level < 1 {
		level = 1
	} else if level > 5 {
		level = 5
	}
	mood := e.AvgSentiment
	return Delta{
		Points:            e.Count * 10,
		MoodScore:         &mood,
		EnergyLevel:       &level,
		IncrementCheckIns: true,
		IncrementStreak:   true,
	}, nil
}
