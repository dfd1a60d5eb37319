package analysis

import (
	"math"
	"math/rand"
	"sort"
	"strings"
)

// BreakdownEntry is one bar of the dashboard emotion chart. Derived per
// request, never persisted.
type BreakdownEntry struct {
	Emotion    string `json:"emotion"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// The fixed taxonomy the chart renders, with its display color tokens.
var baseEmotions = []BreakdownEntry{
	{Emotion: "Joy", Color: "bg-green-500"},
	{Emotion: "Sadness", Color: "bg-blue-500"},
	{Emotion: "Anger", Color: "bg-red-500"},
	{Emotion: "Fear", Color: "bg-purple-500"},
	{Emotion: "Surprise", Color: "bg-yellow-500"},
	{Emotion: "Disgust", Color: "bg-green-600"},
	{Emotion: "Neutral", Color: "bg-gray-500"},
	{Emotion: "Contempt", Color: "bg-indigo-500"},
	{Emotion: "Gratitude", Color: "bg-pink-500"},
	{Emotion: "Pride", Color: "bg-orange-500"},
}

// Breakdown expands a single classification into a full distribution over the
// taxonomy for charting. The entry matching the detected emotion gets the
// score as a percentage (at least 20); the rest get random filler drawn from
// rng, bounded so the primary entry always sorts first. The percentages are
// presentation filler and are not required to sum to 100.
func Breakdown(res Result, rng *rand.Rand) []BreakdownEntry {
	primary := titleCase(res.Emotion)
	primaryPct := int(math.Round(res.Score * 100))
	if primaryPct < 20 {
		primaryPct = 20
	}

	fillerCap := (100 - primaryPct) / len(baseEmotions)
	if fillerCap < 1 {
		fillerCap = 1
	}

	breakdown := make([]BreakdownEntry, 0, len(baseEmotions))
	for _, e := range baseEmotions {
		pct := 1 + rng.Intn(fillerCap)
		if e.Emotion == primary {
			pct = primaryPct
		}
		breakdown = append(breakdown, BreakdownEntry{
			Emotion:    e.Emotion,
			Percentage: pct,
			Color:      e.Color,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Percentage > breakdown[j].Percentage
	})
	return breakdown
}

// titleCase normalizes an emotion label ("joy", "JOY") to its taxonomy
// spelling ("Joy"). Labels are plain ASCII words.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
