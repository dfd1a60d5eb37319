// Package mockdata is the canned corpus behind the test-data generation
// endpoint. Each item carries the sentiment score the generator records,
// so repeated runs produce consistent analytics.
package mockdata

// Item is one canned submission with its expected sentiment.
type Item struct {
	Text      string
	Sentiment float64
}

// Conversations are stored as mock journal entries and tiered for risk.
var Conversations = []Item{
	{Text: "I'm feeling really stressed about work lately. Too much pressure and deadlines.", Sentiment: 0.2},
	{Text: "Had a wonderful day with family today! We went for a picnic and I felt so grateful.", Sentiment: 0.9},
	{Text: "Feeling a bit anxious about the upcoming presentation tomorrow. Hope it goes well.", Sentiment: 0.3},
	{Text: "Really excited about the weekend plans. Going hiking with friends!", Sentiment: 0.8},
	{Text: "Having trouble sleeping these days. My mind keeps racing with worries.", Sentiment: 0.25},
	{Text: "Just finished a good workout. Feeling energized and positive about the day!", Sentiment: 0.85},
	{Text: "Overwhelmed with all the deadlines coming up this week. Need to prioritize better.", Sentiment: 0.2},
	{Text: "Love spending quality time with friends. Makes me feel connected and happy.", Sentiment: 0.8},
	{Text: "Feeling isolated and lonely lately. Need to reach out and connect more with people.", Sentiment: 0.2},
	{Text: "Beautiful sunny day today! Mood is definitely lifting and I feel optimistic.", Sentiment: 0.75},
}

// FamilyFeedback rows are stored without a risk tier, matching how anonymous
// third-party observations are handled.
var FamilyFeedback = []Item{
	{Text: "Alex seems much happier and more energetic lately, engaging more in conversations", Sentiment: 0.8},
	{Text: "Noticed Alex has been quiet and withdrawn recently, not participating much", Sentiment: 0.3},
	{Text: "Alex is doing great, very positive energy and engaging well with everyone", Sentiment: 0.9},
	{Text: "Alex mentioned feeling stressed about work pressures and upcoming deadlines", Sentiment: 0.3},
	{Text: "Alex seems to be sleeping better and appears more relaxed during interactions", Sentiment: 0.7},
}
