package models

import (
	"encoding/json"
	"strings"
)

// IconTag is a semantic classification of a habit or expense category.
// Mapping a tag to a drawable glyph is left to the presentation layer.
type IconTag string

const (
	IconGeneric IconTag = "generic"

	// Habit tags
	IconSleep       IconTag = "sleep"
	IconMorning     IconTag = "morning"
	IconExercise    IconTag = "exercise"
	IconDiet        IconTag = "diet"
	IconHydration   IconTag = "hydration"
	IconMindfulness IconTag = "mindfulness"
	IconReading     IconTag = "reading"
	IconWork        IconTag = "work"
	IconCoding      IconTag = "coding"
	IconMusic       IconTag = "music"
	IconMobile      IconTag = "mobile"
	IconCoffee      IconTag = "coffee"

	// Expense category tags
	IconFood          IconTag = "food"
	IconTransport     IconTag = "transport"
	IconShopping      IconTag = "shopping"
	IconBill          IconTag = "bill"
	IconSubscription  IconTag = "subscription"
	IconGrocery       IconTag = "grocery"
	IconEntertainment IconTag = "entertainment"
	IconFuel          IconTag = "fuel"
	IconConnectivity  IconTag = "connectivity"
	IconResidence     IconTag = "residence"
	IconEducation     IconTag = "education"
	IconTravel        IconTag = "travel"
	IconGift          IconTag = "gift"
	IconHealth        IconTag = "health"
)

var knownTags = map[IconTag]struct{}{
	IconGeneric: {}, IconSleep: {}, IconMorning: {}, IconExercise: {}, IconDiet: {},
	IconHydration: {}, IconMindfulness: {}, IconReading: {}, IconWork: {}, IconCoding: {},
	IconMusic: {}, IconMobile: {}, IconCoffee: {}, IconFood: {}, IconTransport: {},
	IconShopping: {}, IconBill: {}, IconSubscription: {}, IconGrocery: {},
	IconEntertainment: {}, IconFuel: {}, IconConnectivity: {}, IconResidence: {},
	IconEducation: {}, IconTravel: {}, IconGift: {}, IconHealth: {},
}

// legacyGlyphs maps glyph names written by earlier versions of the data
// format to their semantic tag.
var legacyGlyphs = map[string]IconTag{
	"activity":      IconGeneric,
	"tag":           IconGeneric,
	"bed":           IconSleep,
	"sun":           IconMorning,
	"dumbbell":      IconExercise,
	"salad":         IconDiet,
	"droplets":      IconHydration,
	"moon":          IconMindfulness,
	"bookopen":      IconReading,
	"briefcase":     IconWork,
	"zap":           IconCoding,
	"music":         IconMusic,
	"smartphone":    IconMobile,
	"coffee":        IconCoffee,
	"utensils":      IconFood,
	"car":           IconTransport,
	"shoppingbag":   IconShopping,
	"receipt":       IconBill,
	"creditcard":    IconSubscription,
	"shoppingcart":  IconGrocery,
	"film":          IconEntertainment,
	"wifi":          IconConnectivity,
	"home":          IconResidence,
	"graduationcap": IconEducation,
	"plane":         IconTravel,
	"heart":         IconHealth,
}

// ParseIconTag normalises a stored icon value. Empty input yields an empty
// tag (absent), unknown values yield IconGeneric.
func ParseIconTag(s string) IconTag {
	if s == "" {
		return ""
	}
	if _, ok := knownTags[IconTag(s)]; ok {
		return IconTag(s)
	}
	if tag, ok := legacyGlyphs[strings.ToLower(s)]; ok {
		return tag
	}
	return IconGeneric
}

// IsGeneric reports whether the tag carries no specific meaning.
func (t IconTag) IsGeneric() bool {
	return t == "" || t == IconGeneric
}

func (t *IconTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseIconTag(s)
	return nil
}
