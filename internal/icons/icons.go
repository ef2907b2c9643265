// Package icons classifies free-text habit and category labels into icon tags.
package icons

import (
	"strings"

	"github.com/julianstephens/lifetrack/internal/models"
)

// rule maps any of its keywords, matched as substrings of a lower-cased
// label, to a tag. Rules are evaluated in table order; the first match wins.
type rule struct {
	tag      models.IconTag
	keywords []string
}

var habitRules = []rule{
	{models.IconSleep, []string{"sleep", "bed", "nap"}},
	{models.IconMorning, []string{"morning", "wake", "early"}},
	{models.IconExercise, []string{"gym", "fitness", "run", "walk", "exercise"}},
	{models.IconDiet, []string{"diet", "eat", "food", "meal", "fruit", "veg"}},
	{models.IconHydration, []string{"water", "drink", "hydrate"}},
	{models.IconMindfulness, []string{"meditat", "mind", "calm", "breathe", "yoga"}},
	{models.IconReading, []string{"read", "book", "study", "learn"}},
	{models.IconWork, []string{"work", "job", "career", "project"}},
	{models.IconCoding, []string{"code", "dev", "program"}},
	{models.IconReading, []string{"journal", "write"}},
	{models.IconMusic, []string{"music", "guitar", "piano"}},
	{models.IconMobile, []string{"phone", "social", "screen"}},
	{models.IconCoffee, []string{"coffee", "caffeine"}},
}

var categoryRules = []rule{
	{models.IconExercise, []string{"gym", "fitness", "workout"}},
	{models.IconBill, []string{"bill", "rent", "electric"}},
	{models.IconSubscription, []string{"sub", "netflix", "spotify", "prime"}},
	{models.IconGrocery, []string{"grocery", "market", "mart", "food"}},
	{models.IconEntertainment, []string{"entertainment", "movie", "cinema", "game"}},
	{models.IconFuel, []string{"fuel", "gas", "petrol", "diesel"}},
	{models.IconConnectivity, []string{"wifi", "net", "data"}},
	{models.IconMobile, []string{"phone", "mobile"}},
	{models.IconResidence, []string{"home", "house"}},
	{models.IconWork, []string{"work", "office"}},
	{models.IconEducation, []string{"study", "course"}},
	{models.IconTravel, []string{"travel", "trip", "flight"}},
	{models.IconGift, []string{"gift", "donation"}},
	{models.IconHealth, []string{"health", "med"}},
}

// InferHabit derives an icon tag for a habit label.
func InferHabit(label string) models.IconTag {
	return infer(habitRules, label)
}

// InferCategory derives an icon tag for an expense category label.
func InferCategory(label string) models.IconTag {
	return infer(categoryRules, label)
}

func infer(rules []rule, label string) models.IconTag {
	n := strings.ToLower(label)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(n, kw) {
				return r.tag
			}
		}
	}
	return models.IconGeneric
}
