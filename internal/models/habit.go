package models

// HabitConfig defines a tracked habit. Order in the collection is display order.
type HabitConfig struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Icon  IconTag `json:"icon,omitempty"`
}

// HabitLog maps a YYYY-MM-DD day to the completion state of each habit id.
// A missing day or habit reads as not completed.
type HabitLog map[string]map[string]bool

// Done reports whether habitID was explicitly marked completed on day.
func (l HabitLog) Done(day, habitID string) bool {
	return l[day][habitID]
}

// Set records the completion state of habitID on day, creating the day lazily.
// A day stored as null is treated like a missing one.
func (l HabitLog) Set(day, habitID string, done bool) {
	entries := l[day]
	if entries == nil {
		entries = make(map[string]bool)
		l[day] = entries
	}
	entries[habitID] = done
}

// DefaultHabitConfig returns the seeded habits used when nothing is stored yet.
func DefaultHabitConfig() []HabitConfig {
	return []HabitConfig{
		{ID: "swalath", Label: "Swalath (5 times)", Icon: IconMindfulness},
		{ID: "workout", Label: "Workout", Icon: IconExercise},
		{ID: "diet", Label: "Diet Consistency", Icon: IconDiet},
		{ID: "sleep", Label: "Good Sleep", Icon: IconSleep},
		{ID: "water", Label: "Drink Water", Icon: IconHydration},
	}
}
