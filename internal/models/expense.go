package models

import "time"

type Expense struct {
	ID       int64     `json:"id"`
	Amount   float64   `json:"amount"`
	Desc     string    `json:"desc"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// ExpenseCategory is either a built-in category or a user-created one.
// Icon is never persisted; custom categories re-derive it from IconName.
type ExpenseCategory struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Color    string  `json:"color"`
	Icon     IconTag `json:"-"`
	IconName string  `json:"iconName,omitempty"`
	IsCustom bool    `json:"isCustom,omitempty"`
}

// BuiltinCategories returns the fixed, ordered set of built-in categories.
func BuiltinCategories() []ExpenseCategory {
	return []ExpenseCategory{
		{ID: "food", Label: "Food", Color: "#FF9F0A", Icon: IconFood},
		{ID: "transport", Label: "Transport", Color: "#0A84FF", Icon: IconTransport},
		{ID: "shopping", Label: "Shopping", Color: "#BF5AF2", Icon: IconShopping},
		{ID: "bills", Label: "Bills", Color: "#FF453A", Icon: IconBill},
		{ID: "other", Label: "Misc", Color: "#8E8E93", Icon: IconGeneric},
	}
}

// EffectiveCategories returns the built-in categories followed by custom.
func EffectiveCategories(custom []ExpenseCategory) []ExpenseCategory {
	builtin := BuiltinCategories()
	all := make([]ExpenseCategory, 0, len(builtin)+len(custom))
	all = append(all, builtin...)
	return append(all, custom...)
}

// FindCategory looks up a category by id in cats.
func FindCategory(cats []ExpenseCategory, id string) (ExpenseCategory, bool) {
	for _, c := range cats {
		if c.ID == id {
			return c, true
		}
	}
	return ExpenseCategory{}, false
}
