package tracker

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/analytics"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/icons"
	"github.com/julianstephens/lifetrack/internal/models"
)

func (s *Service) Expenses() []models.Expense {
	return s.store.GetExpenses()
}

// AddExpense records a new expense dated now and prepends it.
func (s *Service) AddExpense(amount, category string) (models.Expense, error) {
	v, err := models.ParseAmount(amount)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %q", err, amount)
	}
	if err := s.checkCategory(category); err != nil {
		return models.Expense{}, err
	}

	expenses := s.store.GetExpenses()
	e := models.Expense{
		ID:       s.ids.Next(expenseIDs(expenses)...),
		Amount:   v,
		Desc:     constants.DefaultExpenseDesc,
		Category: category,
		Date:     s.now(),
	}

	s.store.SetExpenses(append([]models.Expense{e}, expenses...))
	return e, nil
}

// EditExpense changes the amount and category of an expense. Its
// description and date are kept.
func (s *Service) EditExpense(id int64, amount, category string) (models.Expense, error) {
	v, err := models.ParseAmount(amount)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: %q", err, amount)
	}
	if err := s.checkCategory(category); err != nil {
		return models.Expense{}, err
	}

	expenses := s.store.GetExpenses()
	for i := range expenses {
		if expenses[i].ID == id {
			expenses[i].Amount = v
			expenses[i].Category = category
			s.store.SetExpenses(expenses)
			return expenses[i], nil
		}
	}
	return models.Expense{}, fmt.Errorf("%w: %d", ErrExpenseNotFound, id)
}

func (s *Service) DeleteExpense(id int64) error {
	expenses := s.store.GetExpenses()
	kept := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		return fmt.Errorf("%w: %d", ErrExpenseNotFound, id)
	}

	s.store.SetExpenses(kept)
	return nil
}

// Categories returns the effective category list with custom icons re-derived.
func (s *Service) Categories() []models.ExpenseCategory {
	custom := analytics.RehydrateCategories(s.store.GetCustomCategories())
	return models.EffectiveCategories(custom)
}

// AddCategory appends a custom category named name.
func (s *Service) AddCategory(name string) (models.ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ExpenseCategory{}, ErrEmptyName
	}

	custom := s.store.GetCustomCategories()
	taken := make([]string, 0, len(custom))
	for _, c := range models.EffectiveCategories(custom) {
		taken = append(taken, c.ID)
	}

	c := models.ExpenseCategory{
		ID:       s.ids.NextString(constants.CustomCategoryIDPrefix, taken),
		Label:    name,
		Color:    constants.CustomCategoryColor,
		IconName: name,
		IsCustom: true,
	}

	s.store.SetCustomCategories(append(custom, c))
	c.Icon = icons.InferCategory(name)
	return c, nil
}

// DeleteCategory removes a custom category. Expenses referencing it are kept.
func (s *Service) DeleteCategory(id string) error {
	if _, ok := models.FindCategory(models.BuiltinCategories(), id); ok {
		return fmt.Errorf("%w: %s", ErrBuiltinCategory, id)
	}

	custom := s.store.GetCustomCategories()
	kept := make([]models.ExpenseCategory, 0, len(custom))
	for _, c := range custom {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(custom) {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, id)
	}

	s.store.SetCustomCategories(kept)
	return nil
}

func (s *Service) checkCategory(id string) error {
	if _, ok := models.FindCategory(s.Categories(), id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, id)
	}
	return nil
}

func expenseIDs(expenses []models.Expense) []int64 {
	out := make([]int64, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}
