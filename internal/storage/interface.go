package storage

import "github.com/julianstephens/lifetrack/internal/models"

// Provider is the typed collection contract. Getters never fail: they
// return the collection default when nothing usable is stored. Setters
// never fail either; write problems are logged.
type Provider interface {
	// Tasks
	GetTodos() []models.Task
	SetTodos([]models.Task)

	// Habit log
	GetHabits() models.HabitLog
	SetHabits(models.HabitLog)

	// Habit configuration
	GetHabitConfig() []models.HabitConfig
	SetHabitConfig([]models.HabitConfig)

	// Expenses
	GetExpenses() []models.Expense
	SetExpenses([]models.Expense)

	// Custom expense categories
	GetCustomCategories() []models.ExpenseCategory
	SetCustomCategories([]models.ExpenseCategory)
}
