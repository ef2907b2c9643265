package tracker

import "errors"

var (
	ErrEmptyText        = errors.New("task text cannot be empty")
	ErrInvalidDate      = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrHabitNotFound    = errors.New("habit not found")
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrCategoryNotFound = errors.New("category not found")
	ErrBuiltinCategory  = errors.New("built-in categories cannot be deleted")
)
