package tracker

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/analytics"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

var fixedNow = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

func setupTestService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryMedium())
	return New(store, func() time.Time { return fixedNow }), store
}

func TestAddTask(t *testing.T) {
	svc, store := setupTestService(t)

	first, err := svc.AddTask("Write report", "", "")
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	second, err := svc.AddTask("  Call mom  ", models.PriorityHigh, "2024-01-05")
	if err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	if first.Priority != models.PriorityLow {
		t.Errorf("expected default priority low, got %q", first.Priority)
	}
	if second.ID <= first.ID {
		t.Errorf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
	if second.Text != "Call mom" {
		t.Errorf("expected trimmed text, got %q", second.Text)
	}

	todos := store.GetTodos()
	if len(todos) != 2 || todos[0].ID != second.ID {
		t.Errorf("expected newest task first, got %+v", todos)
	}
	if todos[0].Completed || todos[0].CompletedAt != nil {
		t.Error("new task must be open")
	}
}

func TestAddTaskValidation(t *testing.T) {
	svc, store := setupTestService(t)

	if _, err := svc.AddTask("   ", "", ""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
	if _, err := svc.AddTask("Pay rent", "", "next friday"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if len(store.GetTodos()) != 0 {
		t.Error("rejected tasks must not be stored")
	}
}

func TestToggleTask(t *testing.T) {
	svc, store := setupTestService(t)
	task, _ := svc.AddTask("Stretch", "", "")

	done, err := svc.ToggleTask(task.ID)
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil || !done.CompletedAt.Equal(fixedNow) {
		t.Errorf("expected completed at %v, got %+v", fixedNow, done)
	}

	undone, _ := svc.ToggleTask(task.ID)
	if undone.Completed || undone.CompletedAt != nil {
		t.Errorf("expected task reopened, got %+v", undone)
	}

	stored := store.GetTodos()[0]
	if stored.Completed != (stored.CompletedAt != nil) {
		t.Error("stored task breaks completion invariant")
	}

	if _, err := svc.ToggleTask(42); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestEditAndDeleteTask(t *testing.T) {
	svc, store := setupTestService(t)
	task, _ := svc.AddTask("Draft", "", "")

	text := "Final draft"
	prio := models.PriorityMedium
	edited, err := svc.EditTask(task.ID, TaskUpdate{Text: &text, Priority: &prio})
	if err != nil {
		t.Fatalf("failed to edit: %v", err)
	}
	if edited.Text != text || edited.Priority != prio || edited.DueDate != "" {
		t.Errorf("unexpected edited task %+v", edited)
	}

	bad := "soon"
	if _, err := svc.EditTask(task.ID, TaskUpdate{DueDate: &bad}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}

	if err := svc.DeleteTask(task.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if len(store.GetTodos()) != 0 {
		t.Error("expected no tasks after delete")
	}
	if err := svc.DeleteTask(task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestAddRenameDeleteHabit(t *testing.T) {
	svc, store := setupTestService(t)

	h, err := svc.AddHabit("Morning Run")
	if err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	if !strings.HasPrefix(h.ID, "habit-") {
		t.Errorf("expected habit- prefix, got %s", h.ID)
	}
	if h.Icon != models.IconMorning {
		t.Errorf("expected morning icon, got %q", h.Icon)
	}

	cfg := store.GetHabitConfig()
	if len(cfg) != 6 || cfg[5].ID != h.ID {
		t.Fatalf("expected habit appended after defaults, got %d entries", len(cfg))
	}

	renamed, err := svc.RenameHabit(h.ID, "Read a book")
	if err != nil {
		t.Fatalf("failed to rename: %v", err)
	}
	if renamed.Icon != models.IconReading || renamed.ID != h.ID {
		t.Errorf("unexpected renamed habit %+v", renamed)
	}
	if store.GetHabitConfig()[5].Label != "Read a book" {
		t.Error("rename did not keep position")
	}

	if _, err := svc.AddHabit(" "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if _, err := svc.RenameHabit("nope", "x"); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}

	if err := svc.DeleteHabit("water"); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}
	cfg = store.GetHabitConfig()
	if len(cfg) != 5 {
		t.Fatalf("expected 5 habits after delete, got %d", len(cfg))
	}
	for _, c := range cfg {
		if c.ID == "water" {
			t.Error("water should be gone")
		}
	}
}

func TestToggleHabitAndOrphans(t *testing.T) {
	svc, store := setupTestService(t)

	done, err := svc.ToggleHabit("water", fixedNow)
	if err != nil {
		t.Fatalf("failed to toggle habit: %v", err)
	}
	if !done || !store.GetHabits().Done("2024-01-02", "water") {
		t.Error("expected water done today")
	}

	done, _ = svc.ToggleHabit("water", fixedNow)
	if done || store.GetHabits().Done("2024-01-02", "water") {
		t.Error("expected water undone after second toggle")
	}

	if _, err := svc.ToggleHabit("ghost", fixedNow); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}

	svc.ToggleHabit("sleep", fixedNow)
	if err := svc.DeleteHabit("sleep"); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}
	// Log entries survive deletion
	if !store.GetHabits().Done("2024-01-02", "sleep") {
		t.Error("deleting a habit must not purge its log")
	}
	if orphans := svc.OrphanedHabitIDs(); len(orphans) != 1 || orphans[0] != "sleep" {
		t.Errorf("expected sleep orphaned, got %v", orphans)
	}
}

func TestToggleHabitOnNullDay(t *testing.T) {
	medium := storage.NewMemoryMedium()
	store := storage.NewStore(medium)
	svc := New(store, func() time.Time { return fixedNow })
	if err := medium.SetItem(store.Key(constants.KeyHabits), `{"2024-01-02":null,"2024-01-01":{"water":true}}`); err != nil {
		t.Fatalf("failed to seed habit log: %v", err)
	}

	done, err := svc.ToggleHabit("water", fixedNow)
	if err != nil {
		t.Fatalf("failed to toggle habit: %v", err)
	}
	log := store.GetHabits()
	if !done || !log.Done("2024-01-02", "water") {
		t.Error("expected water done on the null day")
	}
	if !log.Done("2024-01-01", "water") {
		t.Error("other days must be preserved")
	}
}

func TestHabitsHealOnRead(t *testing.T) {
	svc, store := setupTestService(t)
	store.SetHabitConfig([]models.HabitConfig{{ID: "x", Label: "Drink more water"}})

	cfg := svc.Habits()
	if cfg[0].Icon != models.IconHydration {
		t.Errorf("expected hydration, got %q", cfg[0].Icon)
	}
	if store.GetHabitConfig()[0].Icon != models.IconHydration {
		t.Error("healed config not persisted")
	}
}

func TestAddExpense(t *testing.T) {
	svc, store := setupTestService(t)

	e, err := svc.AddExpense("12,50", "food")
	if err != nil {
		t.Fatalf("failed to add expense: %v", err)
	}
	if e.Amount != 12.5 || e.Desc != "Expense" || !e.Date.Equal(fixedNow) {
		t.Errorf("unexpected expense %+v", e)
	}

	tests := []struct {
		amount   string
		category string
		want     error
	}{
		{"", "food", models.ErrInvalidAmount},
		{"abc", "food", models.ErrInvalidAmount},
		{"-3", "food", models.ErrInvalidAmount},
		{"NaN", "food", models.ErrInvalidAmount},
		{"1,000", "food", models.ErrInvalidAmount},
		{"5", "custom-missing", ErrUnknownCategory},
	}
	for _, tt := range tests {
		if _, err := svc.AddExpense(tt.amount, tt.category); !errors.Is(err, tt.want) {
			t.Errorf("AddExpense(%q, %q) error = %v, want %v", tt.amount, tt.category, err, tt.want)
		}
	}

	if _, err := svc.AddExpense("0", "other"); err != nil {
		t.Errorf("zero amount should be accepted: %v", err)
	}
	if got := len(store.GetExpenses()); got != 2 {
		t.Errorf("expected 2 stored expenses, got %d", got)
	}
}

func TestEditAndDeleteExpense(t *testing.T) {
	svc, store := setupTestService(t)
	e, _ := svc.AddExpense("10", "food")

	edited, err := svc.EditExpense(e.ID, "25", "bills")
	if err != nil {
		t.Fatalf("failed to edit expense: %v", err)
	}
	if edited.Amount != 25 || edited.Category != "bills" {
		t.Errorf("unexpected edit result %+v", edited)
	}
	if edited.Desc != e.Desc || !edited.Date.Equal(e.Date) {
		t.Error("desc and date must be preserved on edit")
	}

	if _, err := svc.EditExpense(999, "1", "food"); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound, got %v", err)
	}

	if err := svc.DeleteExpense(e.ID); err != nil {
		t.Fatalf("failed to delete expense: %v", err)
	}
	if len(store.GetExpenses()) != 0 {
		t.Error("expected no expenses after delete")
	}
}

func TestCustomCategories(t *testing.T) {
	svc, store := setupTestService(t)

	c, err := svc.AddCategory("Netflix")
	if err != nil {
		t.Fatalf("failed to add category: %v", err)
	}
	if !strings.HasPrefix(c.ID, "custom-") || c.Color != "#DEF254" || !c.IsCustom {
		t.Errorf("unexpected category %+v", c)
	}
	if c.Icon != models.IconSubscription {
		t.Errorf("expected subscription icon, got %q", c.Icon)
	}

	cats := svc.Categories()
	if len(cats) != 6 || cats[5].Icon != models.IconSubscription {
		t.Fatalf("expected rehydrated custom category last, got %+v", cats)
	}

	if _, err := svc.AddExpense("15", c.ID); err != nil {
		t.Fatalf("failed to add expense in custom category: %v", err)
	}

	if err := svc.DeleteCategory("food"); !errors.Is(err, ErrBuiltinCategory) {
		t.Errorf("expected ErrBuiltinCategory, got %v", err)
	}
	if err := svc.DeleteCategory(c.ID); err != nil {
		t.Fatalf("failed to delete category: %v", err)
	}
	if err := svc.DeleteCategory(c.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}

	// The expense remains and still counts toward the total
	if len(store.GetExpenses()) != 1 {
		t.Error("deleting a category must keep its expenses")
	}
	stats := svc.ExpenseStats(analytics.PeriodDay)
	if stats.Total != 15 || len(stats.Breakdown.NonZero()) != 0 {
		t.Errorf("unexpected stats after category delete: %+v", stats)
	}
}

func TestUnavailableStoreDegrades(t *testing.T) {
	svc := New(storage.NewStore(nil), func() time.Time { return fixedNow })

	if _, err := svc.AddTask("Nothing persists", "", ""); err != nil {
		t.Fatalf("add should still succeed: %v", err)
	}
	if len(svc.Tasks()) != 0 {
		t.Error("expected no tasks without a medium")
	}
	if len(svc.Habits()) != 5 {
		t.Error("expected default habits without a medium")
	}
}
