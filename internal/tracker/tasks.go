package tracker

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/utils"
)

// TaskUpdate holds the fields to change on a task. Nil fields are kept.
type TaskUpdate struct {
	Text     *string
	Priority *models.Priority
	DueDate  *string
}

func (s *Service) Tasks() []models.Task {
	return s.store.GetTodos()
}

// AddTask prepends a new open task. dueDate may be empty.
func (s *Service) AddTask(text string, priority models.Priority, dueDate string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, ErrEmptyText
	}
	if dueDate != "" && !utils.ValidateDate(dueDate) {
		return models.Task{}, fmt.Errorf("%w: %s", ErrInvalidDate, dueDate)
	}
	if priority == "" {
		priority = models.PriorityLow
	}

	todos := s.store.GetTodos()
	task := models.Task{
		ID:        s.ids.Next(taskIDs(todos)...),
		Text:      text,
		Priority:  priority,
		DueDate:   dueDate,
		CreatedAt: s.now(),
	}

	s.store.SetTodos(append([]models.Task{task}, todos...))
	return task, nil
}

// ToggleTask flips the completion state of a task.
func (s *Service) ToggleTask(id int64) (models.Task, error) {
	return s.updateTask(id, func(t *models.Task) {
		t.SetCompleted(!t.Completed, s.now())
	})
}

// EditTask applies upd to a task. The text is stored as given.
func (s *Service) EditTask(id int64, upd TaskUpdate) (models.Task, error) {
	if upd.DueDate != nil && *upd.DueDate != "" && !utils.ValidateDate(*upd.DueDate) {
		return models.Task{}, fmt.Errorf("%w: %s", ErrInvalidDate, *upd.DueDate)
	}

	return s.updateTask(id, func(t *models.Task) {
		if upd.Text != nil {
			t.Text = *upd.Text
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		if upd.DueDate != nil {
			t.DueDate = *upd.DueDate
		}
	})
}

func (s *Service) DeleteTask(id int64) error {
	todos := s.store.GetTodos()
	kept := make([]models.Task, 0, len(todos))
	for _, t := range todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(todos) {
		return fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	s.store.SetTodos(kept)
	return nil
}

func (s *Service) updateTask(id int64, fn func(*models.Task)) (models.Task, error) {
	todos := s.store.GetTodos()
	for i := range todos {
		if todos[i].ID == id {
			fn(&todos[i])
			s.store.SetTodos(todos)
			return todos[i], nil
		}
	}
	return models.Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
}

func taskIDs(todos []models.Task) []int64 {
	out := make([]int64, len(todos))
	for i, t := range todos {
		out[i] = t.ID
	}
	return out
}
