package tracker

import (
	"errors"
	"strings"

	"github.com/sandeepkv93/routined/internal/model"
)

var ErrItemNotFound = errors.New("tracker: item not found")

// AddItem validates and prepends a new routine. A blank name declines the
// add without an error surfaced; an unknown category is coerced to Health.
// The returned bool reports whether anything was added.
func (s *State) AddItem(name string, category model.Category, desc string, days model.Schedule) (model.Item, bool) {
	if strings.TrimSpace(name) == "" {
		return model.Item{}, false
	}
	if !category.IsValid() {
		category = model.CategoryHealth
	}
	if days.IsEmpty() {
		return model.Item{}, false
	}
	it := model.NewItem(name, category, desc, days)
	s.Items = append([]model.Item{it}, s.Items...)
	return it, true
}

// EditItem re-validates every field and applies all of them or none. The
// schedule arrives as text, the user-facing edit contract.
func (s *State) EditItem(id, name string, category model.Category, desc, scheduleText string) error {
	index := s.itemIndex(id)
	if index < 0 {
		return ErrItemNotFound
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errors.New("tracker: item name is required")
	}
	if !category.IsValid() {
		return model.ErrInvalidCategory
	}
	days, err := model.ParseScheduleText(scheduleText)
	if err != nil {
		return err
	}
	it := &s.Items[index]
	it.Name = trimmed
	it.Category = category
	it.Desc = strings.TrimSpace(desc)
	it.Days = days
	return nil
}

// DeleteItem removes the item and cascades: completion entries across all
// weeks and the transient description flag both go with it.
func (s *State) DeleteItem(id string) error {
	index := s.itemIndex(id)
	if index < 0 {
		return ErrItemNotFound
	}
	s.Items = append(s.Items[:index], s.Items[index+1:]...)
	s.Completion.PurgeItem(id)
	delete(s.UI.OpenDesc, id)
	return nil
}

func (s *State) Item(id string) (model.Item, bool) {
	index := s.itemIndex(id)
	if index < 0 {
		return model.Item{}, false
	}
	return s.Items[index], true
}

func (s *State) itemIndex(id string) int {
	for i, it := range s.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// VisibleForDay lists the items scheduled on the day, optionally narrowed
// to one category. The "All" filter disables narrowing.
func (s *State) VisibleForDay(dayKey, categoryFilter string) []model.Item {
	out := make([]model.Item, 0, len(s.Items))
	for _, it := range s.Items {
		if !it.ScheduledOn(dayKey) {
			continue
		}
		if categoryFilter != model.CategoryAll && string(it.Category) != categoryFilter {
			continue
		}
		out = append(out, it)
	}
	return out
}
