package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidCategory = errors.New("model: invalid item category")

type Category string

const (
	CategoryHealth Category = "Health"
	CategoryStudy  Category = "Study"
	CategoryWork   Category = "Work"
)

// CategoryAll is not a category an item can carry; it is the filter value
// that disables category narrowing.
const CategoryAll = "All"

func Categories() []Category {
	return []Category{CategoryHealth, CategoryStudy, CategoryWork}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryStudy, CategoryWork:
		return true
	default:
		return false
	}
}

// NormalizeCategory coerces unknown categories to Health, the documented
// import fallback.
func NormalizeCategory(raw string) Category {
	c := Category(strings.TrimSpace(raw))
	if c.IsValid() {
		return c
	}
	return CategoryHealth
}

// Item is one tracked routine. Items are global: the same list applies to
// every week, and Days decides which weekdays the item is active on.
type Item struct {
	ID       string
	Name     string
	Category Category
	Desc     string
	Days     Schedule
}

func NewItem(name string, category Category, desc string, days Schedule) Item {
	return Item{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Category: category,
		Desc:     strings.TrimSpace(desc),
		Days:     days,
	}
}

func (it Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return errors.New("model: item id is required")
	}
	if strings.TrimSpace(it.Name) == "" {
		return errors.New("model: item name is required")
	}
	if !it.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, it.Category)
	}
	if it.Days.IsEmpty() {
		return ErrEmptySchedule
	}
	return nil
}

// ScheduledOn reports whether the item is active on the day key.
func (it Item) ScheduledOn(dayKey string) bool {
	index, err := DayIndex(dayKey)
	if err != nil {
		return false
	}
	return it.Days.On(index)
}
