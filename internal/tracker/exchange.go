package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/routined/internal/model"
)

var (
	ErrImportNotObject        = errors.New("tracker: import is not a JSON object")
	ErrImportMissingItems     = errors.New("tracker: import is missing the items array")
	ErrImportMissingCompleted = errors.New("tracker: import is missing the completion object")
)

// Document is the interchange shape for export files. Export must
// round-trip through Import unchanged.
type Document struct {
	Theme        string                                `json:"theme"`
	WeekStartISO string                                `json:"weekStartISO"`
	SelectedISO  string                                `json:"selectedISO"`
	Items        []DocumentItem                        `json:"items"`
	Completion   map[string]map[string]map[string]bool `json:"completion"`
	UI           DocumentUI                            `json:"ui"`
}

type DocumentItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Desc     string   `json:"desc"`
	Days     *[7]bool `json:"days,omitempty"`
}

type DocumentUI struct {
	OpenDescByItemID map[string]bool `json:"openDescByItemId"`
}

// Export serializes the whole state as one document.
func Export(s State) ([]byte, error) {
	doc := Document{
		Theme:        string(s.Theme),
		WeekStartISO: s.WeekStart,
		SelectedISO:  s.Selected,
		Items:        make([]DocumentItem, 0, len(s.Items)),
		Completion:   s.Completion.Clone(),
		UI:           DocumentUI{OpenDescByItemID: make(map[string]bool)},
	}
	for _, it := range s.Items {
		days := [7]bool(it.Days)
		doc.Items = append(doc.Items, DocumentItem{
			ID:       it.ID,
			Name:     it.Name,
			Category: string(it.Category),
			Desc:     it.Desc,
			Days:     &days,
		})
	}
	for id, open := range s.UI.OpenDesc {
		if open {
			doc.UI.OpenDescByItemID[id] = true
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import validates and assembles a complete replacement state from raw
// JSON. Nothing is applied on failure: the caller swaps the returned state
// in atomically only when err is nil. Required fields are items and
// completion; everything else is normalized with the documented defaults.
func Import(raw []byte, now time.Time) (State, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrImportNotObject, err)
	}
	if _, ok := probe["items"]; !ok {
		return State{}, ErrImportMissingItems
	}
	if _, ok := probe["completion"]; !ok {
		return State{}, ErrImportMissingCompleted
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return State{}, fmt.Errorf("tracker: malformed import document: %w", err)
	}
	if doc.Items == nil {
		return State{}, ErrImportMissingItems
	}
	if doc.Completion == nil {
		return State{}, ErrImportMissingCompleted
	}

	next := State{
		Theme:      NormalizeTheme(doc.Theme),
		Items:      make([]model.Item, 0, len(doc.Items)),
		Completion: make(CompletionLog, len(doc.Completion)),
		UI:         NewUIState(),
	}

	ws, err := model.ParseDayKey(doc.WeekStartISO)
	if err != nil {
		ws = now
	}
	next.WeekStart = model.DayKey(model.StartOfWeek(ws))
	next.Selected = next.WeekStart
	if sel, err := model.ParseDayKey(doc.SelectedISO); err == nil {
		next.Selected = model.DayKey(sel)
	}
	next.SetWeekStart(ws)

	for _, di := range doc.Items {
		it := model.Item{
			ID:       strings.TrimSpace(di.ID),
			Name:     strings.TrimSpace(di.Name),
			Category: model.NormalizeCategory(di.Category),
			Desc:     di.Desc,
			Days:     model.EveryDay(),
		}
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		if it.Name == "" {
			it.Name = "Untitled"
		}
		// Pre-schedule documents carry no days; those items run every day.
		if di.Days != nil {
			days := model.Schedule(*di.Days)
			if !days.IsEmpty() {
				it.Days = days
			}
		}
		next.Items = append(next.Items, it)
	}

	for weekKey, week := range doc.Completion {
		for dayKey, day := range week {
			for itemID, done := range day {
				if done {
					next.Completion.SetDone(dayKey, itemID, true)
				}
			}
		}
		// Keep empty week buckets as containers, the way the page did.
		if _, ok := next.Completion[weekKey]; !ok {
			if _, err := model.ParseDayKey(weekKey); err == nil {
				next.Completion[weekKey] = make(map[string]map[string]bool)
			}
		}
	}

	for id, open := range doc.UI.OpenDescByItemID {
		if open {
			next.UI.OpenDesc[id] = true
		}
	}
	return next, nil
}
