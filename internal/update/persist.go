package update

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/routined/internal/model"
	"github.com/sandeepkv93/routined/internal/storage"
	"github.com/sandeepkv93/routined/internal/tracker"
)

// SnapshotFromState flattens the in-memory state into storage rows.
func SnapshotFromState(s tracker.State) storage.Snapshot {
	snap := storage.Snapshot{
		Settings: storage.Settings{
			Theme:     string(s.Theme),
			WeekStart: s.WeekStart,
			Selected:  s.Selected,
		},
	}
	for i, it := range s.Items {
		snap.Items = append(snap.Items, storage.Item{
			ID:       it.ID,
			Name:     it.Name,
			Category: string(it.Category),
			Desc:     it.Desc,
			Days:     it.Days.Text(),
			Position: i,
		})
	}
	for weekKey, days := range s.Completion {
		for dayKey, byItem := range days {
			for itemID, done := range byItem {
				if !done {
					continue
				}
				snap.Completions = append(snap.Completions, storage.Completion{
					WeekStart: weekKey,
					Day:       dayKey,
					ItemID:    itemID,
				})
			}
		}
	}
	for itemID, open := range s.UI.OpenDesc {
		if !open {
			continue
		}
		snap.UIFlags = append(snap.UIFlags, storage.UIFlag{ItemID: itemID, OpenDesc: true})
	}
	return snap
}

// StateFromSnapshot rebuilds the in-memory state from storage rows. Rows
// with unparsable fields are normalized rather than rejected, mirroring
// the import path.
func StateFromSnapshot(snap storage.Snapshot, now time.Time) tracker.State {
	s := tracker.NewDefaultState(now)
	s.Items = nil
	s.Theme = tracker.NormalizeTheme(snap.Settings.Theme)

	if start, err := model.ParseDayKey(snap.Settings.WeekStart); err == nil {
		s.SetWeekStart(model.StartOfWeek(start))
	}
	if _, err := model.ParseDayKey(snap.Settings.Selected); err == nil {
		_ = s.SetSelectedDay(snap.Settings.Selected)
	}

	for _, row := range snap.Items {
		days, err := model.ParseScheduleText(row.Days)
		if err != nil {
			days = model.EveryDay()
		}
		s.Items = append(s.Items, model.Item{
			ID:       row.ID,
			Name:     row.Name,
			Category: model.NormalizeCategory(row.Category),
			Desc:     row.Desc,
			Days:     days,
		})
	}

	for _, row := range snap.Completions {
		s.SetDone(row.Day, row.ItemID, true)
	}
	for _, row := range snap.UIFlags {
		if row.OpenDesc {
			s.UI.OpenDesc[row.ItemID] = true
		}
	}
	return s
}

// persist writes the whole state after a mutation. With no repository
// configured (tests, dry runs) it is a no-op.
func (m *Model) persist() {
	if m.Repo == nil {
		return
	}
	if err := m.Repo.SaveSnapshot(context.Background(), SnapshotFromState(m.State)); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("error: save failed: %v", err), IsError: true}
	}
}
