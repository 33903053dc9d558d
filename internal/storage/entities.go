package storage

// Settings is the single-row table mirroring the document's top-level
// scalar fields.
type Settings struct {
	Theme     string
	WeekStart string
	Selected  string
}

// Item is one routine row. Days is the schedule's textual form ("All" or a
// comma-joined day list); Position preserves list order.
type Item struct {
	ID       string
	Name     string
	Category string
	Desc     string
	Days     string
	Position int
}

// Completion is one check-off: week bucket, day key, item id.
type Completion struct {
	WeekStart string
	Day       string
	ItemID    string
}

// UIFlag is a persisted transient flag (description expanded).
type UIFlag struct {
	ItemID   string
	OpenDesc bool
}

// Snapshot is the full persisted state. Persistence is whole-document: a
// save replaces everything.
type Snapshot struct {
	Settings    Settings
	Items       []Item
	Completions []Completion
	UIFlags     []UIFlag
}
