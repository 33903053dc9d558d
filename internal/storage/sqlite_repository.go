package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

// SaveSnapshot replaces the persisted state wholesale in one transaction:
// every mutation in the app is followed by a full overwriting write.
func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"completions", "ui_flags", "items", "settings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO settings (id, theme, week_start, selected)
		VALUES (1, ?, ?, ?)`,
		snap.Settings.Theme, snap.Settings.WeekStart, snap.Settings.Selected,
	); err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}

	for _, item := range snap.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO items (id, name, category, desc, days, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, item.Name, item.Category, item.Desc, item.Days, item.Position,
		); err != nil {
			return fmt.Errorf("insert item %s: %w", item.ID, err)
		}
	}

	for _, c := range snap.Completions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO completions (week_start, day, item_id)
			VALUES (?, ?, ?)`,
			c.WeekStart, c.Day, c.ItemID,
		); err != nil {
			return fmt.Errorf("insert completion %s/%s: %w", c.WeekStart, c.Day, err)
		}
	}

	for _, f := range snap.UIFlags {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO ui_flags (item_id, open_desc)
			VALUES (?, ?)`,
			f.ItemID, boolInt(f.OpenDesc),
		); err != nil {
			return fmt.Errorf("insert ui flag %s: %w", f.ItemID, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRepository) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	row := r.db.QueryRowContext(ctx, `SELECT theme, week_start, selected FROM settings WHERE id = 1`)
	if err := row.Scan(&snap.Settings.Theme, &snap.Settings.WeekStart, &snap.Settings.Selected); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, ErrNoSnapshot
		}
		return Snapshot{}, fmt.Errorf("load settings: %w", err)
	}

	items, err := r.loadItems(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Items = items

	completions, err := r.loadCompletions(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap.Completions = completions

	flags, err := r.loadUIFlags(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap.UIFlags = flags

	return snap, nil
}

func (r *SQLiteRepository) loadItems(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, desc, days, position
		FROM items ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Desc, &item.Days, &item.Position); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) loadCompletions(ctx context.Context) ([]Completion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT week_start, day, item_id
		FROM completions ORDER BY week_start, day, item_id`)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	defer rows.Close()

	out := make([]Completion, 0)
	for rows.Next() {
		var c Completion
		if err := rows.Scan(&c.WeekStart, &c.Day, &c.ItemID); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) loadUIFlags(ctx context.Context) ([]UIFlag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT item_id, open_desc FROM ui_flags`)
	if err != nil {
		return nil, fmt.Errorf("load ui flags: %w", err)
	}
	defer rows.Close()

	out := make([]UIFlag, 0)
	for rows.Next() {
		var f UIFlag
		var open int
		if err := rows.Scan(&f.ItemID, &open); err != nil {
			return nil, fmt.Errorf("scan ui flag: %w", err)
		}
		f.OpenDesc = open == 1
		out = append(out, f)
	}
	return out, rows.Err()
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
