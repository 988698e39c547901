package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset  TEXT NOT NULL DEFAULT 'default',
			position INTEGER NOT NULL,
			label    TEXT NOT NULL CHECK(label <> ''),
			date     TEXT NOT NULL CHECK(date <> ''),
			status   TEXT NOT NULL CHECK(status <> ''),
			type     TEXT,
			meeting  TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_dataset ON tasks(dataset, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tasks table: %w", err)
	}

	return nil
}
