// Package db provides a SQLite task source.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/gantt/internal/task"
)

// Lookup errors.
var (
	ErrDatabaseNotFound = errors.New("database not found")
	ErrDatasetNotFound  = errors.New("dataset not found")
)

// SQLite reads task datasets from a SQLite database.
type SQLite struct {
	db *sql.DB
}

// New opens an existing database and makes sure the schema exists.
// A missing file is an error so a mistyped path never creates one.
func New(path string) (*SQLite, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
		}
		return nil, fmt.Errorf("checking database: %w", err)
	}
	return open(path)
}

// Create opens the database at path, creating the file if needed.
func Create(path string) (*SQLite, error) {
	return open(path)
}

func open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Datasets lists the dataset names in alphabetical order.
func (s *SQLite) Datasets(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT dataset FROM tasks ORDER BY dataset`)
	if err != nil {
		return nil, fmt.Errorf("querying datasets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning dataset: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating datasets: %w", err)
	}
	return names, nil
}

// Dataset returns the tasks of one dataset ordered by position. An empty
// database yields an empty dataset; an unknown name in a populated one is
// ErrDatasetNotFound.
func (s *SQLite) Dataset(ctx context.Context, name string) (*task.Dataset, error) {
	query := `
		SELECT label, date, status, type, meeting
		FROM tasks
		WHERE dataset = ?
		ORDER BY position, id
	`

	rows, err := s.db.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []task.Task
	for rows.Next() {
		var (
			t       task.Task
			typ     sql.NullString
			meeting sql.NullString
		)
		if err := rows.Scan(&t.Label, &t.Date, &t.Status, &typ, &meeting); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Type = typ.String
		t.Meeting = meeting.String
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	if len(tasks) == 0 {
		names, err := s.Datasets(ctx)
		if err != nil {
			return nil, err
		}
		// A database without any rows is an empty chart, not a lookup miss.
		if len(names) > 0 {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrDatasetNotFound, name, strings.Join(names, ", "))
		}
	}
	return task.NewDataset(name, tasks)
}

// Source returns a task.Source for one dataset. Closing the source
// closes the database.
func (s *SQLite) Source(name string) task.Source {
	return &datasetSource{db: s, name: name}
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type datasetSource struct {
	db   *SQLite
	name string
}

func (d *datasetSource) Load(ctx context.Context) (*task.Dataset, error) {
	return d.db.Dataset(ctx, d.name)
}

func (d *datasetSource) Close() error {
	return d.db.Close()
}
