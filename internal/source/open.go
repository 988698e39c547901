package source

import (
	"github.com/javiermolinar/gantt/internal/db"
	"github.com/javiermolinar/gantt/internal/task"
)

// Options selects a task source.
type Options struct {
	Path    string
	Format  Format
	Dataset string // sqlite only
}

// Open returns the task.Source for opts. SQLite databases are opened
// immediately; files are read on Load.
func Open(opts Options) (task.Source, error) {
	if opts.Path == "" {
		return nil, ErrNoPath
	}
	format, err := Resolve(opts.Path, opts.Format)
	if err != nil {
		return nil, err
	}
	if format == FormatSQLite {
		store, err := db.New(opts.Path)
		if err != nil {
			return nil, err
		}
		name := opts.Dataset
		if name == "" {
			name = "default"
		}
		return store.Source(name), nil
	}
	return NewFile(opts.Path, format)
}
