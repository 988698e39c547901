package task

import "context"

// Source loads an ordered dataset from an external collaborator
// (a task file, a SQLite database, an in-memory fixture).
type Source interface {
	// Load returns the dataset in row order.
	Load(ctx context.Context) (*Dataset, error)

	// Close releases any resources held by the source.
	Close() error
}

// StaticSource serves a fixed list of tasks.
type StaticSource struct {
	Name  string
	Items []Task
}

// Load returns the static tasks as a dataset.
func (s StaticSource) Load(_ context.Context) (*Dataset, error) {
	return NewDataset(s.Name, s.Items)
}

// Close is a no-op.
func (s StaticSource) Close() error { return nil }
