package chart

import "github.com/javiermolinar/gantt/internal/task"

// CategorySet is an ordered, duplicate-free set of status values.
// Order is the first occurrence in the task sequence.
type CategorySet struct {
	values []string
	index  map[string]int
}

// Categories extracts the distinct statuses of tasks in first-seen order.
func Categories(tasks []task.Task) *CategorySet {
	statuses := make([]string, len(tasks))
	for i, t := range tasks {
		statuses[i] = t.Status
	}
	return NewCategorySet(statuses...)
}

// NewCategorySet builds a set from values, dropping repeats.
func NewCategorySet(values ...string) *CategorySet {
	c := &CategorySet{index: make(map[string]int)}
	c.values = distinct(values, c.index)
	return c
}

// Len returns the number of categories.
func (c *CategorySet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Values returns the categories in order.
func (c *CategorySet) Values() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// Index returns the position of status in the set.
func (c *CategorySet) Index(status string) (int, error) {
	if c != nil {
		if i, ok := c.index[status]; ok {
			return i, nil
		}
	}
	return -1, &CategoryNotFoundError{Status: status}
}

// Contains reports whether status is in the set.
func (c *CategorySet) Contains(status string) bool {
	_, err := c.Index(status)
	return err == nil
}

// distinct returns values without repeats, keeping first occurrences,
// and records each kept value's position in index.
func distinct(values []string, index map[string]int) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, seen := index[v]; seen {
			continue
		}
		index[v] = len(out)
		out = append(out, v)
	}
	return out
}
