package source

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/gantt/internal/task"
)

// decodeTOML reads a name key and [[tasks]] tables.
func decodeTOML(data []byte) (string, []task.Task, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return "", nil, err
	}
	return doc.Name, doc.Tasks, nil
}
