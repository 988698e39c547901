package source

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/gantt/internal/task"
)

// decodeYAML accepts either a document with name and tasks or a bare task list.
func decodeYAML(data []byte) (string, []task.Task, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return "", nil, err
	}
	if len(node.Content) == 0 {
		return "", nil, nil
	}

	if node.Content[0].Kind == yaml.SequenceNode {
		var tasks []task.Task
		if err := node.Content[0].Decode(&tasks); err != nil {
			return "", nil, err
		}
		return "", tasks, nil
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return "", nil, err
	}
	return doc.Name, doc.Tasks, nil
}
