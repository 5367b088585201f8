package storage

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mesh-intelligence/todols/pkg/types"
)

//go:embed tasks.schema.json
var tasksSchemaJSON string

const tasksSchemaURL = "https://github.com/mesh-intelligence/todols/tasks.schema.json"

// compileTasksSchema compiles the embedded schema once per process.
var compileTasksSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(tasksSchemaURL, strings.NewReader(tasksSchemaJSON)); err != nil {
		return nil, fmt.Errorf("adding schema: %w", err)
	}
	return compiler.Compile(tasksSchemaURL)
})

// Compile-time interface check.
var _ Adapter = (*JSONFile)(nil)

// JSONFile stores the task list as an indented JSON array.
type JSONFile struct {
	path string
}

// NewJSONFile returns an adapter for the JSON file at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the file location.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads and validates the file. See Adapter.Load.
func (f *JSONFile) Load() ([]*types.Task, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	tasks, err := decodeTasks(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return tasks, nil
}

// Save writes the whole list atomically. See Adapter.Save.
func (f *JSONFile) Save(tasks []*types.Task) error {
	data, err := json.MarshalIndent(toRecords(tasks), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding tasks: %w", types.ErrIO, err)
	}
	data = append(data, '\n')
	if err := writeFileAtomic(f.path, data); err != nil {
		return fmt.Errorf("%w: saving %s: %w", types.ErrIO, f.path, err)
	}
	return nil
}

// decodeTasks validates data against the task list schema, then decodes it.
func decodeTasks(data []byte) ([]*types.Task, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	schema, err := compileTasksSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var records []taskJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return fromRecords(records)
}

// schemaError flattens a validation error tree into one line per failing
// leaf, prefixed by its JSON pointer.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var msgs []string
	collectSchemaMessages(&msgs, ve)
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

func collectSchemaMessages(msgs *[]string, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, loc+": "+ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaMessages(msgs, cause)
	}
}
