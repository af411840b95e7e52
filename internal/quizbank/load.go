package quizbank

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// BankError describes a question record that failed semantic validation,
// i.e. a rule the JSON schema cannot express.
type BankError struct {
	ID     string // ID of the offending record, empty when the record has none
	Reason string
}

func (e *BankError) Error() string {
	if e.ID == "" {
		return "invalid question: " + e.Reason
	}
	return fmt.Sprintf("question %q: %s", e.ID, e.Reason)
}

// Load reads and validates a questions file, returning the indexed bank.
func Load(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	bank, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bank, nil
}

// Parse validates raw JSON against the bank schema, runs the semantic
// checks, and builds the bank.
func Parse(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	if err := checkQuestions(questions); err != nil {
		return nil, err
	}

	return New(questions), nil
}

// checkQuestions enforces the cross-field rules: unique IDs, distinct
// options within a question, and the answer being one of the options.
func checkQuestions(questions []Question) error {
	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]

		if seen[q.ID] {
			return &BankError{ID: q.ID, Reason: "duplicate id"}
		}
		seen[q.ID] = true

		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if opts[o] {
				return &BankError{ID: q.ID, Reason: fmt.Sprintf("duplicate option %q", o)}
			}
			opts[o] = true
		}

		if !opts[q.Answer] {
			return &BankError{ID: q.ID, Reason: fmt.Sprintf("answer %q is not one of the options", q.Answer)}
		}
	}
	return nil
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// compiledBankSchema compiles the bank schema on first use and caches it.
func compiledBankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
	})
	return schema, schemaErr
}
