package planning

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Custom domains are loaded from JSON files. The shape mirrors the Domain
// type: a name plus a list of actions with pre/add/del literal lists.
// Literals appear fully formed (e.g. "Confident(ch1)"); the loader does not
// parameterize them.

const domainSchemaJSON = `{
  "type": "object",
  "required": ["name", "actions"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "actions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "pre": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "add": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "del": {"type": "array", "items": {"type": "string", "minLength": 1}}
        }
      }
    }
  }
}`

var (
	domainSchemaOnce sync.Once
	domainSchema     *jsonschema.Schema
	domainSchemaErr  error
)

func compiledDomainSchema() (*jsonschema.Schema, error) {
	domainSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(domainSchemaJSON), &def); err != nil {
			domainSchemaErr = fmt.Errorf("parse domain schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://domain.json"
		if err := c.AddResource(url, def); err != nil {
			domainSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		domainSchema, domainSchemaErr = c.Compile(url)
	})
	return domainSchema, domainSchemaErr
}

type domainConfig struct {
	Name    string         `json:"name"`
	Actions []actionConfig `json:"actions"`
}

type actionConfig struct {
	Name string   `json:"name"`
	Pre  []string `json:"pre"`
	Add  []string `json:"add"`
	Del  []string `json:"del"`
}

// ParseDomain validates raw JSON against the domain schema and builds a
// Domain from it. Action declaration order in the file is preserved.
func ParseDomain(raw []byte) (*Domain, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledDomainSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("domain config validation failed: %w", err)
	}

	var cfg domainConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode domain config: %w", err)
	}

	actions := make([]Action, 0, len(cfg.Actions))
	for _, a := range cfg.Actions {
		actions = append(actions, NewAction(a.Name, toLiterals(a.Pre), toLiterals(a.Add), toLiterals(a.Del)))
	}
	return NewDomain(cfg.Name, actions)
}

// LoadDomain reads and parses a domain config file.
func LoadDomain(path string) (*Domain, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read domain config: %w", err)
	}
	d, err := ParseDomain(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func toLiterals(ss []string) []Literal {
	out := make([]Literal, len(ss))
	for i, s := range ss {
		out[i] = Literal(s)
	}
	return out
}
