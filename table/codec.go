package table

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/midbel/cells/formula"
	"github.com/midbel/cells/layout"
)

// document is the serialized form of a table: a single object mapping
// canonical cell addresses to the raw text of each cell.
type document struct {
	Inputs map[string]string `json:"inputs"`
}

// Load decodes a table from its JSON document. Addresses that do not
// decode fail the whole load; cell contents that do not parse as
// formulas degrade to opaque texts, like any other typed input.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data, json.Unmarshal)
}

// LoadFile loads a table document, accepting YAML next to JSON when
// the file carries a .yaml or .yml extension.
func LoadFile(file string) (*Table, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".yaml", ".yml":
		return decode(data, func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	default:
		return decode(data, json.Unmarshal)
	}
}

func decode(data []byte, unmarshal func([]byte, any) error) (*Table, error) {
	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fail to decode table: %w", err)
	}
	t := New()
	for addr, raw := range doc.Inputs {
		pos, err := layout.ParsePosition(addr)
		if err != nil {
			return nil, err
		}
		t.set(pos, raw)
	}
	if err := t.Eval(); err != nil {
		return t, err
	}
	return t, nil
}

// set parses and stores a single cell without triggering a whole
// evaluation pass; loading evaluates once all cells are in. Cells
// whose formula does not parse keep their raw text but take no part
// in evaluation.
func (t *Table) set(pos layout.Position, raw string) {
	if expr, err := formula.Parse(raw); err == nil {
		t.exprs[pos] = expr
	}
	t.inputs[pos] = raw
}

// Store encodes the table back to its JSON document.
func (t *Table) Store(w io.Writer) error {
	doc := document{
		Inputs: make(map[string]string, len(t.inputs)),
	}
	for pos, raw := range t.inputs {
		doc.Inputs[pos.Addr()] = raw
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(doc)
}
