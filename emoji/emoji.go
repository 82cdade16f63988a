// Package emoji maps integer class labels to display emoji. It is a
// presentation concern only; the classifier never consumes it.
package emoji

import (
	"fmt"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
)

// defaultSymbols covers the five standard classes.
var defaultSymbols = map[int]string{
	0: "❤️", // heart
	1: "⚾",       // baseball
	2: "\U0001f604",   // smile
	3: "\U0001f61e",   // disappointed
	4: "\U0001f374",   // fork and knife
}

// Mapping resolves class labels to printable emoji.
type Mapping struct {
	symbols map[int]string
}

// Default returns the standard five-class mapping.
func Default() *Mapping {
	symbols := make(map[int]string, len(defaultSymbols))
	for k, v := range defaultSymbols {
		symbols[k] = v
	}
	return &Mapping{symbols: symbols}
}

// LoadFile reads a JSON object of label→emoji overrides, e.g.
// {"0": "🎉", "3": "💤"}, layered over the default mapping.
func LoadFile(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read emoji mapping file: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("emoji mapping file %s is not valid JSON", path)
	}

	m := Default()

	var parseErr error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		label, err := strconv.Atoi(key.String())
		if err != nil {
			parseErr = fmt.Errorf("emoji mapping file %s: label %q is not an integer", path, key.String())
			return false
		}

		m.symbols[label] = value.String()
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return m, nil
}

// Symbol returns the emoji for the label, falling back to the numeric label
// when no symbol is mapped.
func (m *Mapping) Symbol(label int) string {
	if s, ok := m.symbols[label]; ok {
		return s
	}
	return strconv.Itoa(label)
}
