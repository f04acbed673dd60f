package seeder

import (
	"bytes"
	"encoding/json"
)

// JSON encodes v for a text column, keeping non-ASCII characters readable.
func JSON(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Maybe returns value() with probability present and nil otherwise. value
// is only evaluated when present.
func (g *GenerationContext) Maybe(present float64, value func() interface{}) interface{} {
	if g.Chance(present) {
		return value()
	}
	return nil
}
