package bril

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// Load reads the file at path and validates it as a Bril program.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	return Parse(path, data)
}

// Parse validates data as a Bril program. path is only used in error
// messages. The first violation in document order is reported.
func Parse(path string, data []byte) (*Program, error) {
	if i := invalidUTF8(data); i >= 0 {
		line, col := position(data, int64(i)+1)
		return nil, syntaxError(path, line, col, fmt.Errorf("invalid UTF-8 byte 0x%02x", data[i]))
	}

	// Unmarshal into a RawMessage only scans the input, so every syntax
	// error, trailing data included, comes back with its byte offset.
	if err := json.Unmarshal(data, new(json.RawMessage)); err != nil {
		offset := int64(len(data))
		var serr *json.SyntaxError
		if errors.As(err, &serr) {
			offset = serr.Offset
		}
		line, col := position(data, offset)
		return nil, syntaxError(path, line, col, err)
	}

	// Numbers stay json.Number so values outside the float64 range, and
	// integers beyond 2^53, survive unchanged.
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		line, col := position(data, dec.InputOffset())
		return nil, syntaxError(path, line, col, err)
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		line, col := position(data, dec.InputOffset()+1)
		return nil, syntaxError(path, line, col, errors.New("unexpected data after top-level value"))
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil, schemaError(path, -1, "expected top-level JSON object in %s, got %s", path, typeName(doc))
	}

	list, ok := root["functions"].([]any)
	if !ok {
		return nil, schemaError(path, -1, "expected 'functions' to be a list in %s", path)
	}

	p := &Program{
		Functions: make([]Function, 0, len(list)),
		raw:       root,
	}
	for i, v := range list {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, schemaError(path, i, "expected functions[%d] to be an object in %s, got %s", i, path, typeName(v))
		}
		name, ok := obj["name"].(string)
		if !ok {
			return nil, schemaError(path, i, "expected functions[%d]['name'] to be a string in %s", i, path)
		}
		instrs, ok := obj["instrs"].([]any)
		if !ok {
			return nil, schemaError(path, i, "expected functions[%d]['instrs'] to be a list in %s", i, path)
		}
		p.Functions = append(p.Functions, Function{
			Name:   name,
			Instrs: instrs,
			Raw:    obj,
		})
	}
	return p, nil
}

// position converts the decoder's byte offset into a 1-based line and
// column pointing at the offending byte.
func position(data []byte, offset int64) (line, col int) {
	pos := int(offset) - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(data) {
		pos = len(data)
	}
	before := data[:pos]
	line = 1 + bytes.Count(before, []byte{'\n'})
	col = pos - bytes.LastIndexByte(before, '\n')
	return line, col
}

// invalidUTF8 returns the index of the first byte that is not part of a
// valid UTF-8 sequence, or -1.
func invalidUTF8(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unknown"
	}
}
