package settings

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// jsonNode adapts a gjson result to a document.
type jsonNode struct {
	r gjson.Result
}

func (n jsonNode) kind() nodeKind {
	switch {
	case n.r.IsObject():
		return nodeObject
	case n.r.IsArray():
		return nodeList
	default:
		return nodeValue
	}
}

// field prefers an exact match and falls back to the first member whose name
// matches ignoring case.
func (n jsonNode) field(name string) (document, bool) {
	var exact, folded gjson.Result
	var hasExact, hasFolded bool

	n.r.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if k == name {
			exact, hasExact = value, true
			return false
		}
		if !hasFolded && strings.EqualFold(k, name) {
			folded, hasFolded = value, true
		}
		return true
	})

	found := exact
	if !hasExact {
		if !hasFolded {
			return nil, false
		}
		found = folded
	}
	if found.Type == gjson.Null {
		return nil, false
	}
	return jsonNode{r: found}, true
}

func (n jsonNode) text() string {
	return scalarText(n.r)
}

// scalarText keeps numbers as written, so overflow reaches the codec and
// "1.50" stays "1.50". Lists and objects return their raw JSON.
func scalarText(r gjson.Result) string {
	if r.Type == gjson.Number || r.IsObject() || r.IsArray() {
		return r.Raw
	}
	return r.String()
}

func (n jsonNode) list() ([]string, error) {
	elems := n.r.Array()
	items := make([]string, 0, len(elems))
	for i, e := range elems {
		switch {
		case e.Type == gjson.Null:
			return nil, fmt.Errorf("%w at index %d", ErrNullElement, i)
		case e.IsObject() || e.IsArray():
			return nil, fmt.Errorf("%w: element %d is not a scalar", ErrTypeMismatch, i)
		}
		items = append(items, scalarText(e))
	}
	return items, nil
}

const byteOrderMark = "\ufeff"

// DecodeJSON decodes a candidate from JSON text.
//
// Property names match field names case-insensitively and trailing commas are
// tolerated. A missing property and a null property are both absence, while
// "" or [] are present values. JSON numbers, strings and booleans are coerced
// through the field's codec by their text, so an enum accepts "Cow", "cow",
// "0" and 0 alike. Unknown properties are ignored.
//
// A leading UTF-8 byte order mark is skipped. Blank text and a top-level null
// yield a nil candidate and no error.
func (d *Descriptor[T]) DecodeJSON(text string) (*T, error) {
	text = strings.TrimPrefix(text, byteOrderMark)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	text = stripTrailingCommas(text)
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, d.schema.name)
	}

	root := gjson.Parse(text)
	if root.Type == gjson.Null {
		return nil, nil
	}

	v, err := d.schema.bind(jsonNode{r: root}, "")
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

// stripTrailingCommas removes commas that directly precede a closing brace or
// bracket, outside of string literals.
func stripTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inString, escaped := false, false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inString:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
		case c == '"':
			inString = true
		case c == ',':
			j := i + 1
			for j < len(text) && isJSONSpace(text[j]) {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				continue
			}
		}
		b.WriteByte(c)
	}

	return b.String()
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Encode renders v as indented JSON using the descriptor's field names.
// Absent fields are omitted and enums are written by name, so the output
// decodes back to an equal value with [Descriptor.DecodeJSON].
func (d *Descriptor[T]) Encode(v *T) (string, error) {
	if v == nil {
		return "null", nil
	}

	out, err := d.schema.encode(v, "", "{}")
	if err != nil {
		return "", fmt.Errorf("error encoding %s: %w", d.schema.name, err)
	}
	return string(pretty.Pretty([]byte(out))), nil
}

func (s *Schema) encode(obj any, prefix, out string) (string, error) {
	var err error
	for _, f := range s.fields {
		key := joinPath(prefix, f.Name)

		if f.Kind == KindNested {
			child := f.child(obj)
			if child == nil {
				continue
			}
			if out, err = sjson.SetRaw(out, key, "{}"); err != nil {
				return "", err
			}
			if out, err = f.Nested.encode(child, key, out); err != nil {
				return "", err
			}
			continue
		}

		value, ok := f.encode(obj)
		if !ok {
			continue
		}
		if out, err = sjson.Set(out, key, value); err != nil {
			return "", err
		}
	}

	return out, nil
}
