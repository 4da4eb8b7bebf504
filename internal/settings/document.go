package settings

import (
	"strings"
)

type nodeKind int

const (
	nodeValue nodeKind = iota
	nodeList
	nodeObject
)

// document is a decoded source positioned at one value. Both the JSON decoder
// and the environment path mapper produce documents which are then bound to a
// schema by the same code.
type document interface {
	kind() nodeKind
	// field returns the member matching name case-insensitively. Absent and
	// null members are reported as missing.
	field(name string) (document, bool)
	// text returns the raw text of a value, or a printable form of lists and
	// objects for error messages.
	text() string
	list() ([]string, error)
}

// bind builds a candidate of the schema's type from doc. path is the dotted
// field path of doc, empty for the root.
func (s *Schema) bind(doc document, path string) (any, error) {
	if doc.kind() != nodeObject {
		return nil, &CoercionError{Path: pathOrName(path, s.name), Value: doc.text(), Kind: KindNested, Err: ErrTypeMismatch}
	}

	obj := s.newFn()
	for _, f := range s.fields {
		member, ok := doc.field(f.Name)
		if !ok {
			continue
		}

		fieldPath := joinPath(path, f.Name)
		switch f.Kind {
		case KindNested:
			child, err := f.Nested.bind(member, fieldPath)
			if err != nil {
				return nil, err
			}
			f.setChild(obj, child)

		case KindCollection:
			if member.kind() != nodeList {
				return nil, &CoercionError{Path: fieldPath, Value: member.text(), Kind: f.Kind, Err: ErrTypeMismatch}
			}
			items, err := member.list()
			if err != nil {
				return nil, &CoercionError{Path: fieldPath, Value: member.text(), Kind: f.Kind, Err: err}
			}
			if err := f.decode(obj, fieldPath, items); err != nil {
				return nil, err
			}

		default:
			if member.kind() != nodeValue {
				return nil, &CoercionError{Path: fieldPath, Value: member.text(), Kind: f.Kind, Err: ErrTypeMismatch}
			}
			if err := f.decode(obj, fieldPath, []string{member.text()}); err != nil {
				return nil, err
			}
		}
	}

	return obj, nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func pathOrName(path, name string) string {
	if path == "" {
		return name
	}
	return path
}

// envNode is a node of the tree built from flat environment keys.
type envNode struct {
	typ      nodeKind
	value    string
	path     string
	indexed  map[int]string
	items    []string
	children map[string]*envNode
}

func newEnvObject(path string) *envNode {
	return &envNode{typ: nodeObject, path: path, children: make(map[string]*envNode)}
}

func (n *envNode) kind() nodeKind {
	return n.typ
}

func (n *envNode) field(name string) (document, bool) {
	child, ok := n.children[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return child, true
}

func (n *envNode) text() string {
	switch n.typ {
	case nodeList:
		return "[" + strings.Join(n.items, ", ") + "]"
	case nodeObject:
		return n.path
	default:
		return n.value
	}
}

func (n *envNode) list() ([]string, error) {
	return n.items, nil
}
