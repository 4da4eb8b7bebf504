package settings

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

const (
	// Separator is the canonical separator between path segments of a flat key.
	Separator = ":"
	// EnvSeparator is the separator usable in environment variable names,
	// where ':' is not portable. It is normalised to [Separator].
	EnvSeparator = "__"
)

// NormalizeKey rewrites every [EnvSeparator] in key to [Separator].
func NormalizeKey(key string) string {
	return strings.ReplaceAll(key, EnvSeparator, Separator)
}

// FilterPrefix returns the entries of env whose first path segment equals
// section, ignoring case and separator style. An empty section keeps every
// entry.
func FilterPrefix(env map[string]string, section string) map[string]string {
	if section == "" {
		return maps.Clone(env)
	}

	section = NormalizeKey(section)
	filtered := make(map[string]string)
	for key, value := range env {
		first, _, _ := strings.Cut(NormalizeKey(key), Separator)
		if strings.EqualFold(first, section) {
			filtered[key] = value
		}
	}
	return filtered
}

// Shape decodes a candidate from a flat map of delimited keys such as
// "Cheese:Origin:Location" or "Cheese__Flavours__0".
//
// Segments are matched case-insensitively against field names starting at the
// root of T. A collection field takes exactly one decimal index segment and
// its indices must be contiguous from 0. Keys that do not resolve to a leaf
// field are ignored. A collection without indexed keys stays absent: a flat
// map cannot clear a collection.
//
// Shape fails with a [ShapeError] for bad or sparse indices and for two keys
// naming the same leaf, and with a [CoercionError] when a value cannot be
// decoded into its field.
func (d *Descriptor[T]) Shape(env map[string]string) (*T, error) {
	root := newEnvObject("")

	// sorted for deterministic error reporting
	for _, key := range slices.Sorted(maps.Keys(env)) {
		segments := strings.Split(NormalizeKey(key), Separator)
		if err := d.schema.place(root, segments, key, env[key]); err != nil {
			return nil, err
		}
	}

	if err := root.seal(); err != nil {
		return nil, err
	}

	v, err := d.schema.bind(root, "")
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

func (s *Schema) place(n *envNode, segments []string, key, value string) error {
	f, ok := s.Lookup(segments[0])
	if !ok {
		return nil
	}

	name := strings.ToLower(f.Name)
	path := f.Name
	if n.path != "" {
		path = n.path + Separator + f.Name
	}
	rest := segments[1:]

	switch f.Kind {
	case KindNested:
		if len(rest) == 0 {
			return nil
		}
		child, existed := n.children[name]
		if !existed {
			child = newEnvObject(path)
		}
		if err := f.Nested.place(child, rest, key, value); err != nil {
			return err
		}
		if !existed && len(child.children) > 0 {
			n.children[name] = child
		}

	case KindCollection:
		if len(rest) != 1 {
			return nil
		}
		index, err := strconv.ParseUint(rest[0], 10, 31)
		if err != nil {
			return &ShapeError{Key: key, Err: ErrInvalidIndex}
		}
		list, ok := n.children[name]
		if !ok {
			list = &envNode{typ: nodeList, path: path, indexed: make(map[int]string)}
			n.children[name] = list
		}
		if _, dup := list.indexed[int(index)]; dup {
			return &ShapeError{Key: key, Err: ErrConflictingKeys}
		}
		list.indexed[int(index)] = value

	default:
		if len(rest) != 0 {
			return nil
		}
		if _, dup := n.children[name]; dup {
			return &ShapeError{Key: key, Err: ErrConflictingKeys}
		}
		n.children[name] = &envNode{typ: nodeValue, path: path, value: value}
	}

	return nil
}

// seal turns the indexed entries of every collection into ordered items.
func (n *envNode) seal() error {
	switch n.typ {
	case nodeObject:
		for _, name := range slices.Sorted(maps.Keys(n.children)) {
			if err := n.children[name].seal(); err != nil {
				return err
			}
		}

	case nodeList:
		indices := slices.Sorted(maps.Keys(n.indexed))
		n.items = make([]string, 0, len(indices))
		for i, index := range indices {
			if index != i {
				return &ShapeError{Key: n.path, Err: ErrSparseCollection}
			}
			n.items = append(n.items, n.indexed[index])
		}
	}

	return nil
}
