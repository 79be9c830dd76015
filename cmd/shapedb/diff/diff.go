// Package diff computes structural differences between two shape
// descriptions.  It compares structure and metadata, not runtime values.
package diff

import (
	"sort"

	"github.com/shapedb-project/shapedb/cmd/shapedb/shape"
)

type Kind int

const (
	// EqualDiff means the two shapes are structurally equal.
	EqualDiff Kind = 0
	// DifferentDiff means the shapes are incompatible.
	DifferentDiff Kind = 1
	// RecordDiff means both shapes are records and field-level
	// differences are available.
	RecordDiff Kind = 2
	// SequenceDiff means both shapes are sequence containers.
	SequenceDiff Kind = 3
)

// Diff is the difference between two shape definitions.  For RecordDiff,
// the field-level sets are populated; name slices are sorted.
type Diff struct {
	Kind Kind
	From *shape.Shape
	To   *shape.Shape
	// Fields that exist in both records but have different shapes.
	Updates map[string]*Diff
	// Fields present only in From.
	Deletions []string
	// Fields present only in To.
	Insertions []string
	// Fields with no change.
	Unchanged []string
}

func (d *Diff) Equal() bool {
	return d.Kind == EqualDiff
}

// New computes the difference between two shapes.
func New(from, to *shape.Shape) *Diff {
	if shapesEqual(from, to) {
		return &Diff{Kind: EqualDiff, From: from, To: to}
	}
	switch {
	case from.IsRecord() && to.IsRecord():
		return recordDiff(from, to)
	case sequence(from) && sequence(to):
		return &Diff{Kind: SequenceDiff, From: from, To: to}
	default:
		return &Diff{Kind: DifferentDiff, From: from, To: to}
	}
}

func recordDiff(from, to *shape.Shape) *Diff {
	var d = &Diff{
		Kind:    RecordDiff,
		From:    from,
		To:      to,
		Updates: make(map[string]*Diff),
	}
	toFields := make(map[string]*shape.Field)
	for i := range to.Fields {
		toFields[to.Fields[i].Name] = &to.Fields[i]
	}
	fromNames := make(map[string]bool)
	for i := range from.Fields {
		f := &from.Fields[i]
		fromNames[f.Name] = true
		t, ok := toFields[f.Name]
		if !ok {
			d.Deletions = append(d.Deletions, f.Name)
			continue
		}
		fd := New(f.Shape, t.Shape)
		if fd.Equal() {
			d.Unchanged = append(d.Unchanged, f.Name)
		} else {
			d.Updates[f.Name] = fd
		}
	}
	for i := range to.Fields {
		if !fromNames[to.Fields[i].Name] {
			d.Insertions = append(d.Insertions, to.Fields[i].Name)
		}
	}
	sort.Strings(d.Deletions)
	sort.Strings(d.Insertions)
	sort.Strings(d.Unchanged)
	return d
}

func sequence(s *shape.Shape) bool {
	switch s.Class {
	case shape.ListClass, shape.SetClass, shape.ArrayClass:
		return true
	default:
		return false
	}
}

func shapesEqual(a, b *shape.Shape) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.TypeID != b.TypeID {
		return false
	}
	if !classEqual(a, b) {
		return false
	}
	return typesEqual(a, b)
}

func classEqual(a, b *shape.Shape) bool {
	if a.Class != b.Class {
		return false
	}
	switch a.Class {
	case shape.MapClass:
		return shapesEqual(a.Key, b.Key) && shapesEqual(a.Elem, b.Elem)
	case shape.ListClass, shape.SetClass, shape.OptionClass:
		return shapesEqual(a.Elem, b.Elem)
	case shape.ArrayClass:
		return a.N == b.N && shapesEqual(a.Elem, b.Elem)
	default:
		return true
	}
}

func typesEqual(a, b *shape.Shape) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case shape.PrimitiveKind:
		return a.Prim == b.Prim && a.Layout == b.Layout
	case shape.ReferenceKind:
		return shapesEqual(a.Elem, b.Elem)
	case shape.RecordKind:
		return fieldsEqual(a.Fields, b.Fields)
	case shape.TaggedKind:
		return variantsEqual(a.Variants, b.Variants)
	default:
		return true
	}
}

func fieldsEqual(a, b []shape.Field) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !shapesEqual(a[i].Shape, b[i].Shape) {
			return false
		}
	}
	return true
}

func variantsEqual(a, b []shape.Variant) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !fieldsEqual(a[i].Fields, b[i].Fields) {
			return false
		}
	}
	return true
}
