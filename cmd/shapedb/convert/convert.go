// Package convert translates a shape description into a table definition.
package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shapedb-project/shapedb/cmd/shapedb/shape"
	"github.com/shapedb-project/shapedb/cmd/shapedb/sqldata"
)

// Attribute namespace and key that mark a primary-key column.
const (
	attrNamespace  = "psql"
	attrPrimaryKey = "primary_key"
)

var (
	ErrNotAStruct          = errors.New("expected record shape")
	ErrMultiplePrimaryKeys = errors.New("multiple primary keys defined")
	ErrUnsupportedType     = errors.New("unsupported type")
)

// Convert builds a table definition from a record shape.  The table name
// is the lowercased type identifier; columns follow the shape's field
// order.  A field marked with the psql primary-key attribute becomes the
// table's primary key; more than one such field is an error.
func Convert(s *shape.Shape) (*sqldata.Table, error) {
	if s == nil {
		return nil, fmt.Errorf("converting shape: shape is nil")
	}
	if !s.IsRecord() {
		return nil, fmt.Errorf("%w: got %s (%s)", ErrNotAStruct, s.Kind, s.TypeID)
	}
	var t = &sqldata.Table{Name: TableName(s)}
	var pk []int
	for i := range s.Fields {
		f := &s.Fields[i]
		dtype, err := ColumnType(f.Shape)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		t.Columns = append(t.Columns, sqldata.Column{
			Name:     f.Name,
			DType:    dtype,
			Nullable: f.Shape.IsOptional(),
		})
		if PrimaryKeyField(f) {
			pk = append(pk, i)
		}
	}
	if len(pk) > 1 {
		var names []string
		for _, i := range pk {
			names = append(names, t.Columns[i].Name)
		}
		return nil, fmt.Errorf("%w: table %q has %d primary keys: %s",
			ErrMultiplePrimaryKeys, t.Name, len(pk), strings.Join(names, ", "))
	}
	if len(pk) == 1 {
		t.PrimaryKey = &t.Columns[pk[0]]
	}
	return t, nil
}

// TableName derives a table name from a shape.  Monomorphized generic
// identifiers keep only the base identifier; the concrete type arguments
// are collapsed.
func TableName(s *shape.Shape) string {
	name := s.TypeID
	if i := strings.IndexAny(name, "<["); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name)
}

// ColumnType maps a field shape to a SQL data type.
func ColumnType(s *shape.Shape) (sqldata.DataType, error) {
	if s == nil {
		return sqldata.UnknownType, fmt.Errorf("%w: shape is missing", ErrUnsupportedType)
	}
	// An optional wrapper takes the inner shape's type; nullability is
	// recorded on the column.
	if s.IsOptional() {
		if s.Inner() == nil {
			return sqldata.UnknownType,
				fmt.Errorf("%w: optional wrapper without element: %s", ErrUnsupportedType, s.TypeID)
		}
		return ColumnType(s.Inner())
	}
	switch s.Class {
	case shape.ListClass, shape.SetClass, shape.MapClass:
		// Containers are stored as a single jsonb value, not decomposed
		// into auxiliary tables.
		return sqldata.JSONType, nil
	case shape.ArrayClass:
		return sqldata.UnknownType,
			fmt.Errorf("%w: fixed-length array: %s", ErrUnsupportedType, s.TypeID)
	}
	switch s.Kind {
	case shape.PrimitiveKind:
		return primitiveType(s)
	case shape.ReferenceKind:
		// Borrowed text maps to text like its owned counterpart,
		// regardless of reference markers.  Other references are not
		// supported as columns.
		if inner := s.Inner(); inner != nil && inner.IsText() {
			return sqldata.TextType, nil
		}
		return sqldata.UnknownType,
			fmt.Errorf("%w: reference type: %s", ErrUnsupportedType, s.TypeID)
	case shape.RecordKind:
		if s.IsText() {
			return sqldata.TextType, nil
		}
		// Nested records are stored as jsonb.
		return sqldata.JSONType, nil
	case shape.TaggedKind:
		// A tagged type in a field is stored as its runtime discriminant.
		return sqldata.IntegerType, nil
	}
	return sqldata.UnknownType, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, s.Kind, s.TypeID)
}

func primitiveType(s *shape.Shape) (sqldata.DataType, error) {
	switch s.Prim {
	case shape.BoolPrimitive:
		return sqldata.BooleanType, nil
	case shape.IntPrimitive:
		switch {
		case s.Layout.Size <= 2:
			return sqldata.SmallIntType, nil
		case s.Layout.Size == 4:
			return sqldata.IntegerType, nil
		default:
			return sqldata.BigIntType, nil
		}
	case shape.FloatPrimitive:
		switch s.Layout.Size {
		case 4:
			return sqldata.RealType, nil
		case 8:
			return sqldata.DoublePrecisionType, nil
		default:
			return sqldata.UnknownType,
				fmt.Errorf("%w: float with size %d", ErrUnsupportedType, s.Layout.Size)
		}
	case shape.CharPrimitive:
		return sqldata.CharType, nil
	case shape.StringPrimitive:
		return sqldata.TextType, nil
	default:
		return sqldata.UnknownType,
			fmt.Errorf("%w: primitive %s (%s)", ErrUnsupportedType, s.Prim, s.TypeID)
	}
}

// PrimaryKeyField reports whether a field carries the psql primary-key
// attribute.  Matching is exact on both namespace and key; an attribute
// with no namespace never matches.
func PrimaryKeyField(f *shape.Field) bool {
	for _, a := range f.Attrs {
		if a.NS == attrNamespace && a.Key == attrPrimaryKey {
			return true
		}
	}
	return false
}
