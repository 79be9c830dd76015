// Package sqldata defines the table definition produced by shapedb and
// consumed by schema-building tools.
package sqldata

type DataType int

const (
	UnknownType         DataType = 0
	BooleanType         DataType = 1
	SmallIntType        DataType = 2
	IntegerType         DataType = 3
	BigIntType          DataType = 4
	RealType            DataType = 5
	DoublePrecisionType DataType = 6
	TextType            DataType = 7
	CharType            DataType = 8
	JSONType            DataType = 9
)

func (d DataType) String() string {
	switch d {
	case BooleanType:
		return "BooleanType"
	case SmallIntType:
		return "SmallIntType"
	case IntegerType:
		return "IntegerType"
	case BigIntType:
		return "BigIntType"
	case RealType:
		return "RealType"
	case DoublePrecisionType:
		return "DoublePrecisionType"
	case TextType:
		return "TextType"
	case CharType:
		return "CharType"
	case JSONType:
		return "JSONType"
	default:
		return "(unknown type)"
	}
}

// DataTypeToSQL converts a data type to a database type.
func DataTypeToSQL(dtype DataType) string {
	switch dtype {
	case BooleanType:
		return "boolean"
	case SmallIntType:
		return "smallint"
	case IntegerType:
		return "integer"
	case BigIntType:
		return "bigint"
	case RealType:
		return "real"
	case DoublePrecisionType:
		return "double precision"
	case TextType:
		return "text"
	case CharType:
		return "character(1)"
	case JSONType:
		return "jsonb"
	default:
		return "(unknown)"
	}
}

// Numeric reports whether a data type stores a numeric value.
func (d DataType) Numeric() bool {
	switch d {
	case SmallIntType, IntegerType, BigIntType, RealType, DoublePrecisionType:
		return true
	default:
		return false
	}
}

// Textual reports whether a data type stores text.
func (d DataType) Textual() bool {
	return d == TextType || d == CharType
}

// Column is a single column in a table definition.  Nullability is
// carried on the column rather than wrapped around the data type.
type Column struct {
	Name     string
	DType    DataType
	Nullable bool
}

// Table is an ordered table definition.  PrimaryKey, when non-nil, points
// at the column in Columns that forms the table's primary key.
type Table struct {
	Name       string
	Columns    []Column
	PrimaryKey *Column
}

// Column returns the column with the given name, or nil if the table has
// no such column.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}
