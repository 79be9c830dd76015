package sqldata

import (
	"testing"
)

func TestDataTypeToSQL(t *testing.T) {
	tests := []struct {
		dtype DataType
		want  string
	}{
		{BooleanType, "boolean"},
		{SmallIntType, "smallint"},
		{IntegerType, "integer"},
		{BigIntType, "bigint"},
		{RealType, "real"},
		{DoublePrecisionType, "double precision"},
		{TextType, "text"},
		{CharType, "character(1)"},
		{JSONType, "jsonb"},
		{UnknownType, "(unknown)"},
	}
	for _, tt := range tests {
		if got := DataTypeToSQL(tt.dtype); got != tt.want {
			t.Errorf("%s: got %q; want %q", tt.dtype, got, tt.want)
		}
	}
}

func TestNumericTextual(t *testing.T) {
	tests := []struct {
		dtype   DataType
		numeric bool
		textual bool
	}{
		{BooleanType, false, false},
		{SmallIntType, true, false},
		{IntegerType, true, false},
		{BigIntType, true, false},
		{RealType, true, false},
		{DoublePrecisionType, true, false},
		{TextType, false, true},
		{CharType, false, true},
		{JSONType, false, false},
	}
	for _, tt := range tests {
		if got := tt.dtype.Numeric(); got != tt.numeric {
			t.Errorf("%s: Numeric(): got %v; want %v", tt.dtype, got, tt.numeric)
		}
		if got := tt.dtype.Textual(); got != tt.textual {
			t.Errorf("%s: Textual(): got %v; want %v", tt.dtype, got, tt.textual)
		}
	}
}

func TestTableColumn(t *testing.T) {
	table := &Table{
		Name: "user",
		Columns: []Column{
			{Name: "id", DType: BigIntType},
			{Name: "username", DType: TextType},
		},
	}
	c := table.Column("username")
	if c == nil {
		t.Fatal("column not found")
	}
	if got, want := c.DType, TextType; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
	if table.Column("missing") != nil {
		t.Errorf("expected nil for missing column")
	}
}
