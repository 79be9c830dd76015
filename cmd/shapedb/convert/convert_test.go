package convert

import (
	"errors"
	"testing"

	"github.com/shapedb-project/shapedb/cmd/shapedb/shape"
	"github.com/shapedb-project/shapedb/cmd/shapedb/sqldata"
)

func boolShape() *shape.Shape {
	return &shape.Shape{TypeID: "bool", Kind: shape.PrimitiveKind,
		Prim: shape.BoolPrimitive, Layout: shape.Layout{Size: 1}}
}

func intShape(size uint, signed bool) *shape.Shape {
	return &shape.Shape{TypeID: "int", Kind: shape.PrimitiveKind,
		Prim: shape.IntPrimitive, Layout: shape.Layout{Size: size, Signed: signed}}
}

func floatShape(size uint) *shape.Shape {
	return &shape.Shape{TypeID: "float", Kind: shape.PrimitiveKind,
		Prim: shape.FloatPrimitive, Layout: shape.Layout{Size: size, Signed: true, Float: true}}
}

func textShape() *shape.Shape {
	return &shape.Shape{TypeID: "String", Kind: shape.RecordKind,
		Prim: shape.StringPrimitive}
}

func optionShape(inner *shape.Shape) *shape.Shape {
	return &shape.Shape{TypeID: "Option<" + inner.TypeID + ">", Kind: shape.RecordKind,
		Class: shape.OptionClass, Elem: inner}
}

func listShape(elem *shape.Shape) *shape.Shape {
	return &shape.Shape{TypeID: "Vec<" + elem.TypeID + ">", Kind: shape.RecordKind,
		Class: shape.ListClass, Elem: elem}
}

func TestConvertUser(t *testing.T) {
	s := &shape.Shape{
		TypeID: "User",
		Kind:   shape.RecordKind,
		Fields: []shape.Field{
			{Name: "id", Shape: intShape(8, false)},
			{Name: "username", Shape: textShape()},
			{Name: "is_active", Shape: boolShape()},
		},
	}
	table, err := Convert(s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := table.Name, "user"; got != want {
		t.Errorf("table name: got %q; want %q", got, want)
	}
	if got, want := len(table.Columns), 3; got != want {
		t.Fatalf("number of columns: got %d; want %d", got, want)
	}
	want := []sqldata.Column{
		{Name: "id", DType: sqldata.BigIntType},
		{Name: "username", DType: sqldata.TextType},
		{Name: "is_active", DType: sqldata.BooleanType},
	}
	for i, c := range table.Columns {
		if c != want[i] {
			t.Errorf("column %d: got %v; want %v", i, c, want[i])
		}
	}
	if table.PrimaryKey != nil {
		t.Errorf("primary key: got %v; want nil", table.PrimaryKey)
	}
}

func TestConvertPrimaryKey(t *testing.T) {
	s := &shape.Shape{
		TypeID: "BlogPost",
		Kind:   shape.RecordKind,
		Fields: []shape.Field{
			{Name: "id", Shape: textShape(),
				Attrs: []shape.Attr{{NS: "psql", Key: "primary_key"}}},
			{Name: "title", Shape: textShape()},
			{Name: "view_count", Shape: intShape(4, true)},
		},
	}
	table, err := Convert(s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := table.Name, "blogpost"; got != want {
		t.Errorf("table name: got %q; want %q", got, want)
	}
	if table.PrimaryKey == nil {
		t.Fatal("primary key: got nil")
	}
	if got, want := table.PrimaryKey.Name, "id"; got != want {
		t.Errorf("primary key: got %q; want %q", got, want)
	}
	if table.PrimaryKey != &table.Columns[0] {
		t.Errorf("primary key does not point at the id column")
	}
}

func TestConvertMultiplePrimaryKeys(t *testing.T) {
	s := &shape.Shape{
		TypeID: "Pair",
		Kind:   shape.RecordKind,
		Fields: []shape.Field{
			{Name: "a", Shape: intShape(8, true),
				Attrs: []shape.Attr{{NS: "psql", Key: "primary_key"}}},
			{Name: "b", Shape: intShape(8, true),
				Attrs: []shape.Attr{{NS: "psql", Key: "primary_key"}}},
		},
	}
	_, err := Convert(s)
	if !errors.Is(err, ErrMultiplePrimaryKeys) {
		t.Errorf("got %v; want ErrMultiplePrimaryKeys", err)
	}
}

func TestConvertNotAStruct(t *testing.T) {
	for _, s := range []*shape.Shape{
		intShape(4, true),
		{TypeID: "Status", Kind: shape.TaggedKind,
			Variants: []shape.Variant{{Name: "Active"}, {Name: "Inactive"}}},
	} {
		_, err := Convert(s)
		if !errors.Is(err, ErrNotAStruct) {
			t.Errorf("%s: got %v; want ErrNotAStruct", s.TypeID, err)
		}
	}
}

func TestConvertNestedContainers(t *testing.T) {
	s := &shape.Shape{
		TypeID: "Article",
		Kind:   shape.RecordKind,
		Fields: []shape.Field{
			{Name: "tags", Shape: listShape(textShape())},
			{Name: "author", Shape: &shape.Shape{
				TypeID: "Author",
				Kind:   shape.RecordKind,
				Fields: []shape.Field{
					{Name: "name", Shape: textShape()},
				},
			}},
			{Name: "ratings", Shape: &shape.Shape{
				TypeID: "HashMap<String, i64>",
				Kind:   shape.RecordKind,
				Class:  shape.MapClass,
				Key:    textShape(),
				Elem:   intShape(8, true),
			}},
		},
	}
	table, err := Convert(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"tags", "author", "ratings"} {
		c := table.Column(name)
		if c == nil {
			t.Fatalf("column %q not found", name)
		}
		if got, want := c.DType, sqldata.JSONType; got != want {
			t.Errorf("column %q: got %s; want %s", name, got, want)
		}
	}
}

func TestConvertFixedArray(t *testing.T) {
	s := &shape.Shape{
		TypeID: "Packet",
		Kind:   shape.RecordKind,
		Fields: []shape.Field{
			{Name: "header", Shape: &shape.Shape{
				TypeID: "[u8; 4]",
				Kind:   shape.RecordKind,
				Class:  shape.ArrayClass,
				N:      4,
				Elem:   intShape(1, false),
			}},
		},
	}
	_, err := Convert(s)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("got %v; want ErrUnsupportedType", err)
	}
}

func TestConvertOptional(t *testing.T) {
	s := &shape.Shape{
		TypeID: "Profile",
		Kind:   shape.RecordKind,
		Fields: []shape.Field{
			{Name: "bio", Shape: optionShape(textShape())},
			{Name: "age", Shape: optionShape(intShape(2, false))},
			{Name: "name", Shape: textShape()},
		},
	}
	table, err := Convert(s)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name     string
		dtype    sqldata.DataType
		nullable bool
	}{
		{"bio", sqldata.TextType, true},
		{"age", sqldata.SmallIntType, true},
		{"name", sqldata.TextType, false},
	}
	for _, tt := range tests {
		c := table.Column(tt.name)
		if c == nil {
			t.Fatalf("column %q not found", tt.name)
		}
		if c.DType != tt.dtype || c.Nullable != tt.nullable {
			t.Errorf("column %q: got (%s, nullable=%v); want (%s, nullable=%v)",
				tt.name, c.DType, c.Nullable, tt.dtype, tt.nullable)
		}
	}
}

func TestColumnTypeIntegerSizes(t *testing.T) {
	tests := []struct {
		size  uint
		dtype sqldata.DataType
	}{
		{1, sqldata.SmallIntType},
		{2, sqldata.SmallIntType},
		{4, sqldata.IntegerType},
		{8, sqldata.BigIntType},
		{16, sqldata.BigIntType},
	}
	for _, tt := range tests {
		dtype, err := ColumnType(intShape(tt.size, true))
		if err != nil {
			t.Fatalf("size %d: %v", tt.size, err)
		}
		if dtype != tt.dtype {
			t.Errorf("size %d: got %s; want %s", tt.size, dtype, tt.dtype)
		}
	}
}

func TestColumnTypeFloatSizes(t *testing.T) {
	tests := []struct {
		size  uint
		dtype sqldata.DataType
	}{
		{4, sqldata.RealType},
		{8, sqldata.DoublePrecisionType},
	}
	for _, tt := range tests {
		dtype, err := ColumnType(floatShape(tt.size))
		if err != nil {
			t.Fatalf("size %d: %v", tt.size, err)
		}
		if dtype != tt.dtype {
			t.Errorf("size %d: got %s; want %s", tt.size, dtype, tt.dtype)
		}
	}
	if _, err := ColumnType(floatShape(2)); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("float size 2: got %v; want ErrUnsupportedType", err)
	}
}

func TestColumnTypeChar(t *testing.T) {
	dtype, err := ColumnType(&shape.Shape{TypeID: "char", Kind: shape.PrimitiveKind,
		Prim: shape.CharPrimitive, Layout: shape.Layout{Size: 4}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dtype, sqldata.CharType; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestColumnTypeReference(t *testing.T) {
	dtype, err := ColumnType(&shape.Shape{TypeID: "&str", Kind: shape.ReferenceKind,
		Elem: &shape.Shape{TypeID: "str", Kind: shape.PrimitiveKind, Prim: shape.StringPrimitive}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dtype, sqldata.TextType; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
	_, err = ColumnType(&shape.Shape{TypeID: "&User", Kind: shape.ReferenceKind,
		Elem: &shape.Shape{TypeID: "User", Kind: shape.RecordKind}})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("got %v; want ErrUnsupportedType", err)
	}
}

func TestColumnTypeTagged(t *testing.T) {
	dtype, err := ColumnType(&shape.Shape{TypeID: "Status", Kind: shape.TaggedKind,
		Variants: []shape.Variant{{Name: "Active"}, {Name: "Inactive"}}})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dtype, sqldata.IntegerType; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestTableName(t *testing.T) {
	tests := []struct {
		typeID string
		want   string
	}{
		{"User", "user"},
		{"BlogPost", "blogpost"},
		{"Wrapper<String>", "wrapper"},
		{"Pair<i32, i64>", "pair"},
	}
	for _, tt := range tests {
		s := &shape.Shape{TypeID: tt.typeID, Kind: shape.RecordKind}
		if got := TableName(s); got != tt.want {
			t.Errorf("%q: got %q; want %q", tt.typeID, got, tt.want)
		}
	}
}

func TestPrimaryKeyField(t *testing.T) {
	tests := []struct {
		attrs []shape.Attr
		want  bool
	}{
		{[]shape.Attr{{NS: "psql", Key: "primary_key"}}, true},
		{[]shape.Attr{{NS: "psql", Key: "primary_key", Value: "true"}}, true},
		{[]shape.Attr{{NS: "", Key: "primary_key"}}, false},
		{[]shape.Attr{{NS: "other", Key: "primary_key"}}, false},
		{[]shape.Attr{{NS: "psql", Key: "index"}}, false},
		{nil, false},
	}
	for i, tt := range tests {
		f := &shape.Field{Name: "id", Shape: textShape(), Attrs: tt.attrs}
		if got := PrimaryKeyField(f); got != tt.want {
			t.Errorf("test %d: got %v; want %v", i, got, tt.want)
		}
	}
}
