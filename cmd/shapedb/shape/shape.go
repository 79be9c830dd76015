// Package shape defines the reflection-derived description of a data type
// that shapedb consumes.  Shapes are produced by an external reflection
// facility and are treated as immutable.
package shape

// Kind classifies the overall structure of a type.
type Kind int

const (
	UnknownKind   Kind = 0
	RecordKind    Kind = 1
	TaggedKind    Kind = 2
	ReferenceKind Kind = 3
	PrimitiveKind Kind = 4
)

func (k Kind) String() string {
	switch k {
	case RecordKind:
		return "record"
	case TaggedKind:
		return "tagged"
	case ReferenceKind:
		return "reference"
	case PrimitiveKind:
		return "primitive"
	default:
		return "(unknown kind)"
	}
}

// Primitive classifies a primitive shape.  Text classification is carried
// here rather than inferred from the type identifier, so that owned text
// containers and borrowed text report the same capability.
type Primitive int

const (
	NoPrimitive     Primitive = 0
	BoolPrimitive   Primitive = 1
	IntPrimitive    Primitive = 2
	FloatPrimitive  Primitive = 3
	CharPrimitive   Primitive = 4
	StringPrimitive Primitive = 5
)

func (p Primitive) String() string {
	switch p {
	case BoolPrimitive:
		return "bool"
	case IntPrimitive:
		return "int"
	case FloatPrimitive:
		return "float"
	case CharPrimitive:
		return "char"
	case StringPrimitive:
		return "string"
	default:
		return "(no primitive)"
	}
}

// Class classifies a shape's container structure, orthogonally to Kind.
type Class int

const (
	ScalarClass Class = 0
	OptionClass Class = 1
	ListClass   Class = 2
	SetClass    Class = 3
	MapClass    Class = 4
	ArrayClass  Class = 5
)

func (c Class) String() string {
	switch c {
	case ScalarClass:
		return "scalar"
	case OptionClass:
		return "option"
	case ListClass:
		return "list"
	case SetClass:
		return "set"
	case MapClass:
		return "map"
	case ArrayClass:
		return "array"
	default:
		return "(unknown class)"
	}
}

// Layout is the memory layout of a shape.
type Layout struct {
	Size   uint
	Signed bool
	Float  bool
}

// Shape describes a type: its identifier, structural kind, container
// class, memory layout, and, for composite kinds, its fields.
type Shape struct {
	TypeID   string
	Kind     Kind
	Class    Class
	Prim     Primitive
	Layout   Layout
	Elem     *Shape // option/list/set/array element, map value, or reference target
	Key      *Shape // map key
	N        int    // array length
	Fields   []Field
	Variants []Variant
}

// Field is a named member of a record shape.
type Field struct {
	Name  string
	Shape *Shape
	Attrs []Attr
}

// Attr is namespaced key/value metadata attached to a field.  An empty
// namespace means the attribute has no namespace.
type Attr struct {
	NS    string
	Key   string
	Value string
}

// Variant is one alternative of a tagged shape.
type Variant struct {
	Name   string
	Fields []Field
}

// IsRecord reports whether the shape is a composite record with named
// fields.
func (s *Shape) IsRecord() bool {
	return s.Kind == RecordKind
}

// IsTagged reports whether the shape is a tagged (discriminated) type.
func (s *Shape) IsTagged() bool {
	return s.Kind == TaggedKind
}

// IsReference reports whether the shape is a reference or pointer.
func (s *Shape) IsReference() bool {
	return s.Kind == ReferenceKind
}

// IsOptional reports whether the shape is an optional wrapper.
func (s *Shape) IsOptional() bool {
	return s.Class == OptionClass
}

// IsText reports whether the shape is a text type.  Both owned text
// containers and borrowed text are classified as text by the reflection
// facility, so no identifier matching is needed here.
func (s *Shape) IsText() bool {
	return s.Prim == StringPrimitive
}

// Inner returns the shape referenced by an optional wrapper or a
// reference shape, or nil if there is none.
func (s *Shape) Inner() *Shape {
	return s.Elem
}
