package shape

import (
	"encoding/json"
	"fmt"
	"os"
)

// Wire format for shape descriptions.  This mirrors the data model emitted
// by the reflection tooling: every shape has a type identifier and a kind;
// layout, container class, element shapes, fields, and attributes are
// present where they apply.

type shapeJSON struct {
	TypeID   string        `json:"type_identifier"`
	Kind     string        `json:"kind"`
	Class    string        `json:"class,omitempty"`
	Prim     string        `json:"primitive,omitempty"`
	Layout   *layoutJSON   `json:"layout,omitempty"`
	Elem     *shapeJSON    `json:"elem,omitempty"`
	Key      *shapeJSON    `json:"key,omitempty"`
	N        int           `json:"n,omitempty"`
	Fields   []fieldJSON   `json:"fields,omitempty"`
	Variants []variantJSON `json:"variants,omitempty"`
}

type layoutJSON struct {
	SizeBytes uint `json:"size_bytes"`
	Signed    bool `json:"signed"`
	IsFloat   bool `json:"is_float"`
}

type fieldJSON struct {
	Name       string     `json:"name"`
	Shape      *shapeJSON `json:"shape"`
	Attributes []attrJSON `json:"attributes,omitempty"`
}

type attrJSON struct {
	Namespace string `json:"namespace,omitempty"`
	Key       string `json:"key"`
	Value     string `json:"value,omitempty"`
}

type variantJSON struct {
	Name   string      `json:"name"`
	Fields []fieldJSON `json:"fields,omitempty"`
}

// ReadFile reads a JSON shape description from a file.
func ReadFile(filename string) (*Shape, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("reading shape description: %s: %s", filename, err)
	}
	return s, nil
}

// Decode decodes a JSON shape description.
func Decode(b []byte) (*Shape, error) {
	var sj shapeJSON
	if err := json.Unmarshal(b, &sj); err != nil {
		return nil, fmt.Errorf("decoding shape description: %s", err)
	}
	return convertShape(&sj)
}

func convertShape(sj *shapeJSON) (*Shape, error) {
	if sj == nil {
		return nil, fmt.Errorf("shape description is missing")
	}
	var err error
	var s = new(Shape)
	s.TypeID = sj.TypeID
	if s.Kind, err = convertKind(sj.Kind); err != nil {
		return nil, err
	}
	if s.Class, err = convertClass(sj.Class); err != nil {
		return nil, err
	}
	if s.Prim, err = convertPrimitive(sj.Prim); err != nil {
		return nil, err
	}
	if sj.Layout != nil {
		s.Layout = Layout{
			Size:   sj.Layout.SizeBytes,
			Signed: sj.Layout.Signed,
			Float:  sj.Layout.IsFloat,
		}
	}
	if sj.Elem != nil {
		if s.Elem, err = convertShape(sj.Elem); err != nil {
			return nil, err
		}
	}
	if sj.Key != nil {
		if s.Key, err = convertShape(sj.Key); err != nil {
			return nil, err
		}
	}
	s.N = sj.N
	if s.Fields, err = convertFields(sj.Fields); err != nil {
		return nil, err
	}
	for i := range sj.Variants {
		fields, err := convertFields(sj.Variants[i].Fields)
		if err != nil {
			return nil, err
		}
		s.Variants = append(s.Variants, Variant{Name: sj.Variants[i].Name, Fields: fields})
	}
	return s, nil
}

func convertFields(fjs []fieldJSON) ([]Field, error) {
	var fields []Field
	for i := range fjs {
		if fjs[i].Name == "" {
			return nil, fmt.Errorf("field name is missing")
		}
		fs, err := convertShape(fjs[i].Shape)
		if err != nil {
			return nil, fmt.Errorf("field %q: %s", fjs[i].Name, err)
		}
		var attrs []Attr
		for _, a := range fjs[i].Attributes {
			if a.Key == "" {
				return nil, fmt.Errorf("field %q: attribute key is missing", fjs[i].Name)
			}
			attrs = append(attrs, Attr{NS: a.Namespace, Key: a.Key, Value: a.Value})
		}
		fields = append(fields, Field{Name: fjs[i].Name, Shape: fs, Attrs: attrs})
	}
	return fields, nil
}

func convertKind(kind string) (Kind, error) {
	switch kind {
	case "record":
		return RecordKind, nil
	case "tagged":
		return TaggedKind, nil
	case "reference":
		return ReferenceKind, nil
	case "primitive":
		return PrimitiveKind, nil
	default:
		return UnknownKind, fmt.Errorf("unknown shape kind: %q", kind)
	}
}

func convertClass(class string) (Class, error) {
	switch class {
	case "", "scalar":
		return ScalarClass, nil
	case "option":
		return OptionClass, nil
	case "list":
		return ListClass, nil
	case "set":
		return SetClass, nil
	case "map":
		return MapClass, nil
	case "array":
		return ArrayClass, nil
	default:
		return ScalarClass, fmt.Errorf("unknown shape class: %q", class)
	}
}

func convertPrimitive(prim string) (Primitive, error) {
	switch prim {
	case "":
		return NoPrimitive, nil
	case "bool":
		return BoolPrimitive, nil
	case "int":
		return IntPrimitive, nil
	case "float":
		return FloatPrimitive, nil
	case "char":
		return CharPrimitive, nil
	case "string":
		return StringPrimitive, nil
	default:
		return NoPrimitive, fmt.Errorf("unknown primitive type: %q", prim)
	}
}
