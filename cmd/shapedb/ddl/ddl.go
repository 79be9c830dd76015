// Package ddl renders table definitions and shape diffs as Postgres DDL.
package ddl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shapedb-project/shapedb/cmd/shapedb/convert"
	"github.com/shapedb-project/shapedb/cmd/shapedb/diff"
	"github.com/shapedb-project/shapedb/cmd/shapedb/shape"
	"github.com/shapedb-project/shapedb/cmd/shapedb/sqldata"
	"github.com/shapedb-project/shapedb/cmd/shapedb/util"
)

// CreateTableSQL renders a CREATE TABLE statement for a table definition.
func CreateTableSQL(schema string, t *sqldata.Table) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE " + util.JoinSchemaTable(schema, t.Name) + " (\n")
	for i := range t.Columns {
		c := &t.Columns[i]
		if i != 0 {
			b.WriteString(",\n")
		}
		b.WriteString("    \"" + c.Name + "\" " + sqldata.DataTypeToSQL(c.DType))
		if !c.Nullable {
			b.WriteString(" NOT NULL")
		}
	}
	if t.PrimaryKey != nil {
		if len(t.Columns) != 0 {
			b.WriteString(",\n")
		}
		b.WriteString("    PRIMARY KEY (\"" + t.PrimaryKey.Name + "\")")
	}
	b.WriteString("\n)")
	return b.String()
}

// AlterTableSQL renders the ALTER TABLE statements that migrate a table
// from one record shape to another, given the diff of the two shapes.
// Column type changes are allowed only between numeric and text types.
func AlterTableSQL(schema string, d *diff.Diff) ([]string, error) {
	switch d.Kind {
	case diff.EqualDiff:
		return nil, fmt.Errorf("shapes are equal: no changes needed")
	case diff.DifferentDiff:
		return nil, fmt.Errorf("shapes are incompatible")
	case diff.SequenceDiff:
		return nil, fmt.Errorf("only record diffs can be applied to a table")
	}
	toTable := util.JoinSchemaTable(schema, convert.TableName(d.To))
	var stmts []string
	for _, name := range d.Insertions {
		f := fieldByName(d.To, name)
		if f == nil {
			return nil, fmt.Errorf("field %q not found in new shape", name)
		}
		dtype, err := convert.ColumnType(f.Shape)
		if err != nil {
			return nil, fmt.Errorf("field %q: %s", name, err)
		}
		q := "ALTER TABLE " + toTable + " ADD COLUMN \"" + name + "\" " + sqldata.DataTypeToSQL(dtype)
		if !f.Shape.IsOptional() {
			q = q + " NOT NULL"
		}
		stmts = append(stmts, q)
	}
	updates := make([]string, 0, len(d.Updates))
	for name := range d.Updates {
		updates = append(updates, name)
	}
	sort.Strings(updates)
	for _, name := range updates {
		f := fieldByName(d.To, name)
		if f == nil {
			return nil, fmt.Errorf("field %q not found in new shape", name)
		}
		fd := d.Updates[name]
		ok, err := compatibleChange(fd)
		if err != nil {
			return nil, fmt.Errorf("field %q: %s", name, err)
		}
		if !ok {
			return nil, fmt.Errorf(
				"incompatible type change for field %q: only conversions between numbers and text are supported",
				name)
		}
		dtype, err := convert.ColumnType(f.Shape)
		if err != nil {
			return nil, fmt.Errorf("field %q: %s", name, err)
		}
		stmts = append(stmts,
			"ALTER TABLE "+toTable+" ALTER COLUMN \""+name+"\" TYPE "+sqldata.DataTypeToSQL(dtype))
		if f.Shape.IsOptional() {
			stmts = append(stmts,
				"ALTER TABLE "+toTable+" ALTER COLUMN \""+name+"\" DROP NOT NULL")
		} else {
			stmts = append(stmts,
				"ALTER TABLE "+toTable+" ALTER COLUMN \""+name+"\" SET NOT NULL")
		}
	}
	for _, name := range d.Deletions {
		stmts = append(stmts, "ALTER TABLE "+toTable+" DROP COLUMN \""+name+"\"")
	}
	if len(stmts) == 0 {
		return nil, fmt.Errorf("no column changes found")
	}
	return stmts, nil
}

// compatibleChange reports whether a field diff is a column type change
// that the database can carry out in place.
func compatibleChange(d *diff.Diff) (bool, error) {
	if d.Kind != diff.DifferentDiff {
		// Nullability-only and container-level changes keep the column's
		// SQL type.
		return true, nil
	}
	from, err := convert.ColumnType(unwrapOption(d.From))
	if err != nil {
		return false, nil
	}
	to, err := convert.ColumnType(unwrapOption(d.To))
	if err != nil {
		return false, nil
	}
	return (from.Numeric() || from.Textual()) && (to.Numeric() || to.Textual()), nil
}

func unwrapOption(s *shape.Shape) *shape.Shape {
	for s != nil && s.IsOptional() && s.Inner() != nil {
		s = s.Inner()
	}
	return s
}

func fieldByName(s *shape.Shape, name string) *shape.Field {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}
