// Package apply converts a shape description and executes the resulting
// DDL against a database.
package apply

import (
	"github.com/shapedb-project/shapedb/cmd/shapedb/convert"
	"github.com/shapedb-project/shapedb/cmd/shapedb/dbx"
	"github.com/shapedb-project/shapedb/cmd/shapedb/ddl"
	"github.com/shapedb-project/shapedb/cmd/shapedb/option"
	"github.com/shapedb-project/shapedb/cmd/shapedb/runddl"
	"github.com/shapedb-project/shapedb/cmd/shapedb/shape"
	"github.com/shapedb-project/shapedb/cmd/shapedb/util"
)

func Apply(opt *option.Apply) error {
	s, err := shape.ReadFile(opt.Shapefile)
	if err != nil {
		return err
	}
	t, err := convert.Convert(s)
	if err != nil {
		return err
	}
	q := ddl.CreateTableSQL(opt.Schema, t)
	db, err := util.ReadConfigDatabase(opt.Conffile)
	if err != nil {
		return err
	}
	dc, err := dbx.Connect(db)
	if err != nil {
		return err
	}
	defer dbx.Close(dc)
	return runddl.Run(dc, opt.Schema, []string{q})
}
