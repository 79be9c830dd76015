// Package runddl executes generated DDL statements against a database.
package runddl

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shapedb-project/shapedb/cmd/shapedb/dbx"
	"github.com/shapedb-project/shapedb/cmd/shapedb/log"
)

// Run executes the statements in a single transaction, in order.  If any
// statement fails, the transaction is rolled back and no changes are made.
func Run(dc *pgx.Conn, schema string, stmts []string) error {
	tx, err := dc.Begin(context.TODO())
	if err != nil {
		return fmt.Errorf("beginning transaction: %v", err)
	}
	defer dbx.Rollback(tx)
	if schema != "" {
		q := "CREATE SCHEMA IF NOT EXISTS \"" + schema + "\""
		log.Info("%s", q)
		if _, err = tx.Exec(context.TODO(), q); err != nil {
			return fmt.Errorf("creating schema %q: %v", schema, err)
		}
	}
	for _, q := range stmts {
		log.Info("%s", q)
		if _, err = tx.Exec(context.TODO(), q); err != nil {
			return fmt.Errorf("executing DDL: %v: %s", err, q)
		}
	}
	if err = tx.Commit(context.TODO()); err != nil {
		return fmt.Errorf("committing transaction: %v", err)
	}
	return nil
}
