package inits

import (
	"github.com/hashicorp/go-memdb"
)

const SubmissionTable = "submission"

// Schema describes the in-memory submission table. Time and Expiry are
// stored as RFC3339 UTC strings so index order is chronological.
func Schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			SubmissionTable: {
				Name: SubmissionTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:         "id",
						Unique:       true,
						Indexer:      &memdb.StringFieldIndex{Field: "ID"},
						AllowMissing: false,
					},
					"state": {
						Name:         "state",
						Unique:       false,
						Indexer:      &memdb.StringFieldIndex{Field: "State"},
						AllowMissing: false,
					},
					"expiry": {
						Name:         "expiry",
						Unique:       false,
						Indexer:      &memdb.StringFieldIndex{Field: "Expiry"},
						AllowMissing: false,
					},
				},
			},
		},
	}
}

// DBInit creates the submission store and panics if the schema is invalid.
func DBInit() *memdb.MemDB {
	db, err := memdb.NewMemDB(Schema())
	if err != nil {
		panic(err)
	}
	return db
}
