// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either a MySQL connection or a pure-Go SQLite
// database (a file path, or ":memory:" for tests) from the application
// configuration.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns read the live column list of a table so
// that the country store can verify a published table before trusting it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "countries", []string{"iso3", "idc"})
package database
