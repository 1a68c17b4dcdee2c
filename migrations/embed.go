// Package migrations embeds the schema migrations for every supported driver.
package migrations

import "embed"

// FS holds one directory of migrations per database driver
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dir returns the migrations directory for the given driver name
func Dir(driver string) string {
	if driver == "sqlite3" {
		return "sqlite"
	}
	return "postgres"
}
