package assets

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed sql/*.sql
var FS embed.FS

// MigrationDir is the directory inside FS holding the migration scripts.
const MigrationDir = "sql"

// Migrations lists the embedded migration files in lexical order.
func Migrations() ([]string, error) {
	files, err := fs.Glob(FS, MigrationDir+"/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
