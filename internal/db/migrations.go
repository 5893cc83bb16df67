package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sheandsoul/shesoul/migrations"
	"gorm.io/gorm"
)

// The schema is owned entirely by the embedded SQL files in migrations/,
// named NNN_description.sql and applied in ascending order, one transaction
// each. Applied versions are recorded in schema_migrations; shipped files are
// never edited, changes always arrive as a new file.

var migrationNamePattern = regexp.MustCompile(`^(\d+)_.+\.sql$`)
var addColumnPattern = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+(\S+)\s+ADD\s+COLUMN\s+(\S+)`)

type migrationFile struct {
	version string
	order   int
	name    string
	sql     string
}

func applyEmbeddedMigrations(database *gorm.DB) error {
	const ledgerSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(ledgerSQL).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	files, err := readMigrationFiles()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, file := range files {
		if _, done := applied[file.version]; done {
			continue
		}
		if err := runMigration(database, file); err != nil {
			return err
		}
	}
	return nil
}

func readMigrationFiles() ([]migrationFile, error) {
	entries, err := fs.ReadDir(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	files := make([]migrationFile, 0, len(entries))
	byVersion := make(map[string]string, len(entries))
	for _, entry := range entries {
		matches := migrationNamePattern.FindStringSubmatch(entry.Name())
		if entry.IsDir() || matches == nil {
			continue
		}

		version := matches[1]
		order, err := strconv.Atoi(version)
		if err != nil {
			return nil, fmt.Errorf("parse version of migration %s: %w", entry.Name(), err)
		}
		if other, dup := byVersion[version]; dup {
			return nil, fmt.Errorf("migration version %s used by both %s and %s", version, other, entry.Name())
		}
		byVersion[version] = entry.Name()

		rawSQL, err := fs.ReadFile(migrations.Files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		files = append(files, migrationFile{
			version: version,
			order:   order,
			name:    entry.Name(),
			sql:     string(rawSQL),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].order < files[j].order })
	return files, nil
}

func appliedVersions(database *gorm.DB) (map[string]struct{}, error) {
	recorded := make([]struct {
		Version string `gorm:"column:version"`
	}, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&recorded).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}

	versions := make(map[string]struct{}, len(recorded))
	for _, row := range recorded {
		versions[row.Version] = struct{}{}
	}
	return versions, nil
}

func runMigration(database *gorm.DB, file migrationFile) error {
	return database.Transaction(func(tx *gorm.DB) error {
		statements := splitStatements(file.sql)
		if len(statements) == 0 {
			return fmt.Errorf("migration %s has no SQL statements", file.name)
		}

		for _, statement := range statements {
			present, err := columnAlreadyPresent(tx, statement)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", file.name, err)
			}
			if present {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("apply %s (%q): %w", file.name, statement, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`, file.version, file.name,
		).Error; err != nil {
			return fmt.Errorf("record %s: %w", file.name, err)
		}
		return nil
	})
}

func splitStatements(sqlText string) []string {
	parts := strings.Split(sqlText, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

// columnAlreadyPresent reports whether statement is an ADD COLUMN whose
// column already exists. Such statements are skipped instead of failing, so a
// database whose table predates the migration ledger entry adopts the
// migration cleanly.
func columnAlreadyPresent(tx *gorm.DB, statement string) (bool, error) {
	matches := addColumnPattern.FindStringSubmatch(statement)
	if matches == nil {
		return false, nil
	}
	table := strings.Trim(matches[1], "\"`[]")
	column := strings.Trim(matches[2], "\"`[]")

	existing := make([]struct {
		Name string `gorm:"column:name"`
	}, 0)
	escapedTable := strings.ReplaceAll(table, `"`, `""`)
	if err := tx.Raw(fmt.Sprintf(`PRAGMA table_info("%s")`, escapedTable)).Scan(&existing).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, row := range existing {
		if strings.EqualFold(row.Name, column) {
			return true, nil
		}
	}
	return false, nil
}
