package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AddIndexes adds indexes on the columns the list endpoints sort and filter
// by. AutoMigrate covers the unique constraints; these are plain indexes.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"users", "idx_users_points", "points"},
		{"users", "idx_users_created_at", "created_at"},
		{"users", "idx_users_type", "type"},

		{"challenges", "idx_challenges_active", "active"},
		{"challenges", "idx_challenges_created_at", "created_at"},

		{"solutions", "idx_solutions_votes", "votes"},

		{"votes", "idx_votes_solution_id", "solution_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			// MySQL has no CREATE INDEX IF NOT EXISTS; tolerate duplicates.
			if strings.Contains(err.Error(), "Duplicate") {
				continue
			}
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		log.Debug().Str("index", idx.name).Str("table", idx.table).Msg("Created index")
	}

	return nil
}
