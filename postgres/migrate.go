package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := m.Executor(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

// MigrateUp runs every Migration not yet recorded in the migrations table,
// in the order given, recording each as it completes.
func MigrateUp(db *gorm.DB, schema string, migrations []Migration) error {
	if err := ensureSchema(db, schema); err != nil {
		return err
	}

	if err := ensureMigrationsTable(db); err != nil {
		return err
	}

	ran, err := ranMigrationKeys(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if ran[m.Key] {
			continue
		}

		if err := m.execute(db); err != nil {
			return fmt.Errorf("could not run migration %q: %w", m.Key, err)
		}

		if err := db.Exec("INSERT INTO migrations (ran_at, key) VALUES (EXTRACT(EPOCH FROM NOW()), ?)", m.Key).Error; err != nil {
			return fmt.Errorf("could not record migration %q: %w", m.Key, err)
		}
	}

	return nil
}

func ensureSchema(db *gorm.DB, schema string) error {
	return db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error
}

func ensureMigrationsTable(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
}

func ranMigrationKeys(db *gorm.DB) (map[string]bool, error) {
	var keys []string
	if err := db.Raw("SELECT key FROM migrations;").Scan(&keys).Error; err != nil {
		return nil, err
	}

	ran := make(map[string]bool, len(keys))
	for _, k := range keys {
		ran[k] = true
	}

	return ran, nil
}
