package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteDB abre (ou cria) o arquivo SQLite local. Use ":memory:" para um banco efêmero.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o SQLite em %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("falha ao obter o pool do SQLite: %w", err)
	}
	// SQLite aceita um único escritor; com ":memory:" cada conexão nova seria um banco diferente.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
