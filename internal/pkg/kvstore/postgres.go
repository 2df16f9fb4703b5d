package kvstore

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresStore grava os documentos na tabela documents (criada pelas migrações goose em sql/).
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore cria o store sobre um pool já aberto.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT doc_value FROM documents WHERE doc_key = $1`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	const query = `
        INSERT INTO documents (doc_key, doc_value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (doc_key) DO UPDATE
        SET doc_value = EXCLUDED.doc_value, updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
