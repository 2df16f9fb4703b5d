// Package kvstore é o substrato de persistência: documentos opacos (strings) lidos e gravados por chave.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound indica que a chave nunca foi gravada.
var ErrNotFound = errors.New("kvstore: chave não encontrada")

// Store é o contrato get/set por chave. Set sobrescreve o documento inteiro.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
