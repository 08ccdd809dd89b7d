package domain

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// Os repositórios detectam a transação ativa através do contexto.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
