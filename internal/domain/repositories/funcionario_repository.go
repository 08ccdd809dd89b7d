package repositories

import (
	"context"

	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
)

// FuncionarioRepository define a interface para persistência de funcionários.
// As buscas carregam o cargo associado (join com a tabela cargo).
// FindByEmail inclui o hash da senha, usado na autenticação.
type FuncionarioRepository interface {
	Create(ctx context.Context, funcionario *entities.Funcionario) (int, error)
	FindAll(ctx context.Context) ([]*entities.Funcionario, error)
	FindByID(ctx context.Context, id int) (*entities.Funcionario, error)
	FindByEmail(ctx context.Context, email string) (*entities.Funcionario, error)
	Update(ctx context.Context, funcionario *entities.Funcionario) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
