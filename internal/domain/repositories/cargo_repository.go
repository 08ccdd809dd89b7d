package repositories

import (
	"context"

	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
)

// CargoRepository define a interface para persistência de cargos.
// Buscas que não encontram registro retornam (nil, nil); Update e
// Delete informam se alguma linha foi afetada.
type CargoRepository interface {
	Create(ctx context.Context, cargo *entities.Cargo) (int, error)
	FindAll(ctx context.Context) ([]*entities.Cargo, error)
	FindByID(ctx context.Context, id int) (*entities.Cargo, error)
	FindByNome(ctx context.Context, nome string) (*entities.Cargo, error)
	Update(ctx context.Context, cargo *entities.Cargo) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}
