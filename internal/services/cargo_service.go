package services

import (
	"context"
	"fmt"

	"github.com/gestaorh/gestaorh-backend/internal/domain"
	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
	apierrors "github.com/gestaorh/gestaorh-backend/internal/domain/errors"
	"github.com/gestaorh/gestaorh-backend/internal/domain/ports"
	"github.com/gestaorh/gestaorh-backend/internal/domain/repositories"
)

// CargoService contém a lógica de negócio para cargos
type CargoService struct {
	cargoRepo repositories.CargoRepository
	uow       domain.UnitOfWork
	logger    ports.Logger
}

// NewCargoService cria um novo CargoService
func NewCargoService(
	cargoRepo repositories.CargoRepository,
	uow domain.UnitOfWork,
	logger ports.Logger,
) *CargoService {
	return &CargoService{
		cargoRepo: cargoRepo,
		uow:       uow,
		logger:    logger,
	}
}

// CreateCargo cria um novo cargo.
// Regra de negócio: não permitir nomes duplicados (comparação exata).
func (s *CargoService) CreateCargo(ctx context.Context, nome string) (*entities.Cargo, error) {
	cargo, err := entities.NewCargo(nome)
	if err != nil {
		return nil, err
	}

	s.logger.Info("criando cargo", "nome", cargo.Nome)

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.cargoRepo.FindByNome(txCtx, cargo.Nome)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierrors.BadRequest(
				"Cargo já existe",
				fmt.Sprintf("O cargo %s já existe", cargo.Nome),
			)
		}

		id, err := s.cargoRepo.Create(txCtx, cargo)
		if err != nil {
			return err
		}
		return cargo.SetID(id)
	})
	if err != nil {
		return nil, err
	}

	return cargo, nil
}

// FindAll retorna todos os cargos
func (s *CargoService) FindAll(ctx context.Context) ([]*entities.Cargo, error) {
	return s.cargoRepo.FindAll(ctx)
}

// FindByID retorna um cargo pelo id, ou nil se não existir
func (s *CargoService) FindByID(ctx context.Context, id int) (*entities.Cargo, error) {
	cargo := &entities.Cargo{}
	if err := cargo.SetID(id); err != nil {
		return nil, err
	}
	return s.cargoRepo.FindByID(ctx, cargo.ID)
}

// UpdateCargo atualiza o nome de um cargo existente.
// Retorna false se nenhuma linha foi afetada (id não encontrado).
func (s *CargoService) UpdateCargo(ctx context.Context, id int, nome string) (bool, error) {
	cargo, err := entities.NewCargo(nome)
	if err != nil {
		return false, err
	}
	if err := cargo.SetID(id); err != nil {
		return false, err
	}

	s.logger.Info("atualizando cargo", "id", cargo.ID)

	return s.cargoRepo.Update(ctx, cargo)
}

// DeleteCargo remove um cargo pelo id.
// Retorna false se nenhuma linha foi afetada (id não encontrado).
func (s *CargoService) DeleteCargo(ctx context.Context, id int) (bool, error) {
	cargo := &entities.Cargo{}
	if err := cargo.SetID(id); err != nil {
		return false, err
	}

	s.logger.Info("removendo cargo", "id", cargo.ID)

	return s.cargoRepo.Delete(ctx, cargo.ID)
}
