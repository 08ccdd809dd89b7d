package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
	"github.com/gestaorh/gestaorh-backend/internal/domain/repositories"
)

// CargoRepository implementa repositories.CargoRepository
type CargoRepository struct {
	db *gorm.DB
}

// NewCargoRepository cria um novo CargoRepository
func NewCargoRepository(db *gorm.DB) repositories.CargoRepository {
	return &CargoRepository{db: db}
}

func (r *CargoRepository) Create(ctx context.Context, cargo *entities.Cargo) (int, error) {
	model := &CargoModel{Nome: cargo.Nome}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return 0, err
	}

	return model.ID, nil
}

func (r *CargoRepository) FindAll(ctx context.Context) ([]*entities.Cargo, error) {
	var models []*CargoModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("idCargo").Find(&models).Error; err != nil {
		return nil, err
	}

	return toCargoEntities(models)
}

func (r *CargoRepository) FindByID(ctx context.Context, id int) (*entities.Cargo, error) {
	var model CargoModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("idCargo = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toCargoEntity(&model)
}

func (r *CargoRepository) FindByNome(ctx context.Context, nome string) (*entities.Cargo, error) {
	var model CargoModel

	db := dbFromContext(ctx, r.db)
	// Comparação exata, case-sensitive, usando collation binária
	if err := db.Where("BINARY nomeCargo = ?", nome).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toCargoEntity(&model)
}

// Update retorna true se o id existe, mesmo quando os valores enviados
// são idênticos aos gravados (a conexão usa clientFoundRows=true).
func (r *CargoRepository) Update(ctx context.Context, cargo *entities.Cargo) (bool, error) {
	db := dbFromContext(ctx, r.db)

	result := db.Model(&CargoModel{}).
		Where("idCargo = ?", cargo.ID).
		Update("nomeCargo", cargo.Nome)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *CargoRepository) Delete(ctx context.Context, id int) (bool, error) {
	db := dbFromContext(ctx, r.db)

	result := db.Where("idCargo = ?", id).Delete(&CargoModel{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Conversores
func toCargoEntity(model *CargoModel) (*entities.Cargo, error) {
	cargo, err := entities.NewCargo(model.Nome)
	if err != nil {
		return nil, err
	}
	if err := cargo.SetID(model.ID); err != nil {
		return nil, err
	}
	return cargo, nil
}

func toCargoEntities(models []*CargoModel) ([]*entities.Cargo, error) {
	cargos := make([]*entities.Cargo, 0, len(models))

	for _, model := range models {
		cargo, err := toCargoEntity(model)
		if err != nil {
			return nil, err
		}
		cargos = append(cargos, cargo)
	}

	return cargos, nil
}
