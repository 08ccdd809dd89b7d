package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
	"github.com/gestaorh/gestaorh-backend/internal/domain/repositories"
)

// FuncionarioRepository implementa repositories.FuncionarioRepository
type FuncionarioRepository struct {
	db *gorm.DB
}

// NewFuncionarioRepository cria um novo FuncionarioRepository
func NewFuncionarioRepository(db *gorm.DB) repositories.FuncionarioRepository {
	return &FuncionarioRepository{db: db}
}

func (r *FuncionarioRepository) Create(ctx context.Context, funcionario *entities.Funcionario) (int, error) {
	model := &FuncionarioModel{
		Nome:                 funcionario.Nome,
		Email:                funcionario.Email.String(),
		Senha:                funcionario.Senha,
		RecebeValeTransporte: funcionario.RecebeValeTransporte,
		CargoID:              funcionario.Cargo.ID,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return 0, err
	}

	return model.ID, nil
}

func (r *FuncionarioRepository) FindAll(ctx context.Context) ([]*entities.Funcionario, error) {
	var models []*FuncionarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Cargo").Order("idFuncionario").Find(&models).Error; err != nil {
		return nil, err
	}

	return toFuncionarioEntities(models)
}

func (r *FuncionarioRepository) FindByID(ctx context.Context, id int) (*entities.Funcionario, error) {
	var model FuncionarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Cargo").Where("idFuncionario = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toFuncionarioEntity(&model)
}

func (r *FuncionarioRepository) FindByEmail(ctx context.Context, email string) (*entities.Funcionario, error) {
	var model FuncionarioModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Cargo").Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toFuncionarioEntity(&model)
}

// Update retorna true se o id existe, mesmo quando os valores enviados
// são idênticos aos gravados (a conexão usa clientFoundRows=true).
func (r *FuncionarioRepository) Update(ctx context.Context, funcionario *entities.Funcionario) (bool, error) {
	db := dbFromContext(ctx, r.db)

	result := db.Model(&FuncionarioModel{}).
		Where("idFuncionario = ?", funcionario.ID).
		Updates(map[string]any{
			"nomeFuncionario":      funcionario.Nome,
			"email":                funcionario.Email.String(),
			"senha":                funcionario.Senha,
			"recebeValeTransporte": funcionario.RecebeValeTransporte,
			"Cargo_idCargo":        funcionario.Cargo.ID,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *FuncionarioRepository) Delete(ctx context.Context, id int) (bool, error) {
	db := dbFromContext(ctx, r.db)

	result := db.Where("idFuncionario = ?", id).Delete(&FuncionarioModel{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Conversores
func toFuncionarioEntity(model *FuncionarioModel) (*entities.Funcionario, error) {
	funcionario, err := entities.NewFuncionario(
		model.Nome,
		model.Email,
		model.Senha,
		model.RecebeValeTransporte,
		model.CargoID,
	)
	if err != nil {
		return nil, err
	}

	if err := funcionario.SetID(model.ID); err != nil {
		return nil, err
	}

	if model.Cargo != nil {
		if err := funcionario.Cargo.SetNome(model.Cargo.Nome); err != nil {
			return nil, err
		}
	}

	return funcionario, nil
}

func toFuncionarioEntities(models []*FuncionarioModel) ([]*entities.Funcionario, error) {
	funcionarios := make([]*entities.Funcionario, 0, len(models))

	for _, model := range models {
		funcionario, err := toFuncionarioEntity(model)
		if err != nil {
			return nil, err
		}
		funcionarios = append(funcionarios, funcionario)
	}

	return funcionarios, nil
}
