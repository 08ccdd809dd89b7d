package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
	apierrors "github.com/gestaorh/gestaorh-backend/internal/domain/errors"
	"github.com/gestaorh/gestaorh-backend/internal/domain/ports"
)

// silentLogger descarta todo log durante os testes
type silentLogger struct{}

func (silentLogger) Info(string, ...any)        {}
func (silentLogger) Error(string, ...any)       {}
func (silentLogger) Debug(string, ...any)       {}
func (silentLogger) Warn(string, ...any)        {}
func (l silentLogger) With(...any) ports.Logger { return l }

// fakeUnitOfWork executa fn diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeCargoRepo é um CargoRepository em memória para os testes
type fakeCargoRepo struct {
	cargos map[int]*entities.Cargo
	nextID int
}

func newFakeCargoRepo() *fakeCargoRepo {
	return &fakeCargoRepo{cargos: map[int]*entities.Cargo{}, nextID: 1}
}

func (r *fakeCargoRepo) Create(_ context.Context, cargo *entities.Cargo) (int, error) {
	id := r.nextID
	r.nextID++

	copia := *cargo
	copia.ID = id
	r.cargos[id] = &copia
	return id, nil
}

func (r *fakeCargoRepo) FindAll(_ context.Context) ([]*entities.Cargo, error) {
	result := make([]*entities.Cargo, 0, len(r.cargos))
	for id := 1; id < r.nextID; id++ {
		if cargo, ok := r.cargos[id]; ok {
			result = append(result, cargo)
		}
	}
	return result, nil
}

func (r *fakeCargoRepo) FindByID(_ context.Context, id int) (*entities.Cargo, error) {
	cargo, ok := r.cargos[id]
	if !ok {
		return nil, nil
	}
	return cargo, nil
}

func (r *fakeCargoRepo) FindByNome(_ context.Context, nome string) (*entities.Cargo, error) {
	for _, cargo := range r.cargos {
		if cargo.Nome == nome {
			return cargo, nil
		}
	}
	return nil, nil
}

func (r *fakeCargoRepo) Update(_ context.Context, cargo *entities.Cargo) (bool, error) {
	existente, ok := r.cargos[cargo.ID]
	if !ok {
		return false, nil
	}
	existente.Nome = cargo.Nome
	return true, nil
}

func (r *fakeCargoRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := r.cargos[id]; !ok {
		return false, nil
	}
	delete(r.cargos, id)
	return true, nil
}

func newCargoService(repo *fakeCargoRepo) *CargoService {
	return NewCargoService(repo, fakeUnitOfWork{}, silentLogger{})
}

func TestCargoServiceCreateCargo(t *testing.T) {
	ctx := context.Background()

	t.Run("cria cargo e retorna o id gerado", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		cargo, err := service.CreateCargo(ctx, "Gerente")

		require.NoError(t, err)
		assert.Equal(t, 1, cargo.ID)
		assert.Equal(t, "Gerente", cargo.Nome)
	})

	t.Run("nome duplicado retorna erro 400 sem inserir", func(t *testing.T) {
		repo := newFakeCargoRepo()
		service := newCargoService(repo)

		_, err := service.CreateCargo(ctx, "Gerente")
		require.NoError(t, err)

		_, err = service.CreateCargo(ctx, "Gerente")
		require.Error(t, err)

		resp, ok := apierrors.AsErrorResponse(err)
		require.True(t, ok)
		assert.Equal(t, 400, resp.HTTPCode)
		assert.Equal(t, "Cargo já existe", resp.Message)
		assert.Len(t, repo.cargos, 1)
	})

	t.Run("comparação de duplicado é exata e case-sensitive", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		_, err := service.CreateCargo(ctx, "Gerente")
		require.NoError(t, err)

		_, err = service.CreateCargo(ctx, "gerente")
		assert.NoError(t, err)
	})

	t.Run("nome inválido retorna erro sem consultar o repositório", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		_, err := service.CreateCargo(ctx, "ab")
		assert.Error(t, err)
	})
}

func TestCargoServiceFind(t *testing.T) {
	ctx := context.Background()

	t.Run("FindByID retorna nil quando não existe", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		cargo, err := service.FindByID(ctx, 999)

		require.NoError(t, err)
		assert.Nil(t, cargo)
	})

	t.Run("FindByID rejeita id inválido", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		_, err := service.FindByID(ctx, 0)
		assert.Error(t, err)
	})

	t.Run("FindAll retorna os cargos na ordem de criação", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		_, err := service.CreateCargo(ctx, "Gerente")
		require.NoError(t, err)
		_, err = service.CreateCargo(ctx, "Analista")
		require.NoError(t, err)

		cargos, err := service.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, cargos, 2)
		assert.Equal(t, "Gerente", cargos[0].Nome)
		assert.Equal(t, "Analista", cargos[1].Nome)
	})
}

func TestCargoServiceUpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update existente retorna true", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		cargo, err := service.CreateCargo(ctx, "Gerente")
		require.NoError(t, err)

		atualizou, err := service.UpdateCargo(ctx, cargo.ID, "Supervisor")

		require.NoError(t, err)
		assert.True(t, atualizou)
	})

	t.Run("update de id inexistente retorna false", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		atualizou, err := service.UpdateCargo(ctx, 999, "Supervisor")

		require.NoError(t, err)
		assert.False(t, atualizou)
	})

	t.Run("delete existente retorna true", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		cargo, err := service.CreateCargo(ctx, "Gerente")
		require.NoError(t, err)

		excluiu, err := service.DeleteCargo(ctx, cargo.ID)

		require.NoError(t, err)
		assert.True(t, excluiu)
	})

	t.Run("delete de id inexistente retorna false", func(t *testing.T) {
		service := newCargoService(newFakeCargoRepo())

		excluiu, err := service.DeleteCargo(ctx, 999)

		require.NoError(t, err)
		assert.False(t, excluiu)
	})
}
