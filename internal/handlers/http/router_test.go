package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
	"github.com/gestaorh/gestaorh-backend/internal/domain/ports"
	"github.com/gestaorh/gestaorh-backend/internal/handlers/middleware"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/config"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/security"
	"github.com/gestaorh/gestaorh-backend/internal/services"
)

// Infra de teste compartilhada pelos testes de handler: repositórios
// em memória e um router montado como em cmd/api/main.go.

type silentLogger struct{}

func (silentLogger) Info(string, ...any)        {}
func (silentLogger) Error(string, ...any)       {}
func (silentLogger) Debug(string, ...any)       {}
func (silentLogger) Warn(string, ...any)        {}
func (l silentLogger) With(...any) ports.Logger { return l }

type fakeUnitOfWork struct{}

func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

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

type fakeFuncionarioRepo struct {
	funcionarios map[int]*entities.Funcionario
	nextID       int
}

func newFakeFuncionarioRepo() *fakeFuncionarioRepo {
	return &fakeFuncionarioRepo{funcionarios: map[int]*entities.Funcionario{}, nextID: 1}
}

func (r *fakeFuncionarioRepo) Create(_ context.Context, funcionario *entities.Funcionario) (int, error) {
	id := r.nextID
	r.nextID++

	copia := *funcionario
	copia.ID = id
	r.funcionarios[id] = &copia
	return id, nil
}

func (r *fakeFuncionarioRepo) FindAll(_ context.Context) ([]*entities.Funcionario, error) {
	result := make([]*entities.Funcionario, 0, len(r.funcionarios))
	for id := 1; id < r.nextID; id++ {
		if funcionario, ok := r.funcionarios[id]; ok {
			result = append(result, funcionario)
		}
	}
	return result, nil
}

func (r *fakeFuncionarioRepo) FindByID(_ context.Context, id int) (*entities.Funcionario, error) {
	funcionario, ok := r.funcionarios[id]
	if !ok {
		return nil, nil
	}
	return funcionario, nil
}

func (r *fakeFuncionarioRepo) FindByEmail(_ context.Context, email string) (*entities.Funcionario, error) {
	for _, funcionario := range r.funcionarios {
		if funcionario.Email.String() == email {
			copia := *funcionario
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeFuncionarioRepo) Update(_ context.Context, funcionario *entities.Funcionario) (bool, error) {
	if _, ok := r.funcionarios[funcionario.ID]; !ok {
		return false, nil
	}
	copia := *funcionario
	r.funcionarios[funcionario.ID] = &copia
	return true, nil
}

func (r *fakeFuncionarioRepo) Delete(_ context.Context, id int) (bool, error) {
	if _, ok := r.funcionarios[id]; !ok {
		return false, nil
	}
	delete(r.funcionarios, id)
	return true, nil
}

type testEnv struct {
	router          *gin.Engine
	tokens          *security.TokenService
	cargoRepo       *fakeCargoRepo
	funcionarioRepo *fakeFuncionarioRepo
}

// newTestEnv monta o router com as mesmas rotas e middlewares de
// cmd/api/main.go, trocando o banco por repositórios em memória
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := silentLogger{}
	tokens := security.NewTokenService(config.JWTConfig{
		Secret:       "chave-de-teste-nao-usar-em-producao",
		Issuer:       "http://localhost",
		Audience:     "http://localhost",
		Subject:      "acesso_sistema",
		ValidityDays: 30,
	})
	hasher := security.NewPasswordHasher()

	cargoRepo := newFakeCargoRepo()
	funcionarioRepo := newFakeFuncionarioRepo()
	uow := fakeUnitOfWork{}

	cargoHandler := NewCargoHandler(services.NewCargoService(cargoRepo, uow, logger))
	funcionarioHandler := NewFuncionarioHandler(
		services.NewFuncionarioService(funcionarioRepo, uow, tokens, hasher, logger))

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))

	v1 := router.Group("/api/v1")

	cargos := v1.Group("/cargos", middleware.Auth(tokens))
	cargos.GET("", cargoHandler.Index)
	cargos.GET("/:idCargo", middleware.ValidateID("idCargo"), cargoHandler.Show)
	cargos.POST("", middleware.ValidateCargoBody(), cargoHandler.Store)
	cargos.PUT("/:idCargo",
		middleware.ValidateID("idCargo"),
		middleware.ValidateCargoBody(),
		cargoHandler.Update)
	cargos.DELETE("/:idCargo", middleware.ValidateID("idCargo"), cargoHandler.Destroy)

	funcionarios := v1.Group("/funcionarios")
	funcionarios.POST("/login", funcionarioHandler.Login)

	protegidas := funcionarios.Group("", middleware.Auth(tokens))
	protegidas.GET("", funcionarioHandler.Index)
	protegidas.GET("/:idFuncionario", middleware.ValidateID("idFuncionario"), funcionarioHandler.Show)
	protegidas.POST("", middleware.ValidateFuncionarioBody(), funcionarioHandler.Store)
	protegidas.PUT("/:idFuncionario",
		middleware.ValidateID("idFuncionario"),
		middleware.ValidateFuncionarioBody(),
		funcionarioHandler.Update)
	protegidas.DELETE("/:idFuncionario", middleware.ValidateID("idFuncionario"), funcionarioHandler.Destroy)

	return &testEnv{
		router:          router,
		tokens:          tokens,
		cargoRepo:       cargoRepo,
		funcionarioRepo: funcionarioRepo,
	}
}

// validToken emite um token aceito pelas rotas protegidas
func (e *testEnv) validToken(t *testing.T) string {
	t.Helper()

	token, err := e.tokens.Issue(map[string]string{
		"email":         "admin@empresa.com",
		"role":          "Administrador",
		"name":          "Admin",
		"idFuncionario": "1",
	})
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
