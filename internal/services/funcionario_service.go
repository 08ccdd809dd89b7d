package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gestaorh/gestaorh-backend/internal/domain"
	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
	apierrors "github.com/gestaorh/gestaorh-backend/internal/domain/errors"
	"github.com/gestaorh/gestaorh-backend/internal/domain/ports"
	"github.com/gestaorh/gestaorh-backend/internal/domain/repositories"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/security"
)

// CreateFuncionarioInput representa os dados para criar/atualizar um funcionário
type CreateFuncionarioInput struct {
	Nome                 string
	Email                string
	Senha                string
	RecebeValeTransporte int
	CargoID              int
}

// LoginResult combina a projeção do funcionário autenticado (sem a
// senha) com o token emitido. Composição, não herança: o resultado
// do login carrega o funcionário, não o estende.
type LoginResult struct {
	Funcionario *entities.Funcionario
	Token       string
}

// FuncionarioService contém a lógica de negócio para funcionários
type FuncionarioService struct {
	funcionarioRepo repositories.FuncionarioRepository
	uow             domain.UnitOfWork
	tokens          *security.TokenService
	hasher          *security.PasswordHasher
	logger          ports.Logger
}

// NewFuncionarioService cria um novo FuncionarioService
func NewFuncionarioService(
	funcionarioRepo repositories.FuncionarioRepository,
	uow domain.UnitOfWork,
	tokens *security.TokenService,
	hasher *security.PasswordHasher,
	logger ports.Logger,
) *FuncionarioService {
	return &FuncionarioService{
		funcionarioRepo: funcionarioRepo,
		uow:             uow,
		tokens:          tokens,
		hasher:          hasher,
		logger:          logger,
	}
}

// CreateFuncionario cria um novo funcionário.
// Regra de negócio: não permitir emails duplicados. A senha é
// armazenada como hash bcrypt, nunca em claro.
func (s *FuncionarioService) CreateFuncionario(ctx context.Context, input CreateFuncionarioInput) (*entities.Funcionario, error) {
	funcionario, err := entities.NewFuncionario(
		input.Nome, input.Email, input.Senha,
		input.RecebeValeTransporte, input.CargoID,
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info("criando funcionário", "email", funcionario.Email.String())

	hash, err := s.hasher.Hash(funcionario.Senha)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.funcionarioRepo.FindByEmail(txCtx, funcionario.Email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return apierrors.BadRequest(
				"Email já cadastrado",
				fmt.Sprintf("O email %s já está em uso", funcionario.Email.String()),
			)
		}

		senhaOriginal := funcionario.Senha
		funcionario.Senha = hash

		id, err := s.funcionarioRepo.Create(txCtx, funcionario)
		if err != nil {
			funcionario.Senha = senhaOriginal
			return err
		}
		return funcionario.SetID(id)
	})
	if err != nil {
		return nil, err
	}

	return funcionario, nil
}

// FindAll retorna todos os funcionários com o cargo associado
func (s *FuncionarioService) FindAll(ctx context.Context) ([]*entities.Funcionario, error) {
	return s.funcionarioRepo.FindAll(ctx)
}

// FindByID retorna um funcionário pelo id, ou nil se não existir
func (s *FuncionarioService) FindByID(ctx context.Context, id int) (*entities.Funcionario, error) {
	funcionario := &entities.Funcionario{}
	if err := funcionario.SetID(id); err != nil {
		return nil, err
	}
	return s.funcionarioRepo.FindByID(ctx, funcionario.ID)
}

// UpdateFuncionario atualiza um funcionário existente. A senha
// informada é re-hasheada. Retorna false se o id não foi encontrado.
func (s *FuncionarioService) UpdateFuncionario(ctx context.Context, id int, input CreateFuncionarioInput) (bool, error) {
	funcionario, err := entities.NewFuncionario(
		input.Nome, input.Email, input.Senha,
		input.RecebeValeTransporte, input.CargoID,
	)
	if err != nil {
		return false, err
	}
	if err := funcionario.SetID(id); err != nil {
		return false, err
	}

	s.logger.Info("atualizando funcionário", "id", funcionario.ID)

	hash, err := s.hasher.Hash(funcionario.Senha)
	if err != nil {
		return false, err
	}
	funcionario.Senha = hash

	return s.funcionarioRepo.Update(ctx, funcionario)
}

// DeleteFuncionario remove um funcionário pelo id.
// Retorna false se o id não foi encontrado.
func (s *FuncionarioService) DeleteFuncionario(ctx context.Context, id int) (bool, error) {
	funcionario := &entities.Funcionario{}
	if err := funcionario.SetID(id); err != nil {
		return false, err
	}

	s.logger.Info("removendo funcionário", "id", funcionario.ID)

	return s.funcionarioRepo.Delete(ctx, funcionario.ID)
}

// Login autentica um funcionário por email e senha. A mesma mensagem
// genérica cobre email inexistente e senha incorreta, para não
// permitir enumeração de usuários. Em caso de sucesso emite o token
// com as claims de identidade e retorna a projeção sem a senha.
func (s *FuncionarioService) Login(ctx context.Context, email, senha string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	encontrado, err := s.funcionarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if encontrado == nil || !s.hasher.Compare(encontrado.Senha, senha) {
		return nil, apierrors.Unauthorized(
			"Usuário ou senha inválidos",
			map[string]any{"message": "Não foi possível realizar autenticação"},
		)
	}

	token, err := s.tokens.Issue(map[string]string{
		"email":         encontrado.Email.String(),
		"role":          encontrado.Cargo.Nome,
		"name":          encontrado.Nome,
		"idFuncionario": strconv.Itoa(encontrado.ID),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("login realizado", "email", encontrado.Email.String())

	// O hash da senha nunca sai da camada de serviço
	encontrado.Senha = ""

	return &LoginResult{
		Funcionario: encontrado,
		Token:       token,
	}, nil
}
