package entities

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gestaorh/gestaorh-backend/internal/domain/valueobjects"
)

// Funcionario representa um funcionário da empresa.
// O funcionário possui exatamente um Cargo (composição, referência própria).
type Funcionario struct {
	ID                   int
	Nome                 string
	Email                valueobjects.Email
	Senha                string
	RecebeValeTransporte int
	Cargo                Cargo
}

// NewFuncionario cria um Funcionario validando todos os campos
func NewFuncionario(nome, email, senha string, recebeValeTransporte, cargoID int) (*Funcionario, error) {
	funcionario := &Funcionario{}

	if err := funcionario.SetNome(nome); err != nil {
		return nil, err
	}
	if err := funcionario.SetEmail(email); err != nil {
		return nil, err
	}
	if err := funcionario.SetSenha(senha); err != nil {
		return nil, err
	}
	if err := funcionario.SetRecebeValeTransporte(recebeValeTransporte); err != nil {
		return nil, err
	}
	if err := funcionario.Cargo.SetID(cargoID); err != nil {
		return nil, err
	}

	return funcionario, nil
}

// SetID define o identificador do funcionário
// Regra: número inteiro positivo
func (f *Funcionario) SetID(id int) error {
	if id <= 0 {
		return errors.New("IdFuncionario deve ser maior que zero")
	}
	f.ID = id
	return nil
}

// SetNome define o nome do funcionário
// Regra: opcional; se fornecido, entre 3 e 128 caracteres (após trim)
func (f *Funcionario) SetNome(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		f.Nome = ""
		return nil
	}

	// Limites contam caracteres, não bytes
	if utf8.RuneCountInString(nome) < 3 {
		return errors.New("NomeFuncionario deve ter pelo menos 3 caracteres")
	}
	if utf8.RuneCountInString(nome) > 128 {
		return errors.New("NomeFuncionario deve ter no máximo 128 caracteres")
	}

	f.Nome = nome
	return nil
}

// SetEmail define o email do funcionário
// Regra: opcional; se fornecido, no máximo 64 caracteres
func (f *Funcionario) SetEmail(email string) error {
	value, err := valueobjects.NewEmail(email)
	if err != nil {
		return err
	}
	f.Email = value
	return nil
}

// SetSenha define a senha do funcionário
// Regra: opcional; se fornecida, no máximo 64 caracteres.
// O campo também armazena o hash bcrypt quando carregado do banco,
// por isso o limite de 64 acomoda os 60 caracteres do hash.
func (f *Funcionario) SetSenha(senha string) error {
	senha = strings.TrimSpace(senha)
	if senha == "" {
		f.Senha = ""
		return nil
	}

	if utf8.RuneCountInString(senha) > 64 {
		return errors.New("Senha deve ter no máximo 64 caracteres")
	}

	f.Senha = senha
	return nil
}

// SetRecebeValeTransporte define se o funcionário recebe vale transporte
// Regra: 0 ou 1
func (f *Funcionario) SetRecebeValeTransporte(valor int) error {
	if valor != 0 && valor != 1 {
		return errors.New("O valor de RecebeValeTransporte deve ser 0 ou 1")
	}
	f.RecebeValeTransporte = valor
	return nil
}
