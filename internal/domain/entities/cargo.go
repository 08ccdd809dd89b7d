package entities

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Cargo representa um cargo (função) da empresa
type Cargo struct {
	ID   int
	Nome string
}

// NewCargo cria um Cargo validando o nome
func NewCargo(nome string) (*Cargo, error) {
	cargo := &Cargo{}
	if err := cargo.SetNome(nome); err != nil {
		return nil, err
	}
	return cargo, nil
}

// SetID define o identificador do cargo
// Regra: número inteiro positivo
func (c *Cargo) SetID(id int) error {
	if id <= 0 {
		return errors.New("IdCargo deve ser maior que zero")
	}
	c.ID = id
	return nil
}

// SetNome define o nome do cargo
// Regra: string não vazia, entre 3 e 64 caracteres (após trim)
func (c *Cargo) SetNome(nome string) error {
	nome = strings.TrimSpace(nome)

	if nome == "" {
		return errors.New("NomeCargo não pode ser nulo ou vazio")
	}
	// Limites contam caracteres, não bytes: nomes acentuados não
	// podem estourar o limite antes da hora
	if utf8.RuneCountInString(nome) < 3 {
		return errors.New("NomeCargo deve ter pelo menos 3 caracteres")
	}
	if utf8.RuneCountInString(nome) > 64 {
		return errors.New("NomeCargo deve ter no máximo 64 caracteres")
	}

	c.Nome = nome
	return nil
}

// Validate valida regras de negócio da entidade Cargo
func (c *Cargo) Validate() error {
	nome := strings.TrimSpace(c.Nome)
	if tamanho := utf8.RuneCountInString(nome); nome == "" || tamanho < 3 || tamanho > 64 {
		return errors.New("NomeCargo deve ter entre 3 e 64 caracteres")
	}
	return nil
}
