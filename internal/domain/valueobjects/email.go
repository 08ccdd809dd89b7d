package valueobjects

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmailMuitoLongo = errors.New("Email deve ter no máximo 64 caracteres")
)

// Email é um value object para o email do funcionário.
// O campo é opcional no domínio: valor em branco vira o email vazio.
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(email)

	if email == "" {
		return Email{}, nil
	}

	if utf8.RuneCountInString(email) > 64 {
		return Email{}, ErrEmailMuitoLongo
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// IsEmpty indica se o email não foi informado
func (e Email) IsEmpty() bool {
	return e.value == ""
}
