package dto

import (
	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
)

// FuncionarioRequest representa o corpo {"funcionario": {...}}
type FuncionarioRequest struct {
	Funcionario *FuncionarioPayload `json:"funcionario" validate:"required"`
}

// FuncionarioPayload são os campos do funcionário aceitos na criação/atualização.
// RecebeValeTransporte é ponteiro para distinguir 0 de campo ausente.
type FuncionarioPayload struct {
	NomeFuncionario      string    `json:"nomeFuncionario" validate:"required"`
	Email                string    `json:"email" validate:"required"`
	Senha                string    `json:"senha" validate:"required"`
	RecebeValeTransporte *int      `json:"recebeValeTransporte" validate:"required,oneof=0 1"`
	Cargo                *CargoRef `json:"cargo" validate:"required"`
}

// CargoRef referencia o cargo do funcionário pelo id
type CargoRef struct {
	IDCargo int `json:"idCargo" validate:"required,gt=0"`
}

// LoginRequest representa o corpo {"funcionario": {"email", "senha"}}
type LoginRequest struct {
	Funcionario LoginPayload `json:"funcionario"`
}

// LoginPayload são as credenciais de login
type LoginPayload struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// FuncionarioResponse representa um funcionário na resposta da API.
// A senha (e o hash) nunca aparecem na resposta.
type FuncionarioResponse struct {
	IDFuncionario        int           `json:"idFuncionario"`
	NomeFuncionario      string        `json:"nomeFuncionario"`
	Email                string        `json:"email"`
	RecebeValeTransporte int           `json:"recebeValeTransporte"`
	Cargo                CargoResponse `json:"cargo"`
}

// LoginResponse representa o corpo de data do login: {user:{funcionario}, token}
type LoginResponse struct {
	User  LoginUser `json:"user"`
	Token string    `json:"token"`
}

// LoginUser embrulha a projeção do funcionário autenticado
type LoginUser struct {
	Funcionario LoginFuncionario `json:"funcionario"`
}

// LoginFuncionario é a projeção reduzida retornada no login
type LoginFuncionario struct {
	Email         string `json:"email"`
	Role          string `json:"role"`
	Name          string `json:"name"`
	IDFuncionario int    `json:"idFuncionario"`
}

// ToFuncionarioResponse converte uma entidade Funcionario para FuncionarioResponse
func ToFuncionarioResponse(funcionario *entities.Funcionario) FuncionarioResponse {
	return FuncionarioResponse{
		IDFuncionario:        funcionario.ID,
		NomeFuncionario:      funcionario.Nome,
		Email:                funcionario.Email.String(),
		RecebeValeTransporte: funcionario.RecebeValeTransporte,
		Cargo:                ToCargoResponse(&funcionario.Cargo),
	}
}

// ToFuncionarioResponses converte uma lista de entidades Funcionario
func ToFuncionarioResponses(funcionarios []*entities.Funcionario) []FuncionarioResponse {
	responses := make([]FuncionarioResponse, 0, len(funcionarios))
	for _, funcionario := range funcionarios {
		responses = append(responses, ToFuncionarioResponse(funcionario))
	}
	return responses
}
