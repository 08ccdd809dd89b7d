package dto

import (
	"github.com/gestaorh/gestaorh-backend/internal/domain/entities"
)

// CargoRequest representa o corpo {"cargo": {"nomeCargo": ...}}
type CargoRequest struct {
	Cargo *CargoPayload `json:"cargo" validate:"required"`
}

// CargoPayload são os campos do cargo aceitos na criação/atualização
type CargoPayload struct {
	NomeCargo string `json:"nomeCargo" validate:"required"`
}

// CargoResponse representa um cargo na resposta da API
type CargoResponse struct {
	IDCargo   int    `json:"idCargo"`
	NomeCargo string `json:"nomeCargo"`
}

// ToCargoResponse converte uma entidade Cargo para CargoResponse
func ToCargoResponse(cargo *entities.Cargo) CargoResponse {
	return CargoResponse{
		IDCargo:   cargo.ID,
		NomeCargo: cargo.Nome,
	}
}

// ToCargoResponses converte uma lista de entidades Cargo.
// Sempre retorna um slice não-nulo para serializar como [] no JSON.
func ToCargoResponses(cargos []*entities.Cargo) []CargoResponse {
	responses := make([]CargoResponse, 0, len(cargos))
	for _, cargo := range cargos {
		responses = append(responses, ToCargoResponse(cargo))
	}
	return responses
}
