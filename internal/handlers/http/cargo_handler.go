package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gestaorh/gestaorh-backend/internal/handlers/dto"
	"github.com/gestaorh/gestaorh-backend/internal/services"
)

// CargoHandler lida com requisições HTTP relacionadas a cargos
type CargoHandler struct {
	cargoService *services.CargoService
}

// NewCargoHandler cria um novo CargoHandler
func NewCargoHandler(cargoService *services.CargoService) *CargoHandler {
	return &CargoHandler{
		cargoService: cargoService,
	}
}

// Index lista todos os cargos
func (h *CargoHandler) Index(c *gin.Context) {
	cargos, err := h.cargoService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(
		"Busca realizada com sucesso",
		gin.H{"cargos": dto.ToCargoResponses(cargos)},
	))
}

// Show busca um cargo por id. Id não encontrado devolve a lista vazia.
func (h *CargoHandler) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("idCargo"))

	cargo, err := h.cargoService.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	cargos := []dto.CargoResponse{}
	if cargo != nil {
		cargos = append(cargos, dto.ToCargoResponse(cargo))
	}

	c.JSON(http.StatusOK, dto.Success(
		"Executado com sucesso",
		gin.H{"cargos": cargos},
	))
}

// Store cria um novo cargo
func (h *CargoHandler) Store(c *gin.Context) {
	var req dto.CargoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	cargo, err := h.cargoService.CreateCargo(c.Request.Context(), req.Cargo.NomeCargo)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(
		"Cadastro realizado com sucesso",
		gin.H{"cargos": []dto.CargoResponse{dto.ToCargoResponse(cargo)}},
	))
}

// Update atualiza um cargo existente
func (h *CargoHandler) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("idCargo"))

	var req dto.CargoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	atualizou, err := h.cargoService.UpdateCargo(c.Request.Context(), id, req.Cargo.NomeCargo)
	if err != nil {
		fail(c, err)
		return
	}

	cargos := []dto.CargoResponse{{IDCargo: id, NomeCargo: req.Cargo.NomeCargo}}

	if !atualizou {
		c.JSON(http.StatusNotFound, dto.NotFound(
			"Cargo não encontrado para atualização",
			gin.H{"cargos": cargos},
		))
		return
	}

	c.JSON(http.StatusOK, dto.Success(
		"Atualizado com sucesso",
		gin.H{"cargos": cargos},
	))
}

// Destroy remove um cargo
func (h *CargoHandler) Destroy(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("idCargo"))

	excluiu, err := h.cargoService.DeleteCargo(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	if !excluiu {
		c.JSON(http.StatusNotFound, dto.NotFound(
			"Cargo não encontrado para exclusão",
			gin.H{"cargos": []dto.CargoResponse{{IDCargo: id}}},
		))
		return
	}

	c.Status(http.StatusNoContent)
}

// fail registra o erro no contexto para o middleware de erros normalizar
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
