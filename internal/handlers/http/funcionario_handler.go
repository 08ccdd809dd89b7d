package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gestaorh/gestaorh-backend/internal/handlers/dto"
	"github.com/gestaorh/gestaorh-backend/internal/services"
)

// FuncionarioHandler lida com requisições HTTP relacionadas a funcionários
type FuncionarioHandler struct {
	funcionarioService *services.FuncionarioService
}

// NewFuncionarioHandler cria um novo FuncionarioHandler
func NewFuncionarioHandler(funcionarioService *services.FuncionarioService) *FuncionarioHandler {
	return &FuncionarioHandler{
		funcionarioService: funcionarioService,
	}
}

// Index lista todos os funcionários com o cargo associado
func (h *FuncionarioHandler) Index(c *gin.Context) {
	funcionarios, err := h.funcionarioService.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(
		"Busca realizada com sucesso",
		gin.H{"funcionarios": dto.ToFuncionarioResponses(funcionarios)},
	))
}

// Show busca um funcionário por id. Id não encontrado devolve a lista vazia.
func (h *FuncionarioHandler) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("idFuncionario"))

	funcionario, err := h.funcionarioService.FindByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	funcionarios := []dto.FuncionarioResponse{}
	if funcionario != nil {
		funcionarios = append(funcionarios, dto.ToFuncionarioResponse(funcionario))
	}

	c.JSON(http.StatusOK, dto.Success(
		"Executado com sucesso",
		gin.H{"funcionarios": funcionarios},
	))
}

// Store cria um novo funcionário
func (h *FuncionarioHandler) Store(c *gin.Context) {
	var req dto.FuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	funcionario, err := h.funcionarioService.CreateFuncionario(c.Request.Context(), toInput(req.Funcionario))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(
		"Cadastro realizado com sucesso",
		gin.H{"funcionarios": []dto.FuncionarioResponse{dto.ToFuncionarioResponse(funcionario)}},
	))
}

// Update atualiza um funcionário existente
func (h *FuncionarioHandler) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("idFuncionario"))

	var req dto.FuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	atualizou, err := h.funcionarioService.UpdateFuncionario(c.Request.Context(), id, toInput(req.Funcionario))
	if err != nil {
		fail(c, err)
		return
	}

	funcionarios := []dto.FuncionarioResponse{{
		IDFuncionario:        id,
		NomeFuncionario:      req.Funcionario.NomeFuncionario,
		Email:                req.Funcionario.Email,
		RecebeValeTransporte: *req.Funcionario.RecebeValeTransporte,
		Cargo:                dto.CargoResponse{IDCargo: req.Funcionario.Cargo.IDCargo},
	}}

	if !atualizou {
		c.JSON(http.StatusNotFound, dto.NotFound(
			"Funcionário não encontrado para atualização",
			gin.H{"funcionarios": funcionarios},
		))
		return
	}

	c.JSON(http.StatusOK, dto.Success(
		"Atualizado com sucesso",
		gin.H{"funcionarios": funcionarios},
	))
}

// Destroy remove um funcionário
func (h *FuncionarioHandler) Destroy(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("idFuncionario"))

	excluiu, err := h.funcionarioService.DeleteFuncionario(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}

	if !excluiu {
		c.JSON(http.StatusNotFound, dto.NotFound(
			"Funcionário não encontrado para exclusão",
			gin.H{"funcionarios": []dto.FuncionarioResponse{{IDFuncionario: id}}},
		))
		return
	}

	c.Status(http.StatusNoContent)
}

// Login autentica um funcionário e retorna a projeção do usuário
// autenticado junto com o token JWT
func (h *FuncionarioHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	resultado, err := h.funcionarioService.Login(
		c.Request.Context(),
		req.Funcionario.Email,
		req.Funcionario.Senha,
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(
		"Login efetuado com sucesso!",
		dto.LoginResponse{
			User: dto.LoginUser{
				Funcionario: dto.LoginFuncionario{
					Email:         resultado.Funcionario.Email.String(),
					Role:          resultado.Funcionario.Cargo.Nome,
					Name:          resultado.Funcionario.Nome,
					IDFuncionario: resultado.Funcionario.ID,
				},
			},
			Token: resultado.Token,
		},
	))
}

// toInput converte o payload validado para o input da camada de serviço
func toInput(payload *dto.FuncionarioPayload) services.CreateFuncionarioInput {
	return services.CreateFuncionarioInput{
		Nome:                 payload.NomeFuncionario,
		Email:                payload.Email,
		Senha:                payload.Senha,
		RecebeValeTransporte: *payload.RecebeValeTransporte,
		CargoID:              payload.Cargo.IDCargo,
	}
}
