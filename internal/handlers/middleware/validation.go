package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/gestaorh/gestaorh-backend/internal/domain/errors"
	"github.com/gestaorh/gestaorh-backend/internal/handlers/dto"
)

var validate = validator.New()

// ValidateID rejeita requisições cujo parâmetro de rota não é um
// inteiro positivo, antes de qualquer lógica de negócio executar.
// Vale igualmente para idCargo e idFuncionario.
func ValidateID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(param)

		if strings.TrimSpace(raw) == "" {
			abortWithError(c, apierrors.BadRequest(
				fmt.Sprintf("O parâmetro '%s' é obrigatório!", param),
				gin.H{"detalhe": "Parâmetro ausente na requisição"},
			))
			return
		}

		id, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, apierrors.BadRequest(
				"ID inválido",
				gin.H{"detalhe": fmt.Sprintf("O parâmetro '%s' deve ser um número inteiro", param)},
			))
			return
		}

		if id <= 0 {
			abortWithError(c, apierrors.BadRequest(
				"ID inválido",
				gin.H{"detalhe": fmt.Sprintf("O parâmetro '%s' deve ser maior que zero", param)},
			))
			return
		}

		c.Next()
	}
}

// ValidateCargoBody valida o corpo {"cargo":{"nomeCargo"}} antes do
// handler. O corpo é restaurado para o bind posterior do handler.
func ValidateCargoBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CargoRequest
		if !readBody(c, &req, "cargo") {
			return
		}

		if req.Cargo == nil {
			abortWithError(c, apierrors.BadRequest(
				"O objeto 'cargo' é obrigatório!",
				gin.H{"detalhe": "Propriedade 'cargo' ausente"},
			))
			return
		}

		req.Cargo.NomeCargo = strings.TrimSpace(req.Cargo.NomeCargo)

		if err := validate.Struct(&req); err != nil {
			abortWithError(c, translateCargoError(err))
			return
		}

		c.Next()
	}
}

// ValidateFuncionarioBody valida o corpo {"funcionario":{...}} antes
// do handler: nome, email e senha presentes, recebeValeTransporte
// presente e 0/1, cargo.idCargo presente e maior que zero.
func ValidateFuncionarioBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FuncionarioRequest
		if !readBody(c, &req, "funcionario") {
			return
		}

		if req.Funcionario == nil {
			abortWithError(c, apierrors.BadRequest(
				"O objeto 'funcionario' é obrigatório!",
				gin.H{"detalhe": "Propriedade 'funcionario' ausente"},
			))
			return
		}

		req.Funcionario.NomeFuncionario = strings.TrimSpace(req.Funcionario.NomeFuncionario)
		req.Funcionario.Email = strings.TrimSpace(req.Funcionario.Email)
		req.Funcionario.Senha = strings.TrimSpace(req.Funcionario.Senha)

		if err := validate.Struct(&req); err != nil {
			abortWithError(c, translateFuncionarioError(err))
			return
		}

		c.Next()
	}
}

// readBody lê o corpo bruto, decodifica em dest e restaura o Request.Body
// para que o handler possa fazer o próprio bind. Retorna false (já
// abortando) em corpo ausente ou JSON malformado.
func readBody(c *gin.Context, dest any, objeto string) bool {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		abortWithError(c, apierrors.BadRequest(
			fmt.Sprintf("O objeto '%s' é obrigatório!", objeto),
			gin.H{"detalhe": "Corpo da requisição ausente ou incorreto"},
		))
		return false
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	if err := json.Unmarshal(raw, dest); err != nil {
		abortWithError(c, apierrors.BadRequest(
			"Formato inválido",
			gin.H{"detalhe": "O corpo da requisição não é um JSON válido"},
		))
		return false
	}

	return true
}

// translateCargoError converte o primeiro erro de validação do cargo
// em um ErrorResponse com mensagem específica do campo
func translateCargoError(err error) *apierrors.ErrorResponse {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Field() {
		case "Cargo":
			return apierrors.BadRequest(
				"O objeto 'cargo' é obrigatório!",
				gin.H{"detalhe": "Propriedade 'cargo' ausente"},
			)
		case "NomeCargo":
			return apierrors.BadRequest(
				"O campo 'nomeCargo' é obrigatório!",
				gin.H{"detalhe": "Campo vazio ou não informado"},
			)
		}
	}
	return apierrors.BadRequest("Formato inválido", gin.H{"detalhe": err.Error()})
}

// translateFuncionarioError converte o primeiro erro de validação do
// funcionário em um ErrorResponse com mensagem específica do campo
func translateFuncionarioError(err error) *apierrors.ErrorResponse {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Field() {
		case "Funcionario":
			return apierrors.BadRequest(
				"O objeto 'funcionario' é obrigatório!",
				gin.H{"detalhe": "Propriedade 'funcionario' ausente"},
			)
		case "NomeFuncionario":
			return apierrors.BadRequest(
				"O campo 'nomeFuncionario' é obrigatório!",
				gin.H{"detalhe": "Campo vazio ou não informado"},
			)
		case "Email":
			return apierrors.BadRequest(
				"O campo 'email' é obrigatório!",
				gin.H{"detalhe": "Campo vazio ou não informado"},
			)
		case "Senha":
			return apierrors.BadRequest(
				"O campo 'senha' é obrigatório!",
				gin.H{"detalhe": "Campo vazio ou não informado"},
			)
		case "RecebeValeTransporte":
			return apierrors.BadRequest(
				"O campo 'recebeValeTransporte' é obrigatório!",
				gin.H{"detalhe": "Informe 0 ou 1"},
			)
		case "Cargo":
			return apierrors.BadRequest(
				"O objeto 'cargo' é obrigatório!",
				gin.H{"detalhe": "Propriedade 'cargo' ausente"},
			)
		case "IDCargo":
			return apierrors.BadRequest(
				"O campo 'cargo.idCargo' é obrigatório!",
				gin.H{"detalhe": "Informe um número inteiro maior que zero"},
			)
		}
	}
	return apierrors.BadRequest("Formato inválido", gin.H{"detalhe": err.Error()})
}
