package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/gestaorh/gestaorh-backend/internal/domain/errors"
	"github.com/gestaorh/gestaorh-backend/internal/domain/ports"
	"github.com/gestaorh/gestaorh-backend/internal/handlers/dto"
)

// ErrorHandler é o ponto único onde qualquer falha vira o envelope
// JSON visível ao cliente. Erros tipados (ErrorResponse) usam o status
// e o detalhe que carregam; qualquer outra falha (incluindo panic)
// vira 400 com mensagem genérica e o texto do erro em error.message.
// Nenhum stack trace é exposto.
func ErrorHandler(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recuperado no middleware de erros",
					"path", c.Request.URL.Path,
					"panic", fmt.Sprint(r),
				)
				if !c.Writer.Written() {
					c.AbortWithStatusJSON(http.StatusBadRequest, dto.Failure(
						"Ocorreu um erro interno no servidor",
						fmt.Sprint(r),
					))
				}
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		if resp, ok := apierrors.AsErrorResponse(err); ok {
			logger.Warn("requisição falhou",
				"path", c.Request.URL.Path,
				"status", resp.HTTPCode,
				"message", resp.Message,
			)
			c.JSON(resp.HTTPCode, dto.Failure(resp.Message, resp.Detail))
			return
		}

		logger.Error("erro não tratado",
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)
		c.JSON(http.StatusBadRequest, dto.Failure(
			"Ocorreu um erro interno no servidor",
			err.Error(),
		))
	}
}
