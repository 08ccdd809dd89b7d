package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/gestaorh/gestaorh-backend/internal/domain/errors"
	"github.com/gestaorh/gestaorh-backend/internal/infrastructure/security"
)

const (
	// EmailContextKey guarda o email autenticado no contexto da requisição
	EmailContextKey = "email"
	// IDFuncionarioContextKey guarda o id do funcionário autenticado
	IDFuncionarioContextKey = "idFuncionario"
	// RoleContextKey guarda o nome do cargo do funcionário autenticado
	RoleContextKey = "role"
)

// Auth protege rotas exigindo um bearer token válido. Em caso de
// sucesso as claims decodificadas ficam disponíveis no contexto da
// requisição, nunca em estado global.
func Auth(tokens *security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if strings.TrimSpace(authHeader) == "" {
			abortWithError(c, apierrors.Unauthorized(
				"Cabeçalho 'Authorization' ausente",
				gin.H{"detalhe": "Envie o token no formato 'Bearer <token>'"},
			))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(authHeader), "Bearer"))
		if token == "" {
			abortWithError(c, apierrors.Unauthorized(
				"Token JWT vazio ou inválido",
				gin.H{"detalhe": "Nenhum token encontrado após o prefixo 'Bearer'"},
			))
			return
		}

		claims, ok := tokens.Verify(token)
		if !ok {
			abortWithError(c, apierrors.Unauthorized(
				"Token inválido ou expirado",
				gin.H{"detalhe": "Não foi possível validar o token informado"},
			))
			return
		}

		c.Set(EmailContextKey, claims.Email)
		c.Set(IDFuncionarioContextKey, claims.IDFuncionario)
		c.Set(RoleContextKey, claims.Role)

		c.Next()
	}
}

// abortWithError registra o erro tipado e interrompe a pipeline;
// o ErrorHandler transforma o erro no envelope de resposta.
func abortWithError(c *gin.Context, err *apierrors.ErrorResponse) {
	_ = c.Error(err)
	c.Abort()
}
