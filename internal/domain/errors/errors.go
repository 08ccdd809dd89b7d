package errors

import (
	"errors"
	"net/http"
)

// ErrorResponse é o erro tipado padronizado da aplicação.
// Carrega o código HTTP, a mensagem amigável e um detalhe estruturado.
// É criado no ponto da falha (filtro, serviço ou handler), propagado
// sem modificação pela pilha e consumido uma única vez pelo middleware
// de tratamento de erros.
type ErrorResponse struct {
	HTTPCode int
	Message  string
	Detail   any
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// New cria um ErrorResponse com código HTTP, mensagem e detalhes
func New(httpCode int, message string, detail any) *ErrorResponse {
	return &ErrorResponse{
		HTTPCode: httpCode,
		Message:  message,
		Detail:   detail,
	}
}

// BadRequest cria um erro 400 (validação ou regra de negócio violada)
func BadRequest(message string, detail any) *ErrorResponse {
	return New(http.StatusBadRequest, message, detail)
}

// Unauthorized cria um erro 401 (token ou credenciais inválidas)
func Unauthorized(message string, detail any) *ErrorResponse {
	return New(http.StatusUnauthorized, message, detail)
}

// AsErrorResponse extrai um *ErrorResponse de uma cadeia de erros
func AsErrorResponse(err error) (*ErrorResponse, bool) {
	var resp *ErrorResponse
	if errors.As(err, &resp) {
		return resp, true
	}
	return nil, false
}
