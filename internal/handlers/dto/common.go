package dto

// Envelope é o formato uniforme de toda resposta da API:
// {success, message, data} em caso de sucesso e
// {success:false, message, error:{message}} em caso de falha.
type Envelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carrega o detalhe estruturado de uma falha
type ErrorDetail struct {
	Message any `json:"message"`
}

// Success cria o envelope de sucesso
func Success(message string, data any) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Failure cria o envelope de falha com detalhe estruturado
func Failure(message string, detail any) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Error:   &ErrorDetail{Message: detail},
	}
}

// NotFound cria o envelope de falha que ainda carrega os dados
// enviados (usado nos 404 de update/delete)
func NotFound(message string, data any) Envelope {
	return Envelope{
		Success: false,
		Message: message,
		Data:    data,
	}
}
