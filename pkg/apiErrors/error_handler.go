package apiErrors

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/bmfischer3/stripe-studiobooking-analysis/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidDate         = "VAL_004" // Data fora do formato YYYYMMDD ou do intervalo aceito

	// Erros de consulta (4000-4999)
	ErrNotFound = "NF_001" // Recurso não encontrado

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidDate:         http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go, classificando os erros do domínio
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var dateErr *domain.InvalidDateError
	var queryErr *domain.QueryFailure
	var notFound *domain.NotFoundError

	switch {
	case errors.As(err, &dateErr):
		return APIError{
			Code:    ErrInvalidDate,
			Message: err.Error(),
			Details: map[string]string{"bound": dateErr.Bound, "value": dateErr.Value},
		}
	case errors.Is(err, domain.ErrInvalidFilter):
		return APIError{Code: ErrInvalidFormat, Message: err.Error()}
	case errors.As(err, &notFound):
		return APIError{
			Code:    ErrNotFound,
			Message: err.Error(),
			Details: map[string]string{"resource": notFound.Resource, "key": notFound.Key},
		}
	case errors.As(err, &queryErr):
		code := ErrExternalService
		if queryErr.Retryable {
			code = ErrCommunication
		}
		return APIError{
			Code:    code,
			Message: err.Error(),
			Details: map[string]any{"resource": queryErr.Resource, "retryable": queryErr.Retryable},
		}
	case errors.Is(err, context.DeadlineExceeded):
		return APIError{Code: ErrCommunication, Message: err.Error()}
	}

	return APIError{Code: ErrInternalServer, Message: err.Error()}
}

// WriteDomainError classifica o erro e escreve a resposta correspondente
func WriteDomainError(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}
