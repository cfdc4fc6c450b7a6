package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"gofulfill/internal/domain"
)

// AppError é a interface central para todos os erros customizados do GoFulfill.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa entrada inválida: campo ausente/malformado, limite de negócio
// violado ou incompatibilidade de capacidade/estoque. Nunca é repetido pelo chamador.
type ValidationError struct {
	Msg   string
	Field string // Campo de entrada envolvido, quando houver
	Limit string // Regra de limite violada, quando houver
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusUnprocessableEntity } // 422
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldError cria um erro de validação associado a um campo de entrada.
func NewFieldError(field, msg string) AppError {
	return &ValidationError{Msg: msg, Field: field}
}

// NewLimitError cria um erro de validação para um limite de cardinalidade ou capacidade atingido.
func NewLimitError(limit, msg string) AppError {
	return &ValidationError{Msg: msg, Limit: limit}
}

// BadRequestError representa um payload que nem chegou a ser interpretado (JSON malformado).
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string    { return fmt.Sprintf("Requisição inválida: %s", e.Msg) }
func (e *BadRequestError) Category() string { return "BAD_REQUEST" }
func (e *BadRequestError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *BadRequestError) Unwrap() error    { return nil }

// NewBadRequestError cria um novo erro de requisição malformada.
func NewBadRequestError(msg string) AppError {
	return &BadRequestError{Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg      string
	Resource string // Entidade ausente (warehouse, product, store, fulfillment_assignment)
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// NewResourceNotFoundError cria um erro de recurso não encontrado identificando a entidade.
func NewResourceNotFoundError(resource, msg string) AppError {
	return &NotFoundError{Msg: msg, Resource: resource}
}

// ConflictError representa um conflito de estado (e.g., chave duplicada, atribuição repetida).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Helpers ---

// As devolve o AppError presente na cadeia de err, se houver.
func As(err error) (AppError, bool) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound informa se err (ou algo que ele encapsula) é um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// Wrap preserva erros já tipados e encapsula os demais como InternalError.
// Nenhuma falha de colaborador é silenciada.
func Wrap(msg string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return NewInternalError(msg, err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	if appErr, ok := As(err); ok {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}

// NewErrorResponse monta o corpo padronizado de erro, incluindo campo, limite ou recurso.
func NewErrorResponse(err error) domain.ErrorResponse {
	status, category, message := MapToHTTPStatus(err)
	resp := domain.ErrorResponse{Code: status, Category: category, Message: message}

	var ve *ValidationError
	if stderrors.As(err, &ve) {
		resp.Field = ve.Field
		resp.Limit = ve.Limit
	}
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		resp.Resource = nf.Resource
	}
	return resp
}
