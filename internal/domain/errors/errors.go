package errors

import (
	"fmt"
	"net/http"

	"dashbi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Tenant-related errors
	ErrEmpresaInvalida = NewBaseError(
		http.StatusBadRequest,
		"EMPRESA_INVALIDA",
		"EmpresaID é obrigatório e deve ser um número positivo",
		"",
	)

	ErrEmpresaNaoEncontrada = NewBaseError(
		http.StatusNotFound,
		"EMPRESA_NAO_ENCONTRADA",
		"Empresa não encontrada",
		"",
	)

	// Integration-related errors
	ErrIntegracaoNaoConfigurada = NewBaseError(
		http.StatusBadRequest,
		"INTEGRACAO_NAO_CONFIGURADA",
		"Integração não configurada ou tokens ausentes",
		"",
	)

	ErrEstadoOAuthInvalido = NewBaseError(
		http.StatusBadRequest,
		"ESTADO_OAUTH_INVALIDO",
		"Código ou state inválido no retorno da autorização",
		"",
	)

	// User/authentication-related errors
	ErrCredenciaisInvalidas = NewBaseError(
		http.StatusUnauthorized,
		"CREDENCIAIS_INVALIDAS",
		"E-mail ou senha incorretos",
		"",
	)

	ErrNaoAutorizado = NewBaseError(
		http.StatusUnauthorized,
		"NAO_AUTORIZADO",
		"Não autorizado",
		"",
	)

	ErrUsuarioNaoEncontrado = NewBaseError(
		http.StatusNotFound,
		"USUARIO_NAO_ENCONTRADO",
		"Usuário não encontrado",
		"",
	)

	// Two-factor errors
	ErrTwoFactorNaoIniciado = NewBaseError(
		http.StatusBadRequest,
		"TWO_FACTOR_NAO_INICIADO",
		"Configuração de 2FA não iniciada",
		"",
	)

	ErrTwoFactorJaAtivado = NewBaseError(
		http.StatusBadRequest,
		"TWO_FACTOR_JA_ATIVADO",
		"2FA já está ativado para esta conta",
		"",
	)

	ErrTwoFactorDesativado = NewBaseError(
		http.StatusBadRequest,
		"TWO_FACTOR_DESATIVADO",
		"2FA já está desativado",
		"",
	)

	ErrTwoFactorCodigoInvalido = NewBaseError(
		http.StatusBadRequest,
		"TWO_FACTOR_CODIGO_INVALIDO",
		"Código incorreto",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)
)

// TokenRefreshError represents a rejected refresh-token exchange. The vendor
// payload is carried verbatim so operators can see exactly what Conta Azul
// answered. The stored token pair is left untouched when this is returned.
type TokenRefreshError struct {
	VendorBody string
}

// NewTokenRefreshError creates a refresh failure carrying the vendor's error payload
func NewTokenRefreshError(vendorBody string) AppError {
	return &TokenRefreshError{VendorBody: vendorBody}
}

// Error implements the error interface
func (e *TokenRefreshError) Error() string {
	return "falha ao renovar token Conta Azul: " + e.VendorBody
}

// HTTPCode returns the HTTP status code
func (e *TokenRefreshError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *TokenRefreshError) ErrorCode() string {
	return "TOKEN_REFRESH_FALHOU"
}

// Message returns the user-friendly error message
func (e *TokenRefreshError) Message() string {
	return "Falha ao renovar token Conta Azul"
}

// Details returns detailed error information
func (e *TokenRefreshError) Details() string {
	return e.VendorBody
}

// ContaAzulAPIError represents a non-2xx answer from a Conta Azul collection
// endpoint. It aborts the whole sync run; pages already reconciled remain.
type ContaAzulAPIError struct {
	StatusCode int
	Body       string
}

// NewContaAzulAPIError creates an upstream API error with status and body
func NewContaAzulAPIError(statusCode int, body string) AppError {
	return &ContaAzulAPIError{StatusCode: statusCode, Body: body}
}

// Error implements the error interface
func (e *ContaAzulAPIError) Error() string {
	return fmt.Sprintf("erro na API Conta Azul: %d - %s", e.StatusCode, e.Body)
}

// HTTPCode returns the HTTP status code
func (e *ContaAzulAPIError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ContaAzulAPIError) ErrorCode() string {
	return "CONTA_AZUL_API"
}

// Message returns the user-friendly error message
func (e *ContaAzulAPIError) Message() string {
	return "Erro na API Conta Azul"
}

// Details returns detailed error information
func (e *ContaAzulAPIError) Details() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Body)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha na execução do banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
