package apperr

import (
	"errors"
	"fmt"
)

// Tipos de erro reconhecidos pela aplicação
var (
	// ErrNotFound ocorre quando o registro procurado não existe
	ErrNotFound = errors.New("registro não encontrado")

	// ErrConflict ocorre ao criar um registro com identidade já existente
	ErrConflict = errors.New("registro já existe")

	// ErrReferentialIntegrity ocorre ao remover um registro ainda referenciado
	ErrReferentialIntegrity = errors.New("registro referenciado por outros registros")

	// ErrValidation ocorre quando os dados informados são inválidos
	ErrValidation = errors.New("dados inválidos")
)

// Error associa uma mensagem legível a um dos tipos de erro acima
type Error struct {
	Kind    error
	Message string
	Err     error
}

// Error implementa a interface error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite que errors.Is reconheça tanto o tipo quanto a causa
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NotFound cria um erro do tipo ErrNotFound
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict cria um erro do tipo ErrConflict
func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// ReferentialIntegrity cria um erro do tipo ErrReferentialIntegrity
func ReferentialIntegrity(format string, args ...interface{}) error {
	return &Error{Kind: ErrReferentialIntegrity, Message: fmt.Sprintf(format, args...)}
}

// Validation cria um erro do tipo ErrValidation
func Validation(format string, args ...interface{}) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// Wrap associa uma causa a um tipo de erro
func Wrap(kind, cause error, message string) error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Message retorna a mensagem destinada ao usuário, sem a causa interna
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
