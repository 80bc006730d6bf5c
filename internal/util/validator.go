package util

import (
	"errors"
	"net/mail"
	"strings"
)

// ValidationError marca falhas de validação de entrada, rejeitadas antes de
// qualquer escrita. Handlers mapeiam este tipo para 400.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

// Invalid cria um erro de validação com a mensagem dada.
func Invalid(msg string) error {
	return ValidationError{msg: msg}
}

// IsValidation informa se err é (ou embrulha) um erro de validação.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ValidateEmail retorna erro para e-mails inválidos.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return Invalid("email obrigatório")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Invalid("email inválido")
	}
	return nil
}

// ValidatePassword verifica requisitos mínimos de senha.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return Invalid("senha deve ter pelo menos 8 caracteres")
	}
	return nil
}

// RequireString garante string não vazia.
func RequireString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return Invalid(field + " obrigatório")
	}
	return nil
}
