package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found", NotFound("produto %d não encontrado", 7), ErrNotFound},
		{"conflict", Conflict("produto %d já existe", 7), ErrConflict},
		{"referential", ReferentialIntegrity("unidade %d vendida", 3), ErrReferentialIntegrity},
		{"validation", Validation("quantidade inválida"), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Fatalf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			wrapped := fmt.Errorf("camada externa: %w", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Fatalf("kind lost after wrapping: %v", wrapped)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key value")
	err := Wrap(ErrConflict, cause, "usuário já cadastrado")

	if !errors.Is(err, ErrConflict) {
		t.Fatal("expected ErrConflict")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
	if got := Message(err); got != "usuário já cadastrado" {
		t.Errorf("Message() = %q", got)
	}
}

func TestMessageFallsBackToError(t *testing.T) {
	err := errors.New("falha genérica")
	if got := Message(err); got != "falha genérica" {
		t.Errorf("Message() = %q", got)
	}
}
