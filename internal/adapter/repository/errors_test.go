package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
)

func TestTranslate(t *testing.T) {
	msg := messages{
		notFound:  "produto não encontrado",
		conflict:  "produto já existe",
		reference: "produto em uso",
	}

	tests := []struct {
		name        string
		err         error
		msg         messages
		wantKind    error
		wantMessage string
	}{
		{"no rows", pgx.ErrNoRows, msg, apperr.ErrNotFound, "produto não encontrado"},
		{"no rows embrulhado", fmt.Errorf("scan: %w", pgx.ErrNoRows), msg, apperr.ErrNotFound, "produto não encontrado"},
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation}, msg, apperr.ErrConflict, "produto já existe"},
		{"foreign key violation", &pgconn.PgError{Code: pgForeignKeyViolation}, msg, apperr.ErrReferentialIntegrity, "produto em uso"},
		{"check violation", &pgconn.PgError{Code: pgCheckViolation}, msg, apperr.ErrValidation, "dados inválidos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err, tt.msg)
			if !errors.Is(got, tt.wantKind) {
				t.Fatalf("translate() = %v, want kind %v", got, tt.wantKind)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("translate() perdeu a causa %v", tt.err)
			}
			if m := apperr.Message(got); m != tt.wantMessage {
				t.Errorf("Message() = %q, want %q", m, tt.wantMessage)
			}
		})
	}
}

func TestTranslate_Unmapped(t *testing.T) {
	kinds := []error{apperr.ErrNotFound, apperr.ErrConflict, apperr.ErrReferentialIntegrity, apperr.ErrValidation}

	tests := []struct {
		name string
		err  error
		msg  messages
	}{
		{"erro genérico", errors.New("conexão recusada"), messages{notFound: "x", conflict: "y", reference: "z"}},
		{"código não tratado", &pgconn.PgError{Code: "40001"}, messages{conflict: "y"}},
		{"no rows sem mensagem", pgx.ErrNoRows, messages{}},
		{"unique sem mensagem", &pgconn.PgError{Code: pgUniqueViolation}, messages{}},
		{"foreign key sem mensagem", &pgconn.PgError{Code: pgForeignKeyViolation}, messages{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err, tt.msg)
			if !errors.Is(got, tt.err) {
				t.Fatalf("translate() = %v, want wrapping %v", got, tt.err)
			}
			for _, kind := range kinds {
				if errors.Is(got, kind) {
					t.Errorf("translate() = %v, não deveria ser %v", got, kind)
				}
			}
		})
	}

	if err := translate(nil, messages{notFound: "x"}); err != nil {
		t.Errorf("translate(nil) = %v, want nil", err)
	}
}

func TestNotFoundIfNone(t *testing.T) {
	err := notFoundIfNone(pgconn.NewCommandTag("DELETE 0"), "unidade 7 não encontrada")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("erro = %v, want ErrNotFound", err)
	}
	if m := apperr.Message(err); m != "unidade 7 não encontrada" {
		t.Errorf("Message() = %q", m)
	}

	if err := notFoundIfNone(pgconn.NewCommandTag("UPDATE 1"), "x"); err != nil {
		t.Errorf("com linha afetada: erro = %v, want nil", err)
	}
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"", `%%`},
		{"polera", `%polera%`},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`c:\temp`, `%c:\\temp%`},
		{`\%_`, `%\\\%\_%`},
	}

	for _, tt := range tests {
		if got := likePattern(tt.query); got != tt.want {
			t.Errorf("likePattern(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}
