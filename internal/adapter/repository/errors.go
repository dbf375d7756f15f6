package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
)

// Códigos de erro do PostgreSQL tratados pelos repositórios
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// messages são as mensagens exibidas ao usuário para cada tipo de erro
type messages struct {
	notFound  string
	conflict  string
	reference string
}

// translate converte os erros do pgx nos tipos de apperr
func translate(err error, msg messages) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) && msg.notFound != "" {
		return apperr.Wrap(apperr.ErrNotFound, err, msg.notFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if msg.conflict != "" {
				return apperr.Wrap(apperr.ErrConflict, err, msg.conflict)
			}
		case pgForeignKeyViolation:
			if msg.reference != "" {
				return apperr.Wrap(apperr.ErrReferentialIntegrity, err, msg.reference)
			}
		case pgCheckViolation:
			return apperr.Wrap(apperr.ErrValidation, err, "dados inválidos")
		}
	}

	return fmt.Errorf("erro de banco de dados: %w", err)
}

// notFoundIfNone retorna ErrNotFound quando o comando não alterou nenhuma linha
func notFoundIfNone(tag pgconn.CommandTag, msg string) error {
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("%s", msg)
	}
	return nil
}

// likePattern monta o padrão de busca por trecho, escapando os curingas do LIKE
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(query) + "%"
}
