// Package service reúne os casos de uso da loja. Cada sequência de leitura e
// escrita com mais de um passo roda dentro de uma única transação.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
	"github.com/hugohenrick/loja-virtual/internal/domain/invoice"
	"github.com/hugohenrick/loja-virtual/internal/domain/user"
)

// Transactor executa uma função dentro de uma transação.
// Os repositórios usados com o ctx recebido participam da mesma transação.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock fornece o instante atual e a data civil no fuso horário da loja
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewClock cria um relógio real no fuso horário informado
func NewClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Today retorna a data de hoje no fuso horário da loja
func (c Clock) Today() time.Time {
	return invoice.Today(c.now(), c.Location)
}

// isSubscribed consulta o perfil do usuário; usuário anônimo ou sem perfil não é assinante
func isSubscribed(ctx context.Context, profiles user.ProfileRepository, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	p, err := profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return p.Subscribed, nil
}
