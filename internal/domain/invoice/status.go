package invoice

import (
	"strings"

	"github.com/hugohenrick/loja-virtual/internal/domain/apperr"
)

// ErrInvalidStatus ocorre quando o status informado não pertence ao ciclo da boleta
var ErrInvalidStatus = apperr.Validation("status de boleta inválido")

// Status representa o estado de uma boleta
type Status string

const (
	StatusSold       Status = "sold"       // Vendido
	StatusDispatched Status = "dispatched" // Despachado
	StatusDelivered  Status = "delivered"  // Entregue
	StatusCancelled  Status = "cancelled"  // Anulado
)

// Statuses lista todos os estados possíveis
var Statuses = []Status{StatusSold, StatusDispatched, StatusDelivered, StatusCancelled}

var statusAliases = map[string]Status{
	"sold":       StatusSold,
	"vendido":    StatusSold,
	"dispatched": StatusDispatched,
	"despachado": StatusDispatched,
	"delivered":  StatusDelivered,
	"entregado":  StatusDelivered,
	"entregue":   StatusDelivered,
	"cancelled":  StatusCancelled,
	"anulado":    StatusCancelled,
}

// ParseStatus converte um texto em Status; aceita também os rótulos usados no balcão
func ParseStatus(s string) (Status, error) {
	status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Valid verifica se o status é um dos estados conhecidos
func (s Status) Valid() bool {
	switch s {
	case StatusSold, StatusDispatched, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Label retorna o rótulo exibido para o status
func (s Status) Label() string {
	switch s {
	case StatusSold:
		return "Vendido"
	case StatusDispatched:
		return "Despachado"
	case StatusDelivered:
		return "Entregue"
	case StatusCancelled:
		return "Anulado"
	}
	return string(s)
}
