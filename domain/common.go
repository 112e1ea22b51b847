package domain

import (
	"errors"
)

var (
	MessageHelloWorld           = "Hello World"
	MessageFailedBodyRequest    = "Corpo da requisição inválido"
	MessageFailedValidation     = "Dados inválidos"
	MessageFailedProcessRequest = "Falha ao processar a requisição"
	MessageInvalidID            = "O ID informado é inválido"
	MessageRouteNotFound        = "Rota não encontrada"
	MessageMethodNotAllowed     = "Método não permitido"

	ErrInvalidID = errors.New("invalid id")
)

type (
	// ValidationField describes one failed rule of a request body.
	ValidationField struct {
		Field string `json:"campo"`
		Rule  string `json:"regra"`
		Param string `json:"parametro,omitempty"`
	}
)
