package helper

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// sqlState digs the SQLSTATE out of pgx, lib/pq or anything exposing SQLState().
func sqlState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var other pgSQLErr
	if errors.As(err, &other) {
		return other.SQLState()
	}
	return ""
}

// MapPGError maps repository errors to an HTTP status and a message fit
// for the client.
func MapPGError(err error) (int, string) {
	if err == nil {
		return http.StatusOK, ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Registro no encontrado"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, "La base de datos tardó demasiado"
	}
	if errors.Is(err, context.Canceled) {
		return 499, "Solicitud cancelada"
	}

	state := sqlState(err)
	switch {
	case state == "57014": // query_canceled (statement_timeout)
		return http.StatusGatewayTimeout, "La consulta excedió el tiempo límite"
	case state == "22P02": // invalid_text_representation
		return http.StatusBadRequest, "Identificador inválido"
	case state == "53300", strings.HasPrefix(state, "08"):
		return http.StatusServiceUnavailable, "Base de datos no disponible"
	case state == "42P01", state == "42703":
		return http.StatusInternalServerError, "Esquema de base de datos inesperado"
	}
	return http.StatusInternalServerError, "Error interno del servidor"
}
