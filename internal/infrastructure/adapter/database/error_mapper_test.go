package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
)

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name       string
		err        error
		entityType EntityType
		want       error
	}{
		{"account miss", gorm.ErrRecordNotFound, EntityTypeAccount, errs.ErrAccountNotFound},
		{"request miss", fmt.Errorf("wrapped: %w", gorm.ErrRecordNotFound), EntityTypeRequest, errs.ErrRequestNotFound},
		{"tournament miss", gorm.ErrRecordNotFound, EntityTypeTournament, errs.ErrTournamentNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "idx_x"}, EntityTypeAccount, errs.ErrConstraintViolation},
		{"check violation", &pgconn.PgError{Code: "23514"}, EntityTypeAccount, errs.ErrConstraintViolation},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, EntityTypeRequest, errs.ErrVersionConflict},
		{"too many connections", &pgconn.PgError{Code: "53300"}, EntityTypeRequest, errs.ErrDatabaseConnection},
		{"unknown", errors.New("boom"), EntityTypeRequest, errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapEntityNotFoundError(tt.err, tt.entityType), tt.want)
		})
	}

	assert.NoError(t, mapper.MapEntityNotFoundError(nil, EntityTypeAccount))
}

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	err := mapper.MapError(&pgconn.PgError{Code: "40001"}, "commit transaction")
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.Contains(t, err.Error(), "commit transaction")

	assert.NoError(t, mapper.MapError(nil, "noop"))
}
