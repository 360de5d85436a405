package repository

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"unique violation", &pgconn.PgError{Code: "23505"}, DuplicateKeyError},
		{"gorm duplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, LockError},
		{"deadlock", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"}), LockError},
		{"lock not available", &pgconn.PgError{Code: "55P03"}, LockError},
		{"connection failure", &pgconn.PgError{Code: "08006"}, ConnectionError},
		{"bad conn", driver.ErrBadConn, ConnectionError},
		{"check violation", &pgconn.PgError{Code: "23514"}, ConstraintError},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, ConstraintError},
		{"query canceled", &pgconn.PgError{Code: "57014"}, TransientError},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestMapError(t *testing.T) {
	classifier := NewErrorClassifier()
	onDuplicate := func(constraint string) error {
		if constraint == topUpReferenceIndex {
			return errs.ErrDuplicateReference
		}
		return nil
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", gorm.ErrRecordNotFound, errs.ErrRequestNotFound},
		{"known duplicate", &pgconn.PgError{Code: "23505", ConstraintName: topUpReferenceIndex}, errs.ErrDuplicateReference},
		{"other duplicate", &pgconn.PgError{Code: "23505", ConstraintName: "financial_requests_pkey"}, errs.ErrConstraintViolation},
		{"check violation", &pgconn.PgError{Code: "23514", ConstraintName: "chk_accounts_balance"}, errs.ErrConstraintViolation},
		{"lock", &pgconn.PgError{Code: "55P03"}, errs.ErrVersionConflict},
		{"connection", &pgconn.PgError{Code: "08001"}, errs.ErrDatabaseConnection},
		{"canceled", &pgconn.PgError{Code: "57014"}, errs.ErrDatabaseConnection},
		{"unknown", errors.New("boom"), errs.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(classifier, tt.err, errs.ErrRequestNotFound, onDuplicate), tt.want)
		})
	}

	assert.NoError(t, mapError(classifier, nil, errs.ErrRequestNotFound, nil))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(""))
	code := nullable("AWAB12CD34")
	if assert.NotNil(t, code) {
		assert.Equal(t, "AWAB12CD34", *code)
	}
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `100\%\_off\\`, likeEscaper.Replace(`100%_off\`))
}
