package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/arena-wallet/internal/domain/port/core"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// Postgres SQLSTATE codes the classifier cares about
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateQueryCanceled        = "57014"
	sqlStateTooManyConnections   = "53300"
	sqlClassIntegrity            = "23"
	sqlClassConnection           = "08"
)

// ErrorClassifier provides methods to classify database errors by their SQLSTATE
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsTransientError(err):
		return TransientError
	}
	return ""
}

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// ConstraintName returns the violated constraint or index name, if any
func (c *ErrorClassifier) ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == sqlStateUniqueViolation
	}
	return strings.Contains(err.Error(), "duplicate key")
}

// IsLockError checks if the error is due to locking or serialization
func (c *ErrorClassifier) IsLockError(err error) bool {
	if pgErr, ok := pgError(err); ok {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
			return true
		}
	}
	return false
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if pgErr, ok := pgError(err); ok {
		return strings.HasPrefix(pgErr.Code, sqlClassConnection) || pgErr.Code == sqlStateTooManyConnections
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr)
}

// IsTransientError checks if an error is transient and the operation can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	if c.IsLockError(err) || c.IsConnectionError(err) {
		return true
	}
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code == sqlStateQueryCanceled
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsConstraintError checks if the error is an integrity constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if pgErr, ok := pgError(err); ok {
		return strings.HasPrefix(pgErr.Code, sqlClassIntegrity)
	}
	return c.IsDuplicateKeyError(err)
}

// mapError translates a gorm or driver error into a domain error. notFound is returned for
// gorm.ErrRecordNotFound; duplicate keys map through onDuplicate when it is non-nil.
func mapError(classifier *ErrorClassifier, err error, notFound error, onDuplicate func(constraint string) error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case classifier.IsDuplicateKeyError(err):
		if onDuplicate != nil {
			if mapped := onDuplicate(classifier.ConstraintName(err)); mapped != nil {
				return mapped
			}
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, classifier.ConstraintName(err))
	case classifier.IsConstraintError(err):
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, classifier.ConstraintName(err))
	case classifier.IsLockError(err):
		return fmt.Errorf("%w: %s", errs.ErrVersionConflict, err.Error())
	case classifier.IsConnectionError(err), classifier.IsTransientError(err):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// logDatabaseError logs unexpected failures; expected lookups that miss are logged at debug
func logDatabaseError(logger coreport.Logger, operation string, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["operation"] = operation
	fields["error"] = err.Error()

	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("Record not found", fields)
		return
	}
	logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchCondition builds a grouped "col ILIKE ? OR ..." condition for the given columns
func searchCondition(db *gorm.DB, search string, columns []string) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(search)) + "%"
	group := db.Session(&gorm.Session{NewDB: true})
	for i, column := range columns {
		if i == 0 {
			group = group.Where(column+" ILIKE ?", pattern)
			continue
		}
		group = group.Or(column+" ILIKE ?", pattern)
	}
	return group
}

// MapDatabaseError maps a driver or GORM error onto the domain sentinels; notFound is
// returned for gorm.ErrRecordNotFound
func MapDatabaseError(err error, notFound error) error {
	return mapError(NewErrorClassifier(), err, notFound, nil)
}
