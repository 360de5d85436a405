package database

import (
	"fmt"

	errs "github.com/amirhossein-jamali/arena-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/arena-wallet/internal/infrastructure/adapter/repository"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeAccount represents the wallet account entity
	EntityTypeAccount EntityType = "account"
	// EntityTypeRequest represents the financial request entity
	EntityTypeRequest EntityType = "financial_request"
	// EntityTypeTournament represents the tournament entity
	EntityTypeTournament EntityType = "tournament"
)

// ErrorMapper maps database errors that escape the repositories to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error, keeping the operation in the message
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, repository.MapDatabaseError(err, errs.ErrNotFound))
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	notFound := errs.ErrNotFound
	switch entityType {
	case EntityTypeAccount:
		notFound = errs.ErrAccountNotFound
	case EntityTypeRequest:
		notFound = errs.ErrRequestNotFound
	case EntityTypeTournament:
		notFound = errs.ErrTournamentNotFound
	}
	return repository.MapDatabaseError(err, notFound)
}
