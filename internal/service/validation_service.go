package service

import (
	"fmt"
	"log"

	"dataquality/internal/domain"
	"dataquality/internal/validator"
)

// ValidationService validates client records against the live rule table.
type ValidationService interface {
	ValidateRecord(record domain.ClientRecord) (*domain.ValidationResult, error)
	ValidateBatch(records []domain.ClientRecord) (*domain.BatchReport, error)
}

type validationService struct {
	engine *validator.Engine
}

// NewValidationService creates a new ValidationService backed by engine.
func NewValidationService(engine *validator.Engine) ValidationService {
	return &validationService{engine: engine}
}

func (s *validationService) ValidateRecord(record domain.ClientRecord) (*domain.ValidationResult, error) {
	if record == nil {
		return nil, domain.ErrMissingRecord
	}
	if !record.HasIdentity() {
		return nil, domain.ErrMissingIdentity
	}
	res, err := s.engine.Validate(record)
	if err != nil && !validator.IsRecordFault(err) {
		log.Printf("validationService.ValidateRecord: cli %s: %v", record.CLI(), err)
		return nil, fmt.Errorf("validationService.ValidateRecord: %w", err)
	}
	return res, err
}

func (s *validationService) ValidateBatch(records []domain.ClientRecord) (*domain.BatchReport, error) {
	return s.engine.ValidateBatch(records)
}
