package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"people-api/internal/models"
	"people-api/internal/repositories"
)

// personService implements the PersonService interface
type personService struct {
	personRepo repositories.PersonRepository
	validator  *validator.Validate
}

// NewPersonService creates a new person service instance
func NewPersonService(personRepo repositories.PersonRepository) PersonService {
	return &personService{
		personRepo: personRepo,
		validator:  validator.New(),
	}
}

// CreatePerson creates a new person after checking email uniqueness.
// The pre-check gives a friendly error message; the unique constraint in the
// database is the real guard against concurrent duplicate creates, and its
// rejection surfaces as the same duplicate-entry error.
func (s *personService) CreatePerson(ctx context.Context, req *CreatePersonRequest) (*models.Person, error) {
	if req == nil {
		return nil, fmt.Errorf("create person request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, repositories.ValidationError("person", "", err)
	}

	existing, err := s.personRepo.GetByEmail(ctx, req.Email)
	if err != nil && !repositories.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, repositories.DuplicateError("person", "email", req.Email)
	}

	person := models.NewPerson(req.Name, req.Email)
	person.PhoneNumber = req.PhoneNumber
	person.BirthDate = req.BirthDate

	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, err
	}

	return person, nil
}

// ListPeople retrieves all persons
func (s *personService) ListPeople(ctx context.Context) ([]*models.Person, error) {
	persons, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	return persons, nil
}

// GetPerson retrieves a person by ID
func (s *personService) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return person, nil
}

// UpdatePerson applies only the fields present in the request
func (s *personService) UpdatePerson(ctx context.Context, id int64, req *UpdatePersonRequest) (*models.Person, error) {
	if req == nil {
		return nil, fmt.Errorf("update person request cannot be nil")
	}

	if _, err := s.GetPerson(ctx, id); err != nil {
		return nil, err
	}

	person, err := s.personRepo.UpdateFields(ctx, id, req.Fields())
	if err != nil {
		return nil, err
	}

	return person, nil
}

// DeletePerson deletes a person by ID
func (s *personService) DeletePerson(ctx context.Context, id int64) error {
	if _, err := s.GetPerson(ctx, id); err != nil {
		return err
	}

	if err := s.personRepo.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
