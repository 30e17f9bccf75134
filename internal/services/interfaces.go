package services

import (
	"context"
	"encoding/json"

	"people-api/internal/models"
)

// PersonService defines the interface for person business logic operations
type PersonService interface {
	CreatePerson(ctx context.Context, req *CreatePersonRequest) (*models.Person, error)
	ListPeople(ctx context.Context) ([]*models.Person, error)
	GetPerson(ctx context.Context, id int64) (*models.Person, error)
	UpdatePerson(ctx context.Context, id int64, req *UpdatePersonRequest) (*models.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// CreatePersonRequest is the payload for creating a person.
// Email uniqueness is enforced by the service and the database; no email
// format validation is applied, matching the upstream contract.
type CreatePersonRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
}

// UpdatePersonRequest is the payload for partially updating a person.
// Only keys present in the payload overwrite stored values. A key carrying
// an explicit null is still present: it writes NULL to the column, which is
// distinct from omitting the key entirely.
type UpdatePersonRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`

	// present records which keys appeared in the payload, so a null value
	// is not collapsed into an absent key.
	present map[string]bool
}

var updatePersonColumns = []string{"name", "email", "phone_number", "birth_date"}

// UnmarshalJSON decodes the payload while tracking key presence
func (r *UpdatePersonRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	targets := map[string]**string{
		"name":         &r.Name,
		"email":        &r.Email,
		"phone_number": &r.PhoneNumber,
		"birth_date":   &r.BirthDate,
	}

	r.present = make(map[string]bool, len(raw))
	for _, column := range updatePersonColumns {
		rawValue, ok := raw[column]
		if !ok {
			continue
		}
		r.present[column] = true

		var value *string
		if err := json.Unmarshal(rawValue, &value); err != nil {
			return err
		}
		*targets[column] = value
	}

	return nil
}

// Fields returns the column/value pairs actually present in the payload.
// Present-but-null keys map to a nil value, which the repository writes as
// SQL NULL. Requests built in code without decoding carry no presence map;
// for those, non-nil pointers count as present.
func (r *UpdatePersonRequest) Fields() map[string]interface{} {
	values := map[string]*string{
		"name":         r.Name,
		"email":        r.Email,
		"phone_number": r.PhoneNumber,
		"birth_date":   r.BirthDate,
	}

	fields := make(map[string]interface{})
	for _, column := range updatePersonColumns {
		value := values[column]
		switch {
		case r.present[column] && value == nil:
			fields[column] = nil
		case r.present[column]:
			fields[column] = *value
		case r.present == nil && value != nil:
			fields[column] = *value
		}
	}

	return fields
}
