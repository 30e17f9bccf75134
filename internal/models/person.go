package models

import (
	"fmt"
	"strings"
	"time"
)

// Person represents a person record in the system.
//
// PhoneNumber and BirthDate are optional and map to nullable columns.
// BirthDate is stored as a raw string; the upstream contract performs no
// date validation on it.
type Person struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required"`
	Email       string    `json:"email" db:"email" validate:"required"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	BirthDate   *string   `json:"birth_date" db:"birth_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewPerson creates a new person with both timestamps set to the same instant.
// The ID is assigned by the database on insert.
func NewPerson(name, email string) *Person {
	now := time.Now().UTC()
	return &Person{
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the person data
func (p *Person) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("person name is required")
	}

	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("person email is required")
	}

	return nil
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (p *Person) UpdateTimestamp() {
	p.UpdatedAt = time.Now().UTC()
}

// HasPhoneNumber returns true if the person has a phone number on file
func (p *Person) HasPhoneNumber() bool {
	return p.PhoneNumber != nil && strings.TrimSpace(*p.PhoneNumber) != ""
}
