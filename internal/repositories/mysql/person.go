package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"people-api/internal/models"
	"people-api/internal/repositories"
)

// mysqlDuplicateEntry is the MySQL error number for a unique-key violation
const mysqlDuplicateEntry = 1062

const personColumns = "id, name, email, phone_number, birth_date, created_at, updated_at"

// PersonRepository implements repositories.PersonRepository for MySQL
type PersonRepository struct {
	*baseRepository
}

// NewPersonRepository creates a new MySQL person repository
func NewPersonRepository(db *sql.DB, logger *logrus.Logger) repositories.PersonRepository {
	return &PersonRepository{
		baseRepository: newBaseRepository(db, "persons", logger),
	}
}

// Create inserts a new person and assigns the generated ID
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	if err := person.Validate(); err != nil {
		return repositories.ValidationError("person", "", err)
	}

	query := `
		INSERT INTO persons (name, email, phone_number, birth_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.executeExec(ctx, "create", query,
		person.Name,
		person.Email,
		person.PhoneNumber,
		person.BirthDate,
		person.CreatedAt,
		person.UpdatedAt,
	)

	if err != nil {
		if isDuplicateKeyError(err) {
			return repositories.DuplicateError("person", "email", person.Email)
		}
		return repositories.NewRepositoryError("create", "persons", "", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return repositories.NewRepositoryError("create", "persons", "", err)
	}

	person.ID = id
	return nil
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	query := fmt.Sprintf("SELECT %s FROM persons WHERE id = ?", personColumns)

	row := r.executeQueryRow(ctx, "get_by_id", query, id)

	person, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("person", formatID(id))
		}
		return nil, repositories.NewRepositoryError("get_by_id", "persons", formatID(id), err)
	}

	return person, nil
}

// GetByEmail retrieves a person by exact email match
func (r *PersonRepository) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	if strings.TrimSpace(email) == "" {
		return nil, repositories.NewRepositoryError("get_by_email", "persons", "", repositories.ErrInvalidID)
	}

	query := fmt.Sprintf("SELECT %s FROM persons WHERE email = ?", personColumns)

	row := r.executeQueryRow(ctx, "get_by_email", query, email)

	person, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("person", fmt.Sprintf("email:%s", email))
		}
		return nil, repositories.NewRepositoryError("get_by_email", "persons", email, err)
	}

	return person, nil
}

// List retrieves all persons in insertion order
func (r *PersonRepository) List(ctx context.Context) ([]*models.Person, error) {
	query := fmt.Sprintf("SELECT %s FROM persons ORDER BY id", personColumns)

	rows, err := r.executeQuery(ctx, "list", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := []*models.Person{}
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "persons", "", err)
		}
		persons = append(persons, person)
	}

	if err = rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "persons", "", err)
	}

	return persons, nil
}

// UpdateFields mutates only the given columns, refreshes updated_at and
// returns the stored row.
func (r *PersonRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.Person, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	setClause, args := buildSetClause(fields)
	args = append(args, time.Now().UTC(), id)

	query := fmt.Sprintf("UPDATE persons SET %s, updated_at = ? WHERE id = ?", setClause)

	if _, err := r.executeExec(ctx, "update", query, args...); err != nil {
		if isDuplicateKeyError(err) {
			return nil, repositories.DuplicateError("person", "email", fmt.Sprintf("%v", fields["email"]))
		}
		return nil, repositories.NewRepositoryError("update", "persons", formatID(id), err)
	}

	// MySQL reports 0 affected rows for a no-op update, so a missing row is
	// detected by the re-read rather than by RowsAffected.
	return r.GetByID(ctx, id)
}

// Delete removes a person by ID
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM persons WHERE id = ?"
	result, err := r.executeExec(ctx, "delete", query, id)
	if err != nil {
		return repositories.NewRepositoryError("delete", "persons", formatID(id), err)
	}

	return r.checkRowsAffected(result, "delete", "person", id)
}

// scanner abstracts *sql.Row and *sql.Rows for person scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(s scanner) (*models.Person, error) {
	person := &models.Person{}
	err := s.Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.PhoneNumber,
		&person.BirthDate,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return person, nil
}

// buildSetClause builds a deterministic SET clause from the field map
func buildSetClause(fields map[string]interface{}) (string, []interface{}) {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = ?", column))
		args = append(args, fields[column])
	}

	return strings.Join(assignments, ", "), args
}

// isDuplicateKeyError reports whether the driver rejected a write because of
// the unique email constraint
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
