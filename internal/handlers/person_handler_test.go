package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"people-api/internal/models"
	"people-api/internal/repositories"
	"people-api/internal/services"
)

// stubPersonService returns canned results so handler status mapping can be
// tested without the storage stack
type stubPersonService struct {
	person  *models.Person
	persons []*models.Person
	err     error
}

func (s *stubPersonService) CreatePerson(ctx context.Context, req *services.CreatePersonRequest) (*models.Person, error) {
	return s.person, s.err
}

func (s *stubPersonService) ListPeople(ctx context.Context) ([]*models.Person, error) {
	return s.persons, s.err
}

func (s *stubPersonService) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	return s.person, s.err
}

func (s *stubPersonService) UpdatePerson(ctx context.Context, id int64, req *services.UpdatePersonRequest) (*models.Person, error) {
	return s.person, s.err
}

func (s *stubPersonService) DeletePerson(ctx context.Context, id int64) error {
	return s.err
}

func newTestRouter(service services.PersonService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, &RouterConfig{PersonService: service})
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeDetail(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var resp ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", recorder.Body.String(), err)
	}
	if resp.Detail == "" {
		t.Errorf("Expected a detail message in error body, got %q", recorder.Body.String())
	}
	return resp.Detail
}

// TestCreatePersonEndpoint tests the created status and echoed person
func TestCreatePersonEndpoint(t *testing.T) {
	person := models.NewPerson("Ana", "ana@example.com")
	person.ID = 1
	router := newTestRouter(&stubPersonService{person: person})

	recorder := performRequest(router, http.MethodPost, "/api/v1/people", map[string]string{
		"name":  "Ana",
		"email": "ana@example.com",
	})

	if recorder.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", recorder.Code)
	}

	var got models.Person
	if err := json.Unmarshal(recorder.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got.ID != 1 || got.Email != "ana@example.com" {
		t.Errorf("Unexpected person in response: %+v", got)
	}
}

// TestCreatePersonConflict verifies a duplicate email maps to 400
func TestCreatePersonConflict(t *testing.T) {
	router := newTestRouter(&stubPersonService{
		err: repositories.DuplicateError("person", "email", "ana@example.com"),
	})

	recorder := performRequest(router, http.MethodPost, "/api/v1/people", map[string]string{
		"name":  "Ana",
		"email": "ana@example.com",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", recorder.Code)
	}
	decodeDetail(t, recorder)
}

// TestCreatePersonValidationFailure verifies validation errors map to 400
func TestCreatePersonValidationFailure(t *testing.T) {
	router := newTestRouter(&stubPersonService{
		err: repositories.ValidationError("person", "", nil),
	})

	recorder := performRequest(router, http.MethodPost, "/api/v1/people", map[string]string{
		"email": "ana@example.com",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", recorder.Code)
	}
}

// TestCreatePersonMalformedBody verifies invalid JSON is rejected
func TestCreatePersonMalformedBody(t *testing.T) {
	router := newTestRouter(&stubPersonService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/people", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", recorder.Code)
	}
	decodeDetail(t, recorder)
}

// TestListPeopleEndpoint verifies the collection endpoint returns an array
func TestListPeopleEndpoint(t *testing.T) {
	ana := models.NewPerson("Ana", "ana@example.com")
	ana.ID = 1
	router := newTestRouter(&stubPersonService{persons: []*models.Person{ana}})

	recorder := performRequest(router, http.MethodGet, "/api/v1/people", nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var got []models.Person
	if err := json.Unmarshal(recorder.Body.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Expected 1 person, got %d", len(got))
	}
}

func TestListPeopleEmpty(t *testing.T) {
	router := newTestRouter(&stubPersonService{persons: []*models.Person{}})

	recorder := performRequest(router, http.MethodGet, "/api/v1/people", nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); body != "[]" {
		t.Errorf("Expected empty JSON array, got %q", body)
	}
}

// TestGetPersonEndpoint tests ID parsing and the not-found mapping
func TestGetPersonEndpoint(t *testing.T) {
	person := models.NewPerson("Ana", "ana@example.com")
	person.ID = 3
	router := newTestRouter(&stubPersonService{person: person})

	recorder := performRequest(router, http.MethodGet, "/api/v1/people/3", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
}

func TestGetPersonNotFound(t *testing.T) {
	router := newTestRouter(&stubPersonService{
		err: repositories.NotFoundError("person", "99"),
	})

	recorder := performRequest(router, http.MethodGet, "/api/v1/people/99", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", recorder.Code)
	}
	decodeDetail(t, recorder)
}

func TestGetPersonInvalidID(t *testing.T) {
	router := newTestRouter(&stubPersonService{})

	recorder := performRequest(router, http.MethodGet, "/api/v1/people/abc", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 for non-numeric ID, got %d", recorder.Code)
	}
	decodeDetail(t, recorder)
}

// TestUpdatePersonEndpoint tests the partial update status mapping
func TestUpdatePersonEndpoint(t *testing.T) {
	person := models.NewPerson("Ana", "ana@example.com")
	person.ID = 3
	router := newTestRouter(&stubPersonService{person: person})

	recorder := performRequest(router, http.MethodPut, "/api/v1/people/3", map[string]string{
		"phone_number": "555-0100",
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
}

func TestUpdatePersonNotFound(t *testing.T) {
	router := newTestRouter(&stubPersonService{
		err: repositories.NotFoundError("person", "99"),
	})

	recorder := performRequest(router, http.MethodPut, "/api/v1/people/99", map[string]string{
		"name": "Ghost",
	})

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", recorder.Code)
	}
}

// TestDeletePersonEndpoint verifies deletion returns the confirmation body
func TestDeletePersonEndpoint(t *testing.T) {
	router := newTestRouter(&stubPersonService{})

	recorder := performRequest(router, http.MethodDelete, "/api/v1/people/3", nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["message"] != "Person deleted successfully" {
		t.Errorf("Unexpected delete confirmation: %q", resp["message"])
	}
}

func TestDeletePersonNotFound(t *testing.T) {
	router := newTestRouter(&stubPersonService{
		err: repositories.NotFoundError("person", "99"),
	})

	recorder := performRequest(router, http.MethodDelete, "/api/v1/people/99", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", recorder.Code)
	}
}

// TestHealthEndpoint and TestGreetingEndpoint cover the unauthenticated
// utility routes shared by both deployments
func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubPersonService{})

	recorder := performRequest(router, http.MethodGet, "/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
}

func TestGreetingEndpoint(t *testing.T) {
	router := newTestRouter(&stubPersonService{})

	recorder := performRequest(router, http.MethodGet, "/", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", recorder.Code)
	}
}
