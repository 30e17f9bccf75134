package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"people-api/internal/services"
)

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	personService services.PersonService
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService services.PersonService) *PersonHandler {
	return &PersonHandler{
		personService: personService,
	}
}

// parsePersonID reads the :id path parameter. A non-numeric ID is a client
// error, not a missing resource.
func parsePersonID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "Person ID must be an integer",
		})
		return 0, false
	}
	return id, true
}

// @Summary Create a new person
// @Description Create a new person in the system
// @Tags people
// @Accept json
// @Produce json
// @Param person body services.CreatePersonRequest true "Person data"
// @Success 201 {object} models.Person
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /people [post]
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req services.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "Invalid request body: " + err.Error(),
		})
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, person)
}

// @Summary List people
// @Description Get all persons ordered by ID
// @Tags people
// @Accept json
// @Produce json
// @Success 200 {array} models.Person
// @Failure 500 {object} ErrorResponse
// @Router /people [get]
func (h *PersonHandler) ListPeople(c *gin.Context) {
	persons, err := h.personService.ListPeople(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, persons)
}

// @Summary Get a person
// @Description Get a person by ID
// @Tags people
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} models.Person
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /people/{id} [get]
func (h *PersonHandler) GetPerson(c *gin.Context) {
	id, ok := parsePersonID(c)
	if !ok {
		return
	}

	person, err := h.personService.GetPerson(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// @Summary Update a person
// @Description Update the provided fields of an existing person
// @Tags people
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Param person body services.UpdatePersonRequest true "Fields to update"
// @Success 200 {object} models.Person
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /people/{id} [put]
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	id, ok := parsePersonID(c)
	if !ok {
		return
	}

	var req services.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: "Invalid request body: " + err.Error(),
		})
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// @Summary Delete a person
// @Description Delete a person by ID
// @Tags people
// @Accept json
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /people/{id} [delete]
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	id, ok := parsePersonID(c)
	if !ok {
		return
	}

	if err := h.personService.DeletePerson(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Person deleted successfully"})
}
