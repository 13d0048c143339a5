package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/pkg/logger"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// respondError maps service failures onto the HTTP surface: accumulated
// field violations become a 400 with per-field details, typed domain errors
// carry their own status, anything else is logged and hidden behind a 500.
func respondError(c *gin.Context, err error, logMsg string) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	switch err {
	case author.ErrAuthorNotFound, author.ErrDuplicateName, author.ErrAuthorHasBooks:
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
	default:
		logger.Error(logMsg, err)
		response.InternalServerError(c, logMsg)
	}
}

// Create handles POST /api/v1/authors
// @Summary      Create an author
// @Tags         Authors
// @Accept       json
// @Produce      json
// @Param        request body author.AuthorInput true "Author fields"
// @Success      201 {object} response.Response{data=author.Author}
// @Failure      400 {object} response.Response "Field validation errors"
// @Failure      500 {object} response.Response
// @Router       /authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.AuthorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "An error occurred while creating the author")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"author": created})
}

// GetByID handles GET /api/v1/authors/:id
// @Summary      Get an author by id
// @Tags         Authors
// @Produce      json
// @Param        id path string true "Author UUID"
// @Success      200 {object} response.Response{data=author.Author}
// @Failure      404 {object} response.Response
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "An error occurred while fetching the author")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"author": a})
}

// List handles GET /api/v1/authors?page=
// @Summary      List authors (12 per page)
// @Tags         Authors
// @Produce      json
// @Param        page query int false "1-indexed page number"
// @Success      200 {object} response.Response{data=author.AuthorListResponse}
// @Failure      500 {object} response.Response
// @Router       /authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	res, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "An error occurred when obtaining the authors")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Search handles GET /api/v1/authors/search?name=
// @Summary      Find authors by exact full name
// @Tags         Authors
// @Produce      json
// @Param        name query string true "Author full name"
// @Success      200 {object} response.Response{data=author.SearchAuthorsResponse}
// @Failure      400 {object} response.Response "Missing name parameter"
// @Router       /authors/search [get]
func (h *AuthorHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, "You must provide an author name")
		return
	}

	authors, err := h.service.SearchByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err, "An error occurred when retrieving the author by name")
		return
	}

	response.Success(c, http.StatusOK, author.SearchAuthorsResponse{Authors: authors})
}

// Update handles PUT /api/v1/authors/:id
// @Summary      Update an author
// @Tags         Authors
// @Accept       json
// @Produce      json
// @Param        id path string true "Author UUID"
// @Param        request body author.AuthorInput true "Author fields"
// @Success      200 {object} response.Response{data=author.Author}
// @Failure      400 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	var req author.AuthorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "An error occurred while updating the author")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"author": updated})
}

// Delete handles DELETE /api/v1/authors/:id
// @Summary      Delete an author
// @Tags         Authors
// @Produce      json
// @Param        id path string true "Author UUID"
// @Success      200 {object} response.Response
// @Failure      409 {object} response.Response "Author still referenced by books"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "An error occurred while deleting the author")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Author deleted successfully"})
}
