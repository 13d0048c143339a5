package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/book"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/pkg/logger"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// respondError keeps the three failure categories apart on the wire:
// field violations → 400 with the full per-field report, unresolved
// references → 404 naming each missing reference, typed domain errors →
// their mapped status, everything else → logged 500.
func respondError(c *gin.Context, err error, logMsg string) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	var refErr *book.ReferenceError
	if errors.As(err, &refErr) {
		response.ErrorWithDetails(c, http.StatusNotFound, "REFERENCE_NOT_FOUND", refErr.Error(), gin.H{
			"missing": refErr.MissingRefs(),
		})
		return
	}

	switch err {
	case book.ErrBookNotFound, book.ErrDuplicateTitle:
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
	default:
		logger.Error(logMsg, err)
		response.InternalServerError(c, logMsg)
	}
}

// Create handles POST /api/v1/books
// @Summary      Create a book
// @Description  Field violations are all reported together (400); a book
// @Description  whose author or publisher id does not resolve is refused
// @Description  with 404 and nothing is persisted.
// @Tags         Books
// @Accept       json
// @Produce      json
// @Param        request body book.BookInput true "Book fields"
// @Success      201 {object} response.Response{data=book.BookDetail}
// @Failure      400 {object} response.Response "Field validation errors"
// @Failure      404 {object} response.Response "Author or publisher does not exist"
// @Router       /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "An error occurred while creating the book")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"book": created})
}

// List handles GET /api/v1/books
// @Summary      List all books with author and publisher expanded
// @Tags         Books
// @Produce      json
// @Success      200 {object} response.Response{data=[]book.BookDetail}
// @Failure      500 {object} response.Response
// @Router       /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "An error occurred while fetching all books")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Search handles GET /api/v1/books/search?title=&authorName=&publisherName=
// @Summary      Find one book by title, author name and/or publisher name
// @Tags         Books
// @Produce      json
// @Param        title query string false "Exact book title"
// @Param        authorName query string false "Exact author full name"
// @Param        publisherName query string false "Exact publisher name"
// @Success      200 {object} response.Response{data=book.BookDetail}
// @Failure      400 {object} response.Response "No search option provided"
// @Failure      404 {object} response.Response
// @Router       /books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	filter := book.SearchFilter{
		Title:         c.Query("title"),
		AuthorName:    c.Query("authorName"),
		PublisherName: c.Query("publisherName"),
	}

	if filter.Empty() {
		response.BadRequest(c, "Please provide at least one search option (title, authorName, or publisherName)")
		return
	}

	found, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "An error occurred while fetching book")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book": found})
}

// Update handles PUT /api/v1/books/:id
// @Summary      Update a book
// @Tags         Books
// @Accept       json
// @Produce      json
// @Param        id path string true "Book UUID"
// @Param        request body book.BookInput true "Book fields"
// @Success      200 {object} response.Response{data=book.BookDetail}
// @Failure      400 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req book.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "An error occurred while editing book")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book": updated})
}

// Delete handles DELETE /api/v1/books/:id
// @Summary      Delete a book
// @Tags         Books
// @Produce      json
// @Param        id path string true "Book UUID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "An error occurred while deleting book")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
