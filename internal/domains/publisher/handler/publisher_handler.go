package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/publisher"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/pkg/logger"
)

type PublisherHandler struct {
	service publisher.Service
}

func NewPublisherHandler(svc publisher.Service) *PublisherHandler {
	return &PublisherHandler{
		service: svc,
	}
}

func respondError(c *gin.Context, err error, logMsg string) {
	var fieldErrors validation.Errors
	if errors.As(err, &fieldErrors) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	switch err {
	case publisher.ErrPublisherNotFound, publisher.ErrDuplicateName, publisher.ErrPublisherHasBooks:
		response.ErrorResponse(c, publisher.ToHTTPStatus(err), publisher.ToErrorCode(err), err.Error())
	default:
		logger.Error(logMsg, err)
		response.InternalServerError(c, logMsg)
	}
}

// Create handles POST /api/v1/publisher
// @Summary      Create a publisher
// @Tags         Publishers
// @Accept       json
// @Produce      json
// @Param        request body publisher.PublisherInput true "Publisher fields"
// @Success      201 {object} response.Response{data=publisher.Publisher}
// @Failure      400 {object} response.Response "Field validation errors"
// @Router       /publisher [post]
func (h *PublisherHandler) Create(c *gin.Context) {
	var req publisher.PublisherInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "An error occurred while creating the publisher")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"publisher": created})
}

// GetByID handles GET /api/v1/publisher/:id
// @Summary      Get a publisher by id
// @Tags         Publishers
// @Produce      json
// @Param        id path string true "Publisher UUID"
// @Success      200 {object} response.Response{data=publisher.Publisher}
// @Failure      404 {object} response.Response
// @Router       /publisher/{id} [get]
func (h *PublisherHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid publisher ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "An error occurred while fetching the publisher")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"publisher": p})
}

// List handles GET /api/v1/publisher?page=
// @Summary      List publishers (12 per page)
// @Tags         Publishers
// @Produce      json
// @Param        page query int false "1-indexed page number"
// @Success      200 {object} response.Response{data=publisher.PublisherListResponse}
// @Failure      500 {object} response.Response
// @Router       /publisher [get]
func (h *PublisherHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	res, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "An error occurred while getting the publishers")
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Search handles GET /api/v1/publisher/search?name=
// @Summary      Find a publisher by exact name
// @Tags         Publishers
// @Produce      json
// @Param        name query string true "Publisher name"
// @Success      200 {object} response.Response{data=publisher.SearchPublisherResponse}
// @Router       /publisher/search [get]
func (h *PublisherHandler) Search(c *gin.Context) {
	p, err := h.service.SearchByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err, "An error occurred when retrieving the publisher by name")
		return
	}

	response.Success(c, http.StatusOK, publisher.SearchPublisherResponse{Publisher: p})
}

// Update handles PUT /api/v1/publisher/:id
// @Summary      Update a publisher
// @Tags         Publishers
// @Accept       json
// @Produce      json
// @Param        id path string true "Publisher UUID"
// @Param        request body publisher.PublisherInput true "Publisher fields"
// @Success      200 {object} response.Response{data=publisher.Publisher}
// @Failure      400 {object} response.Response
// @Router       /publisher/{id} [put]
func (h *PublisherHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid publisher ID")
		return
	}

	var req publisher.PublisherInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "An error occurred while updating the publisher")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"publisher": updated})
}

// Delete handles DELETE /api/v1/publisher/:id
// @Summary      Delete a publisher
// @Tags         Publishers
// @Produce      json
// @Param        id path string true "Publisher UUID"
// @Success      200 {object} response.Response
// @Failure      409 {object} response.Response "Publisher still referenced by books"
// @Router       /publisher/{id} [delete]
func (h *PublisherHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid publisher ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "An error occurred while deleting the publisher")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Publisher successfully removed"})
}
