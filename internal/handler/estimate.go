package handler

import (
	"context"
	"net/http"

	"dreamhome-estimator/internal/form"
	"dreamhome-estimator/internal/service"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves the prediction form and handles its submission
type EstimateHandler struct {
	service SubmissionService
}

// Service interface for dependency injection
type SubmissionService interface {
	Submit(context.Context, service.View, form.Reader) service.Result
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(svc SubmissionService) *EstimateHandler {
	return &EstimateHandler{service: svc}
}

// Form handles GET / requests
func (h *EstimateHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newPageView().data(form.DefaultValues))
}

// Submit handles POST / requests. The page is always rendered back, with
// either the price or the alert raised by the submission.
func (h *EstimateHandler) Submit(c *gin.Context) {
	values := make(form.Values, len(form.FieldIDs))
	for _, id := range form.FieldIDs {
		values[id] = c.PostForm(id)
	}

	view := newPageView()
	h.service.Submit(c.Request.Context(), view, values)

	c.HTML(http.StatusOK, "index.html", view.data(values))
}
