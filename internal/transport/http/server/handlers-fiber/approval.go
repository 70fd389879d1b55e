package handlers_fiber

import (
	"net/http"

	"request-approvals/internal/entities"
	"request-approvals/internal/mapper"
	api "request-approvals/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostRequestsIdApprovalsApprovalIdDecision records an approve or reject.
func (h *Handler) PostRequestsIdApprovalsApprovalIdDecision(c *fiber.Ctx, id string, approvalId string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PostRequestsIdApprovalsApprovalIdDecisionJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	req, err := h.uc.RecordDecision(c.Context(), user, id, entities.Decision{
		ApprovalID: approvalId,
		Status:     entities.ApprovalStatus(body.Decision),
		Comment:    body.Comment,
	})
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

// PostRequestsIdComments appends a comment to the request timeline.
func (h *Handler) PostRequestsIdComments(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PostRequestsIdCommentsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	comment, err := h.uc.AddComment(c.Context(), user, id, body.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(struct {
		Comment api.Comment `json:"comment"`
	}{Comment: mapper.ToOAPIComment(*comment)})
}
