package handlers_fiber

import (
	"net/http"

	"request-approvals/internal/entities"
	"request-approvals/internal/mapper"
	api "request-approvals/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetRequests lists the actor's own requests.
func (h *Handler) GetRequests(c *fiber.Ctx) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListUserRequests(c.Context(), user)
	if err != nil {
		h.log.Errorw("failed to list requests", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Requests []api.Request `json:"requests"`
	}{Requests: mapper.ToOAPIRequestList(list)})
}

// GetRequestsPending lists the requests awaiting the actor's decision.
func (h *Handler) GetRequestsPending(c *fiber.Ctx) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListPendingApprovals(c.Context(), user)
	if err != nil {
		h.log.Errorw("failed to list pending approvals", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Requests []api.Request `json:"requests"`
	}{Requests: mapper.ToOAPIRequestList(list)})
}

// PostRequests creates a draft, optionally submitting it.
func (h *Handler) PostRequests(c *fiber.Ctx) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PostRequestsJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	req, err := h.uc.CreateRequest(c.Context(), user, mapper.FromOAPICreate(body))
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusCreated, req)
}

// GetRequestsId returns one request.
func (h *Handler) GetRequestsId(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	req, err := h.uc.GetRequest(c.Context(), user, id)
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

// PatchRequestsId edits a draft.
func (h *Handler) PatchRequestsId(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PatchRequestsIdJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	req, err := h.uc.UpdateDraft(c.Context(), user, id, mapper.FromOAPIPatch(body))
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

// DeleteRequestsId deletes a draft.
func (h *Handler) DeleteRequestsId(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteRequest(c.Context(), user, id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostRequestsIdSubmit submits a draft for approval.
func (h *Handler) PostRequestsIdSubmit(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	req, err := h.uc.Submit(c.Context(), user, id)
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

// PostRequestsIdCancel withdraws a request.
func (h *Handler) PostRequestsIdCancel(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	req, err := h.uc.CancelRequest(c.Context(), user, id)
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

// PostRequestsIdApprovers assigns an approver to a draft.
func (h *Handler) PostRequestsIdApprovers(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PostRequestsIdApproversJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	req, err := h.uc.AddApprover(c.Context(), user, id, entities.Approver{UserID: body.UserId, Level: body.Level})
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

// DeleteRequestsIdApproversApprovalId removes an approver from a draft.
func (h *Handler) DeleteRequestsIdApproversApprovalId(c *fiber.Ctx, id string, approvalId string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	req, err := h.uc.RemoveApprover(c.Context(), user, id, approvalId)
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

// PostRequestsIdPreApprovers applies a pre-approver set to a draft.
func (h *Handler) PostRequestsIdPreApprovers(c *fiber.Ctx, id string) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.PostRequestsIdPreApproversJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	req, err := h.uc.ApplyPreApproverSet(c.Context(), user, id, body.PreApproverSetId)
	if err != nil {
		return writeError(c, err)
	}
	return respondRequest(c, http.StatusOK, req)
}

func respondRequest(c *fiber.Ctx, status int, req *entities.RequestForm) error {
	return c.Status(status).JSON(struct {
		Request api.Request `json:"request"`
	}{Request: mapper.ToOAPIRequest(*req)})
}
