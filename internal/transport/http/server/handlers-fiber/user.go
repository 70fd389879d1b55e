package handlers_fiber

import (
	"net/http"

	"request-approvals/internal/entities"
	"request-approvals/internal/mapper"
	api "request-approvals/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetPreApprovers returns the pre-approver sets offered for a request type.
func (h *Handler) GetPreApprovers(c *fiber.Ctx, params api.GetPreApproversParams) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	sets, err := h.uc.PreApproversForType(c.Context(), user, params.Type)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]api.PreApproverSet, 0, len(sets))
	for _, s := range sets {
		out = append(out, mapper.ToOAPIPreApproverSet(s))
	}
	return c.Status(http.StatusOK).JSON(struct {
		PreApproverSets []api.PreApproverSet `json:"preApproverSets"`
	}{PreApproverSets: out})
}

// GetApprovers returns the users the actor may assign as approvers.
func (h *Handler) GetApprovers(c *fiber.Ctx) error {
	user, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	users, err := h.uc.AvailableApprovers(c.Context(), user)
	if err != nil {
		h.log.Errorw("failed to list approvers", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Approvers []api.User `json:"approvers"`
	}{Approvers: toOAPIUsers(users)})
}

func toOAPIUsers(users []entities.User) []api.User {
	out := make([]api.User, 0, len(users))
	for _, u := range users {
		out = append(out, mapper.ToOAPIUser(u))
	}
	return out
}
