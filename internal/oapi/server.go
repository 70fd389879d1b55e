package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /requests)
	GetRequests(c *fiber.Ctx) error
	// (GET /requests/pending)
	GetRequestsPending(c *fiber.Ctx) error
	// (POST /requests)
	PostRequests(c *fiber.Ctx) error
	// (GET /requests/{id})
	GetRequestsId(c *fiber.Ctx, id string) error
	// (PATCH /requests/{id})
	PatchRequestsId(c *fiber.Ctx, id string) error
	// (DELETE /requests/{id})
	DeleteRequestsId(c *fiber.Ctx, id string) error
	// (POST /requests/{id}/submit)
	PostRequestsIdSubmit(c *fiber.Ctx, id string) error
	// (POST /requests/{id}/cancel)
	PostRequestsIdCancel(c *fiber.Ctx, id string) error
	// (POST /requests/{id}/approvers)
	PostRequestsIdApprovers(c *fiber.Ctx, id string) error
	// (DELETE /requests/{id}/approvers/{approvalId})
	DeleteRequestsIdApproversApprovalId(c *fiber.Ctx, id string, approvalId string) error
	// (POST /requests/{id}/pre-approvers)
	PostRequestsIdPreApprovers(c *fiber.Ctx, id string) error
	// (POST /requests/{id}/approvals/{approvalId}/decision)
	PostRequestsIdApprovalsApprovalIdDecision(c *fiber.Ctx, id string, approvalId string) error
	// (POST /requests/{id}/comments)
	PostRequestsIdComments(c *fiber.Ctx, id string) error
	// (GET /pre-approvers)
	GetPreApprovers(c *fiber.Ctx, params GetPreApproversParams) error
	// (GET /approvers)
	GetApprovers(c *fiber.Ctx) error
}

// ServerInterfaceWrapper converts fiber contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetRequests(c *fiber.Ctx) error {
	return w.Handler.GetRequests(c)
}

func (w *ServerInterfaceWrapper) GetRequestsPending(c *fiber.Ctx) error {
	return w.Handler.GetRequestsPending(c)
}

func (w *ServerInterfaceWrapper) PostRequests(c *fiber.Ctx) error {
	return w.Handler.PostRequests(c)
}

func (w *ServerInterfaceWrapper) GetRequestsId(c *fiber.Ctx) error {
	return w.Handler.GetRequestsId(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) PatchRequestsId(c *fiber.Ctx) error {
	return w.Handler.PatchRequestsId(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) DeleteRequestsId(c *fiber.Ctx) error {
	return w.Handler.DeleteRequestsId(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) PostRequestsIdSubmit(c *fiber.Ctx) error {
	return w.Handler.PostRequestsIdSubmit(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) PostRequestsIdCancel(c *fiber.Ctx) error {
	return w.Handler.PostRequestsIdCancel(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) PostRequestsIdApprovers(c *fiber.Ctx) error {
	return w.Handler.PostRequestsIdApprovers(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) DeleteRequestsIdApproversApprovalId(c *fiber.Ctx) error {
	return w.Handler.DeleteRequestsIdApproversApprovalId(c, c.Params("id"), c.Params("approvalId"))
}

func (w *ServerInterfaceWrapper) PostRequestsIdPreApprovers(c *fiber.Ctx) error {
	return w.Handler.PostRequestsIdPreApprovers(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) PostRequestsIdApprovalsApprovalIdDecision(c *fiber.Ctx) error {
	return w.Handler.PostRequestsIdApprovalsApprovalIdDecision(c, c.Params("id"), c.Params("approvalId"))
}

func (w *ServerInterfaceWrapper) PostRequestsIdComments(c *fiber.Ctx) error {
	return w.Handler.PostRequestsIdComments(c, c.Params("id"))
}

func (w *ServerInterfaceWrapper) GetPreApprovers(c *fiber.Ctx) error {
	var params GetPreApproversParams
	if err := c.QueryParser(&params); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid query: "+err.Error())
	}
	return w.Handler.GetPreApprovers(c, params)
}

func (w *ServerInterfaceWrapper) GetApprovers(c *fiber.Ctx) error {
	return w.Handler.GetApprovers(c)
}

// FiberServerOptions configures route registration.
type FiberServerOptions struct {
	// Middlewares run ahead of every API handler, on matched routes only.
	Middlewares []fiber.Handler
}

// RegisterHandlersWithOptions registers the API routes with per-route middlewares.
// /requests/pending is registered ahead of /requests/:id so it is not read as an id.
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	w := &ServerInterfaceWrapper{Handler: si}
	chain := func(h fiber.Handler) []fiber.Handler {
		out := make([]fiber.Handler, 0, len(options.Middlewares)+1)
		out = append(out, options.Middlewares...)
		return append(out, h)
	}

	router.Get("/requests", chain(w.GetRequests)...)
	router.Get("/requests/pending", chain(w.GetRequestsPending)...)
	router.Post("/requests", chain(w.PostRequests)...)
	router.Get("/requests/:id", chain(w.GetRequestsId)...)
	router.Patch("/requests/:id", chain(w.PatchRequestsId)...)
	router.Delete("/requests/:id", chain(w.DeleteRequestsId)...)
	router.Post("/requests/:id/submit", chain(w.PostRequestsIdSubmit)...)
	router.Post("/requests/:id/cancel", chain(w.PostRequestsIdCancel)...)
	router.Post("/requests/:id/approvers", chain(w.PostRequestsIdApprovers)...)
	router.Delete("/requests/:id/approvers/:approvalId", chain(w.DeleteRequestsIdApproversApprovalId)...)
	router.Post("/requests/:id/pre-approvers", chain(w.PostRequestsIdPreApprovers)...)
	router.Post("/requests/:id/approvals/:approvalId/decision", chain(w.PostRequestsIdApprovalsApprovalIdDecision)...)
	router.Post("/requests/:id/comments", chain(w.PostRequestsIdComments)...)
	router.Get("/pre-approvers", chain(w.GetPreApprovers)...)
	router.Get("/approvers", chain(w.GetApprovers)...)
}
