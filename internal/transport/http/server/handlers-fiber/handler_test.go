package handlers_fiber

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"request-approvals/internal/directory"
	api "request-approvals/internal/oapi"
	"request-approvals/internal/repository/memory"
	"request-approvals/internal/transport/http/middleware"
	"request-approvals/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop().Sugar()
	dir, err := directory.Load("", log)
	require.NoError(t, err)
	uc := usecase.New(log, memory.New(log), dir, time.Second)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	api.RegisterHandlersWithOptions(app, NewHandler(log, uc), api.FiberServerOptions{
		Middlewares: []fiber.Handler{middleware.Identity(log, uc)},
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, userID string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, data
}

type requestEnvelope struct {
	Request api.Request `json:"request"`
}

func decodeRequest(t *testing.T, data []byte) api.Request {
	t.Helper()
	var env requestEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env.Request
}

func errorCode(t *testing.T, data []byte) api.ErrorResponseErrorCode {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(data, &body))
	return body.Error.Code
}

func TestApprovalFlowOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, data := call(t, app, http.MethodPost, "/requests", "user-4", api.PostRequestsJSONRequestBody{
		Title: "Team offsite",
		Type:  "travel",
		Items: []api.Item{{Description: "bus", Quantity: 1}, {Description: "  "}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	draft := decodeRequest(t, data)
	require.Equal(t, "draft", draft.Status)
	require.Len(t, draft.Items, 1)

	resp, data = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/submit", "user-4", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, api.VALIDATION, errorCode(t, data))

	resp, _ = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/pre-approvers", "user-4",
		api.PostRequestsIdPreApproversJSONRequestBody{PreApproverSetId: "pre-app-001"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/submit", "user-4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pending := decodeRequest(t, data)
	require.Equal(t, "pending", pending.Status)
	require.Equal(t, 1, pending.CurrentLevel)

	resp, data = call(t, app, http.MethodGet, "/requests/pending", "user-3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var inbox struct {
		Requests []api.Request `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(data, &inbox))
	require.Len(t, inbox.Requests, 1)

	first := pending.Approvals[0]
	second := pending.Approvals[1]

	resp, data = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/approvals/"+second.Id+"/decision", "user-2",
		api.PostRequestsIdApprovalsApprovalIdDecisionJSONRequestBody{Decision: "approved"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, api.INVALIDTRANSITION, errorCode(t, data))

	resp, data = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/approvals/"+first.Id+"/decision", "user-2",
		api.PostRequestsIdApprovalsApprovalIdDecisionJSONRequestBody{Decision: "approved"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, api.UNAUTHORIZED, errorCode(t, data))

	resp, _ = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/approvals/"+first.Id+"/decision", "user-3",
		api.PostRequestsIdApprovalsApprovalIdDecisionJSONRequestBody{Decision: "approved"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/approvals/"+second.Id+"/decision", "user-2",
		api.PostRequestsIdApprovalsApprovalIdDecisionJSONRequestBody{Decision: "approved", Comment: "enjoy"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	done := decodeRequest(t, data)
	require.Equal(t, "approved", done.Status)
	require.Len(t, done.Comments, 2)
	require.Equal(t, "Approved the request at level 2: enjoy", done.Comments[1].Content)

	resp, data = call(t, app, http.MethodPost, "/requests/"+draft.Id+"/cancel", "user-4", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, api.INVALIDTRANSITION, errorCode(t, data))
}

func TestRequestAccessOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, data := call(t, app, http.MethodPost, "/requests", "user-4", api.PostRequestsJSONRequestBody{
		Title:     "Laptop",
		Type:      "purchase",
		Approvers: []api.Approver{{UserId: "user-3", Level: 1}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeRequest(t, data).Id

	resp, data = call(t, app, http.MethodGet, "/requests/"+id, "user-5", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, api.UNAUTHORIZED, errorCode(t, data))

	resp, _ = call(t, app, http.MethodGet, "/requests/"+id, "user-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = call(t, app, http.MethodGet, "/requests/"+id, "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, api.UNAUTHENTICATED, errorCode(t, data))

	resp, data = call(t, app, http.MethodPost, "/requests/"+id+"/approvers", "user-4",
		api.PostRequestsIdApproversJSONRequestBody{UserId: "user-3", Level: 2})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, api.APPROVEREXISTS, errorCode(t, data))

	title := "Gaming laptop"
	resp, data = call(t, app, http.MethodPatch, "/requests/"+id, "user-4", api.PatchRequestsIdJSONRequestBody{Title: &title})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, title, decodeRequest(t, data).Title)

	resp, data = call(t, app, http.MethodPost, "/requests/"+id+"/comments", "user-3",
		api.PostRequestsIdCommentsJSONRequestBody{Content: "why gaming?"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		Comment api.Comment `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(data, &created))
	require.Equal(t, "why gaming?", created.Comment.Content)

	resp, _ = call(t, app, http.MethodDelete, "/requests/"+id, "user-4", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, data = call(t, app, http.MethodGet, "/requests/"+id, "user-4", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, api.NOTFOUND, errorCode(t, data))
}

func TestDirectoryRoutes(t *testing.T) {
	app := newTestApp(t)

	resp, data := call(t, app, http.MethodGet, "/pre-approvers?type=leave", "user-4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sets struct {
		PreApproverSets []api.PreApproverSet `json:"preApproverSets"`
	}
	require.NoError(t, json.Unmarshal(data, &sets))
	require.Len(t, sets.PreApproverSets, 1)
	require.Equal(t, "pre-app-003", sets.PreApproverSets[0].Id)

	resp, data = call(t, app, http.MethodGet, "/approvers", "user-3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var approvers struct {
		Approvers []api.User `json:"approvers"`
	}
	require.NoError(t, json.Unmarshal(data, &approvers))
	for _, u := range approvers.Approvers {
		require.NotEqual(t, "user-3", u.Id)
	}

	resp, _ = call(t, app, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, data := call(t, app, http.MethodGet, "/no-such-route", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, api.NOTFOUND, errorCode(t, data))

	resp, _ = call(t, app, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, data = call(t, app, http.MethodGet, "/requests", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, api.UNAUTHENTICATED, errorCode(t, data))
}

func TestFiberErrorsRenderAsJSON(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/bad-query", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusBadRequest, "invalid query: level")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("disk on fire")
	})

	resp, data := call(t, app, http.MethodGet, "/bad-query", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
	require.Equal(t, api.VALIDATION, errorCode(t, data))

	resp, data = call(t, app, http.MethodGet, "/boom", "", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, api.INTERNAL, errorCode(t, data))
	require.NotContains(t, string(data), "disk on fire")
}
