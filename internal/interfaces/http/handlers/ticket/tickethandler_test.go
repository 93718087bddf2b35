package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extinsia/internal/application/ticket/dto"
	"extinsia/internal/application/ticket/usecases"
	"extinsia/internal/shared/errors"
)

type mockCreateExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

func (m *mockCreateExecutor) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockUpdateExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error)
}

func (m *mockUpdateExecutor) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error)
}

func (m *mockGetExecutor) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockListExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListTicketsQuery) ([]*dto.TicketDTO, error)
}

func (m *mockListExecutor) Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockDeleteExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

func (m *mockDeleteExecutor) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

func newTestRouter(h *TicketHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/tickets", h.CreateTicket)
	engine.GET("/tickets", h.ListTickets)
	engine.GET("/tickets/:code", h.GetTicket)
	engine.PATCH("/tickets/:code", h.UpdateTicket)
	engine.DELETE("/tickets/:code", h.DeleteTicket)
	return engine
}

func sampleTicketDTO() *dto.TicketDTO {
	return &dto.TicketDTO{
		Code:         "TIC-1",
		Service:      "Venta",
		CustomerCode: "CLI-1",
		CustomerName: "Ferretería El Clavo",
		Items: []dto.ResolvedItemDTO{
			{Code: "EXT-1", Name: "Extintor Pqs 6Kg", UnitPrice: 950, Quantity: 2},
		},
		Total: 1900,
	}
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	var captured usecases.CreateTicketCommand
	handler := NewTicketHandler(
		&mockCreateExecutor{ExecuteFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
			captured = cmd
			return sampleTicketDTO(), nil
		}},
		nil, nil, nil, nil,
	)

	body := `{"servicio":"venta","codigo_cliente":"CLI-1","productos":[{"codigo":"EXT-1","cantidad":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/tickets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "venta", captured.Service)
	assert.Equal(t, "CLI-1", captured.CustomerCode)
	require.Len(t, captured.Items, 1)
	assert.Equal(t, "EXT-1", captured.Items[0].Code)
	assert.Equal(t, 2, captured.Items[0].Quantity)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "TIC-1", data["codigo_ticket"])
	assert.Equal(t, float64(1900), data["total"])
}

func TestTicketHandler_CreateTicketRejectsMalformedBody(t *testing.T) {
	handler := NewTicketHandler(
		&mockCreateExecutor{ExecuteFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
			t.Fatal("use case must not run on a malformed body")
			return nil, nil
		}},
		nil, nil, nil, nil,
	)

	req := httptest.NewRequest(http.MethodPost, "/tickets", bytes.NewBufferString(`{"servicio":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTicketHandler_CreateTicketUnknownItem(t *testing.T) {
	handler := NewTicketHandler(
		&mockCreateExecutor{ExecuteFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
			return nil, errors.NewValidationError(`item "ZZZ-404" not found in either catalog`)
		}},
		nil, nil, nil, nil,
	)

	body := `{"servicio":"venta","codigo_cliente":"CLI-1","productos":[{"codigo":"ZZZ-404","cantidad":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/tickets", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found in either catalog")
}

func TestTicketHandler_GetTicketNotFound(t *testing.T) {
	handler := NewTicketHandler(
		nil, nil,
		&mockGetExecutor{ExecuteFunc: func(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
			return nil, errors.NewNotFoundError(`ticket "TIC-99" not found`)
		}},
		nil, nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/tickets/TIC-99", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTicketHandler_ListTicketsPassesCustomerFilter(t *testing.T) {
	var captured usecases.ListTicketsQuery
	handler := NewTicketHandler(
		nil, nil, nil,
		&mockListExecutor{ExecuteFunc: func(ctx context.Context, query usecases.ListTicketsQuery) ([]*dto.TicketDTO, error) {
			captured = query
			return []*dto.TicketDTO{sampleTicketDTO()}, nil
		}},
		nil,
	)

	req := httptest.NewRequest(http.MethodGet, "/tickets?codigo_cliente=CLI-1", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CLI-1", captured.CustomerCode)
}

func TestTicketHandler_UpdateTicketOmittedItemsStayNil(t *testing.T) {
	var captured usecases.UpdateTicketCommand
	handler := NewTicketHandler(
		nil,
		&mockUpdateExecutor{ExecuteFunc: func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
			captured = cmd
			return sampleTicketDTO(), nil
		}},
		nil, nil, nil,
	)

	req := httptest.NewRequest(http.MethodPatch, "/tickets/TIC-1", bytes.NewBufferString(`{"servicio":"recarga"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "TIC-1", captured.TicketCode)
	assert.Equal(t, "recarga", captured.Service)
	assert.Nil(t, captured.Items)
}

func TestTicketHandler_UpdateTicketEmptyItemListReachesUseCase(t *testing.T) {
	var captured usecases.UpdateTicketCommand
	handler := NewTicketHandler(
		nil,
		&mockUpdateExecutor{ExecuteFunc: func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
			captured = cmd
			return nil, errors.NewValidationError("items list must not be empty")
		}},
		nil, nil, nil,
	)

	req := httptest.NewRequest(http.MethodPatch, "/tickets/TIC-1", bytes.NewBufferString(`{"productos":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, captured.Items)
	assert.Empty(t, *captured.Items)
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	handler := NewTicketHandler(
		nil, nil, nil, nil,
		&mockDeleteExecutor{ExecuteFunc: func(ctx context.Context, cmd usecases.DeleteTicketCommand) error {
			assert.Equal(t, "TIC-1", cmd.TicketCode)
			return nil
		}},
	)

	req := httptest.NewRequest(http.MethodDelete, "/tickets/TIC-1", nil)
	rec := httptest.NewRecorder()

	newTestRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
