package handler_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"payrouter/internal/domain"
	"payrouter/internal/registry/handler"
	"payrouter/internal/registry/handler/mocks"
	dErrors "payrouter/pkg/domain-errors"
	"payrouter/pkg/testutil"
)

func newRouter(service handler.Service) chi.Router {
	r := chi.NewRouter()
	handler.New(service, slog.Default()).Register(r)
	return r
}

func sampleProviders() []domain.Provider {
	return []domain.Provider{
		{
			ID: "acq_a", Regions: []string{"ZA"}, Currencies: []string{"ZAR"},
			Schemes: []string{"visa"}, Funding: []string{"debit"},
			BaseWeight: 50, CostBps: 100, Status: domain.StatusHealthy,
		},
		{
			ID: "acq_b", Regions: []string{"EU"}, Currencies: []string{"EUR"},
			BaseWeight: 30, CostBps: 80, Status: domain.StatusDown,
		},
	}
}

func TestHandleListProviders(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().List(gomock.Any()).Return(sampleProviders(), nil)

	rr := testutil.DoRequest(newRouter(service), testutil.NewRequest(t, http.MethodGet, "/providers"))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp handler.ListResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Providers, 2)
	assert.Equal(t, "acq_a", resp.Providers[0].ID)
	assert.Equal(t, "healthy", resp.Providers[0].Status)
	assert.Equal(t, "down", resp.Providers[1].Status)
}

func TestHandleSetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().SetStatus(gomock.Any(), "acq_a", domain.StatusDown).Return(nil)

	rr := testutil.DoRequest(newRouter(service), testutil.NewRequest(t, http.MethodPost, "/providers/acq_a/status/down"))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp handler.StatusResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "acq_a", resp.ProviderID)
	assert.Equal(t, "down", resp.Status)
}

func TestHandleSetStatus_InvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)

	rr := testutil.DoRequest(newRouter(service), testutil.NewRequest(t, http.MethodPost, "/providers/acq_a/status/degraded"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleSetStatus_UnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().SetStatus(gomock.Any(), "acq_nope", domain.StatusHealthy).
		Return(dErrors.New(dErrors.CodeNotFound, `provider "acq_nope" not found`))

	rr := testutil.DoRequest(newRouter(service), testutil.NewRequest(t, http.MethodPost, "/providers/acq_nope/status/healthy"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandleReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().Reload(gomock.Any()).Return(nil)
	service.EXPECT().List(gomock.Any()).Return(sampleProviders(), nil)

	rr := testutil.DoRequest(newRouter(service), testutil.NewRequest(t, http.MethodPost, "/reload"))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp handler.ReloadResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.True(t, resp.OK)
	assert.Equal(t, []string{"acq_a", "acq_b"}, resp.Providers)
}

func TestHandleReload_InvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().Reload(gomock.Any()).
		Return(dErrors.New(dErrors.CodeValidation, `provider "dup": duplicate id`))

	rr := testutil.DoRequest(newRouter(service), testutil.NewRequest(t, http.MethodPost, "/reload"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "duplicate id")
}

func TestHandleReload_FileUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockService(ctrl)
	service.EXPECT().Reload(gomock.Any()).
		Return(dErrors.New(dErrors.CodeUnavailable, "failed to read providers file"))

	rr := testutil.DoRequest(newRouter(service), testutil.NewRequest(t, http.MethodPost, "/reload"))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
