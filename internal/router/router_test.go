package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/handler"
	"fuelbooks/internal/router"
	"fuelbooks/internal/service"
	"fuelbooks/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newEngine(validator service.TokenValidator, coord service.LineTaxCoordinator) *gin.Engine {
	poSvc := new(mocks.MockPurchaseOrderService)
	exportSvc := new(mocks.MockExportService)
	return router.Setup(validator, router.Handlers{
		Tax:           handler.NewTaxHandler(poSvc),
		PurchaseOrder: handler.NewPurchaseOrderHandler(poSvc),
		DraftLine:     handler.NewDraftLineHandler(coord, poSvc),
		Export:        handler.NewExportHandler(exportSvc),
		Health:        handler.NewHealthHandler(okPinger{}),
	}, []string{"http://localhost:3000"})
}

func TestSetup_HealthIsPublic(t *testing.T) {
	r := newEngine(new(mocks.MockTokenValidator), new(mocks.MockLineTaxCoordinator))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetup_APIRequiresToken(t *testing.T) {
	r := newEngine(new(mocks.MockTokenValidator), new(mocks.MockLineTaxCoordinator))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/exports/sales/plan?from=2024-04-01&to=2024-04-30", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetup_DraftLineRoute(t *testing.T) {
	validator := new(mocks.MockTokenValidator)
	validator.On("ValidateToken", "tok").Return(&service.Claims{UserID: uuid.New(), Role: "clerk"}, nil)
	coord := new(mocks.MockLineTaxCoordinator)
	lineID := uuid.New()
	coord.On("State", lineID).Return(nil, domain.ErrNotFound)

	r := newEngine(validator, coord)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/draft-lines/"+lineID.String(), http.NoBody)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	coord.AssertCalled(t, "State", mock.Anything)
}
