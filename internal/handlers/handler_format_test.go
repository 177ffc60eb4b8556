package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ecomkit/prices/internal/apperrors"
	portssvc "github.com/ecomkit/prices/internal/core/ports/services"
	"github.com/ecomkit/prices/internal/core/services"
	"github.com/ecomkit/prices/internal/dto"
	"github.com/ecomkit/prices/internal/handlers"
	"github.com/ecomkit/prices/pkg/config"
	"github.com/ecomkit/prices/pkg/money"
)

// --- Mock FormatterService ---
type MockFormatterService struct {
	mock.Mock
}

func (m *MockFormatterService) FormatPrice(value decimal.Decimal, currency string, opts dto.FormatOptions) (string, error) {
	args := m.Called(value, currency, opts)
	return args.String(0), args.Error(1)
}

func (m *MockFormatterService) FormatAmount(a money.Amount, htmlMode, normalize bool) (string, error) {
	args := m.Called(a, htmlMode, normalize)
	return args.String(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.FormatterSvcFacade = (*MockFormatterService)(nil)

// --- Test Suite ---
type FormatHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockFormatter *MockFormatterService
	mockPricing   *MockPricingService
}

func (suite *FormatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockFormatter = new(MockFormatterService)
	suite.mockPricing = new(MockPricingService)

	handlers.RegisterRoutes(suite.router, &config.Config{}, &portssvc.ServiceContainer{
		Formatter: suite.mockFormatter,
		Pricing:   suite.mockPricing,
	}, nil)
}

func (suite *FormatHandlerTestSuite) TestFormatPrice_Success() {
	suite.mockFormatter.On("FormatPrice",
		mock.MatchedBy(func(v decimal.Decimal) bool { return v.Equal(decimal.RequireFromString("10")) }),
		"USD",
		dto.FormatOptions{Locale: "en_US"},
	).Return("$10.00", nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/format?value=10&currency=USD&locale=en_US", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.FormatResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("$10.00", body.Formatted)
	suite.Equal("USD", body.Currency)
	suite.mockFormatter.AssertExpectations(suite.T())
}

func (suite *FormatHandlerTestSuite) TestFormatPrice_UnsupportedCurrency() {
	suite.mockFormatter.On("FormatPrice", mock.Anything, "ZZZ", mock.Anything).
		Return("", apperrors.ErrUnsupportedCurrency).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/format?value=10&currency=ZZZ", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockFormatter.AssertExpectations(suite.T())
}

func (suite *FormatHandlerTestSuite) TestFormatPrice_NonNumericValue() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/format?value=ten&currency=USD", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFormatter.AssertNotCalled(suite.T(), "FormatPrice")
}

func (suite *FormatHandlerTestSuite) TestFormatPrice_MissingCurrency() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/format?value=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFormatter.AssertNotCalled(suite.T(), "FormatPrice")
}

func TestFormatHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FormatHandlerTestSuite))
}

// End-to-end through the real formatter service, no mocks.
func TestFormatEndpointWithRealService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers.RegisterRoutes(router, &config.Config{}, &portssvc.ServiceContainer{
		Formatter: services.NewFormatService("en-US"),
		Pricing:   new(MockPricingService),
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/format?value=1222.5&currency=USD", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body dto.FormatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Formatted != "$1,222.50" {
		t.Fatalf("expected $1,222.50, got %q", body.Formatted)
	}
}
