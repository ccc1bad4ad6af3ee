package estimate_quote

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"moving-quote/internal/catalog"
	"moving-quote/internal/service/estimate"
)

type MockQuoteCalculator struct {
	mock.Mock
}

func (m *MockQuoteCalculator) Estimate(req estimate.Request) estimate.Result {
	args := m.Called(req)
	return args.Get(0).(estimate.Result)
}

func TestCalculateQuote_Success(t *testing.T) {
	mockCalc := new(MockQuoteCalculator)

	result := estimate.Result{
		Total: 670000,
		Lines: []estimate.CostLine{
			{Label: "기본 운임", Amount: 600000, Note: "2.5톤 트럭"},
			{Label: "출발지 사다리차", Amount: 70000, Note: "5층"},
		},
		Personnel: estimate.Personnel{BaseMen: 3, BaseWomen: 1, FinalMen: 3, FinalWomen: 1},
	}

	mockCalc.On("Estimate", mock.MatchedBy(func(req estimate.Request) bool {
		return req.Category == catalog.CategoryHome && req.VehicleName == "2.5톤 트럭"
	})).Return(result)

	handler := CalculateQuote(slog.Default(), mockCalc)

	reqBody := `{
		"category": "home",
		"vehicle": "2.5톤 트럭",
		"items": {"냉장고": 1, "세탁기": 2},
		"start_floor": "5",
		"start_method": "ladder"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp Resp
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	assert.Equal(t, 670000, resp.Total)
	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, "기본 운임", resp.Lines[0].Label)
	assert.Equal(t, 600000, resp.Lines[0].Amount)
	assert.Equal(t, 3, resp.Personnel.FinalMen)

	mockCalc.AssertExpectations(t)
}

func TestCalculateQuote_InvalidJSON(t *testing.T) {
	mockCalc := new(MockQuoteCalculator)
	handler := CalculateQuote(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockCalc.AssertNotCalled(t, "Estimate")
}

func TestCalculateQuote_EngineErrorResult(t *testing.T) {
	mockCalc := new(MockQuoteCalculator)

	// фатальные случаи движок отдаёт строкой ошибки, для HTTP это всё ещё 200
	mockCalc.On("Estimate", mock.Anything).Return(estimate.Result{
		Total: 0,
		Lines: []estimate.CostLine{{Label: "오류", Note: "차량이 선택되지 않았습니다"}},
	})

	handler := CalculateQuote(slog.Default(), mockCalc)

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", strings.NewReader(`{"category":"home"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Resp
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Equal(t, "오류", resp.Lines[0].Label)

	mockCalc.AssertExpectations(t)
}
