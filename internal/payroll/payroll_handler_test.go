package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/apperror"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	previewFn     func(ctx context.Context, employeeID, month string) (payroll.PreviewResponse, error)
	generateFn    func(ctx context.Context, employeeID, month string) (payroll.GenerateResponse, error)
	generateAllFn func(ctx context.Context, month, role string) (payroll.BatchResponse, error)
	getSalaryFn   func(ctx context.Context, employeeID, month string) (payroll.SalaryResponse, error)
	payslipFileFn func(ctx context.Context, employeeID, month string) (string, error)
}

func (f *fakePayrollService) Preview(ctx context.Context, employeeID, month string) (payroll.PreviewResponse, error) {
	return f.previewFn(ctx, employeeID, month)
}
func (f *fakePayrollService) Generate(ctx context.Context, employeeID, month string) (payroll.GenerateResponse, error) {
	return f.generateFn(ctx, employeeID, month)
}
func (f *fakePayrollService) GenerateAll(ctx context.Context, month, role string) (payroll.BatchResponse, error) {
	return f.generateAllFn(ctx, month, role)
}
func (f *fakePayrollService) GetSalary(ctx context.Context, employeeID, month string) (payroll.SalaryResponse, error) {
	return f.getSalaryFn(ctx, employeeID, month)
}
func (f *fakePayrollService) PayslipFile(ctx context.Context, employeeID, month string) (string, error) {
	return f.payslipFileFn(ctx, employeeID, month)
}

func newTestRouter(svc payroll.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := payroll.NewHandler(svc)

	r := gin.New()
	r.GET("/payroll/preview", h.Preview)
	r.POST("/payroll/generate", h.Generate)
	r.POST("/payroll/generate-all", h.GenerateAll)
	r.GET("/payroll/salaries/:employee_id/:month", h.GetSalary)
	return r
}

func TestHandler_Preview(t *testing.T) {
	empID := uuid.New().String()
	svc := &fakePayrollService{
		previewFn: func(ctx context.Context, employeeID, month string) (payroll.PreviewResponse, error) {
			assert.Equal(t, empID, employeeID)
			assert.Equal(t, "2025-07", month)
			return payroll.PreviewResponse{EmployeeID: employeeID, Month: month, Net: 70050}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payroll/preview?employee_id="+empID+"&month=2025-07", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var resp payroll.PreviewResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, int64(70050), resp.Net)
}

func TestHandler_Generate_StatusCodes(t *testing.T) {
	cases := []struct {
		status   string
		wantCode int
	}{
		{payroll.GenerateStatusCreated, http.StatusCreated},
		{payroll.GenerateStatusUpdated, http.StatusOK},
	}

	for _, tc := range cases {
		svc := &fakePayrollService{
			generateFn: func(ctx context.Context, employeeID, month string) (payroll.GenerateResponse, error) {
				return payroll.GenerateResponse{Status: tc.status}, nil
			},
		}
		r := newTestRouter(svc)

		w := httptest.NewRecorder()
		body := `{"employee_id":"` + uuid.New().String() + `","month":"2025-07"}`
		req := httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.wantCode, w.Code, tc.status)
	}
}

func TestHandler_Generate_MissingFields(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, employeeID, month string) (payroll.GenerateResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return payroll.GenerateResponse{}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(`{"month":"2025-07"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, apperror.CodeInvalidInput, env.Error.Code)
}

func TestHandler_Generate_ServiceErrorMapped(t *testing.T) {
	svc := &fakePayrollService{
		generateFn: func(ctx context.Context, employeeID, month string) (payroll.GenerateResponse, error) {
			return payroll.GenerateResponse{}, payrollerrors.ErrEmployeeNotFound
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	body := `{"employee_id":"` + uuid.New().String() + `","month":"2025-07"}`
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, payrollerrors.ErrEmployeeNotFound.Code, env.Error.Code)
}

func TestHandler_GenerateAll(t *testing.T) {
	svc := &fakePayrollService{
		generateAllFn: func(ctx context.Context, month, role string) (payroll.BatchResponse, error) {
			assert.Equal(t, "2025-07", month)
			assert.Equal(t, "engineer", role)
			return payroll.BatchResponse{Month: month, TotalEmployees: 3, ProcessedCount: 2, FailedCount: 1}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payroll/generate-all", strings.NewReader(`{"month":"2025-07","role":"engineer"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp payroll.BatchResponse
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 3, resp.TotalEmployees)
	assert.Equal(t, 1, resp.FailedCount)
}

func TestHandler_GetSalary_NotFound(t *testing.T) {
	svc := &fakePayrollService{
		getSalaryFn: func(ctx context.Context, employeeID, month string) (payroll.SalaryResponse, error) {
			return payroll.SalaryResponse{}, payrollerrors.ErrSalaryNotFound
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payroll/salaries/"+uuid.New().String()+"/2025-07", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, payrollerrors.ErrSalaryNotFound.Code, env.Error.Code)
}
