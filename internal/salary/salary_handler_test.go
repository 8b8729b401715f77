package salary_test

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

	"github.com/OutLand606/FinancePro-sub001/internal/salary"
	salaryerrors "github.com/OutLand606/FinancePro-sub001/internal/salary/errors"
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

type fakeSalaryService struct {
	createComponentFn func(ctx context.Context, req salary.CreateComponentRequest) (salary.ComponentResponse, error)
	getAllFn          func(ctx context.Context) ([]salary.ComponentResponse, error)
	updateComponentFn func(ctx context.Context, id string, req salary.UpdateComponentRequest) (salary.ComponentResponse, error)
	deleteComponentFn func(ctx context.Context, id string) error
	createTemplateFn  func(ctx context.Context, req salary.CreateTemplateRequest) (salary.TemplateResponse, error)
	getTemplatesFn    func(ctx context.Context) ([]salary.TemplateResponse, error)
	getTemplateFn     func(ctx context.Context, id string) (salary.TemplateResponse, error)
	deleteTemplateFn  func(ctx context.Context, id string) error
}

func (f *fakeSalaryService) CreateComponent(ctx context.Context, req salary.CreateComponentRequest) (salary.ComponentResponse, error) {
	return f.createComponentFn(ctx, req)
}

func (f *fakeSalaryService) GetAllComponents(ctx context.Context) ([]salary.ComponentResponse, error) {
	return f.getAllFn(ctx)
}

func (f *fakeSalaryService) UpdateComponent(ctx context.Context, id string, req salary.UpdateComponentRequest) (salary.ComponentResponse, error) {
	return f.updateComponentFn(ctx, id, req)
}

func (f *fakeSalaryService) DeleteComponent(ctx context.Context, id string) error {
	return f.deleteComponentFn(ctx, id)
}

func (f *fakeSalaryService) CreateTemplate(ctx context.Context, req salary.CreateTemplateRequest) (salary.TemplateResponse, error) {
	return f.createTemplateFn(ctx, req)
}

func (f *fakeSalaryService) GetAllTemplates(ctx context.Context) ([]salary.TemplateResponse, error) {
	return f.getTemplatesFn(ctx)
}

func (f *fakeSalaryService) GetTemplateByID(ctx context.Context, id string) (salary.TemplateResponse, error) {
	return f.getTemplateFn(ctx, id)
}

func (f *fakeSalaryService) DeleteTemplate(ctx context.Context, id string) error {
	return f.deleteTemplateFn(ctx, id)
}

func TestSalaryHandler_CreateComponent(t *testing.T) {
	svc := &fakeSalaryService{
		createComponentFn: func(ctx context.Context, req salary.CreateComponentRequest) (salary.ComponentResponse, error) {
			assert.Equal(t, "LUONG_CB", req.Code)
			assert.Equal(t, "INCOME", req.Nature)
			return salary.ComponentResponse{ID: uuid.New().String(), Code: req.Code, Nature: req.Nature}, nil
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"code":"LUONG_CB","name":"Base salary","nature":"INCOME","formula":"base_salary"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-components", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateComponent(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestSalaryHandler_CreateComponent_InvalidNature(t *testing.T) {
	called := false
	svc := &fakeSalaryService{
		createComponentFn: func(ctx context.Context, req salary.CreateComponentRequest) (salary.ComponentResponse, error) {
			called = true
			return salary.ComponentResponse{}, nil
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"code":"X","name":"X","nature":"BONUS"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-components", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateComponent(c)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestSalaryHandler_UpdateComponent_SystemReadOnly(t *testing.T) {
	svc := &fakeSalaryService{
		updateComponentFn: func(ctx context.Context, id string, req salary.UpdateComponentRequest) (salary.ComponentResponse, error) {
			return salary.ComponentResponse{}, salaryerrors.ErrSystemComponentReadOnly
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"name":"Net pay","nature":"OTHER"}`
	c.Request = httptest.NewRequest(http.MethodPut, "/salary-components/123", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "123"}}

	h.UpdateComponent(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestSalaryHandler_CreateTemplate(t *testing.T) {
	compID := uuid.New().String()
	svc := &fakeSalaryService{
		createTemplateFn: func(ctx context.Context, req salary.CreateTemplateRequest) (salary.TemplateResponse, error) {
			assert.Equal(t, []string{compID}, req.ComponentIDs)
			return salary.TemplateResponse{ID: uuid.New().String(), Name: req.Name}, nil
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := `{"name":"Back Office","component_ids":["` + compID + `"]}`
	c.Request = httptest.NewRequest(http.MethodPost, "/salary-templates", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateTemplate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestSalaryHandler_GetTemplateByID_NotFound(t *testing.T) {
	svc := &fakeSalaryService{
		getTemplateFn: func(ctx context.Context, id string) (salary.TemplateResponse, error) {
			return salary.TemplateResponse{}, salaryerrors.ErrTemplateNotFound
		},
	}

	h := salary.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/salary-templates/123", nil)
	c.Params = []gin.Param{{Key: "id", Value: "123"}}

	h.GetTemplateByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
