package salary_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/salary"
	salaryerrors "github.com/OutLand606/FinancePro-sub001/internal/salary/errors"
)

type fakeSalaryRepository struct {
	withTxFn              func(tx *sql.Tx) salary.Repository
	createComponentFn     func(ctx context.Context, component *salary.SalaryComponent) error
	findAllComponentsFn   func(ctx context.Context) ([]salary.SalaryComponent, error)
	findComponentByIDFn   func(ctx context.Context, id string) (*salary.SalaryComponent, error)
	findComponentsByIDsFn func(ctx context.Context, ids []string) ([]salary.SalaryComponent, error)
	updateComponentFn     func(ctx context.Context, component *salary.SalaryComponent) error
	deleteComponentFn     func(ctx context.Context, id string) error
	createTemplateFn      func(ctx context.Context, template *salary.SalaryTemplate) error
	findAllTemplatesFn    func(ctx context.Context) ([]salary.SalaryTemplate, error)
	findTemplateByIDFn    func(ctx context.Context, id string) (*salary.SalaryTemplate, error)
	replaceMembersFn      func(ctx context.Context, templateID string, members []salary.TemplateMember) error
	deleteTemplateFn      func(ctx context.Context, id string) error
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) salary.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSalaryRepository) CreateComponent(ctx context.Context, component *salary.SalaryComponent) error {
	if f.createComponentFn != nil {
		return f.createComponentFn(ctx, component)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAllComponents(ctx context.Context) ([]salary.SalaryComponent, error) {
	if f.findAllComponentsFn != nil {
		return f.findAllComponentsFn(ctx)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindComponentByID(ctx context.Context, id string) (*salary.SalaryComponent, error) {
	if f.findComponentByIDFn != nil {
		return f.findComponentByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) FindComponentsByIDs(ctx context.Context, ids []string) ([]salary.SalaryComponent, error) {
	if f.findComponentsByIDsFn != nil {
		return f.findComponentsByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) UpdateComponent(ctx context.Context, component *salary.SalaryComponent) error {
	if f.updateComponentFn != nil {
		return f.updateComponentFn(ctx, component)
	}
	return nil
}

func (f *fakeSalaryRepository) DeleteComponent(ctx context.Context, id string) error {
	if f.deleteComponentFn != nil {
		return f.deleteComponentFn(ctx, id)
	}
	return nil
}

func (f *fakeSalaryRepository) CreateTemplate(ctx context.Context, template *salary.SalaryTemplate) error {
	if f.createTemplateFn != nil {
		return f.createTemplateFn(ctx, template)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAllTemplates(ctx context.Context) ([]salary.SalaryTemplate, error) {
	if f.findAllTemplatesFn != nil {
		return f.findAllTemplatesFn(ctx)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindTemplateByID(ctx context.Context, id string) (*salary.SalaryTemplate, error) {
	if f.findTemplateByIDFn != nil {
		return f.findTemplateByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) ReplaceMembers(ctx context.Context, templateID string, members []salary.TemplateMember) error {
	if f.replaceMembersFn != nil {
		return f.replaceMembersFn(ctx, templateID, members)
	}
	return nil
}

func (f *fakeSalaryRepository) DeleteTemplate(ctx context.Context, id string) error {
	if f.deleteTemplateFn != nil {
		return f.deleteTemplateFn(ctx, id)
	}
	return nil
}

type salaryServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service salary.Service
	repo    *fakeSalaryRepository
}

func setupSalaryServiceTest(t *testing.T) *salaryServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSalaryRepository{}
	svc := salary.NewService(db, repo)

	return &salaryServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestSalaryService_CreateComponent(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	var created *salary.SalaryComponent
	deps.repo.createComponentFn = func(ctx context.Context, component *salary.SalaryComponent) error {
		created = component
		return nil
	}

	resp, err := deps.service.CreateComponent(ctx, salary.CreateComponentRequest{
		Code:    "LUONG_CB",
		Name:    "Base salary",
		Nature:  "INCOME",
		Formula: "base_salary / std_days * actual_work_days",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, "LUONG_CB", resp.Code)
	assert.Equal(t, "INCOME", resp.Nature)
	assert.NotEmpty(t, resp.ID)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryService_CreateComponent_DuplicateCode(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.createComponentFn = func(ctx context.Context, component *salary.SalaryComponent) error {
		return salaryerrors.ErrDuplicateCode
	}

	_, err := deps.service.CreateComponent(ctx, salary.CreateComponentRequest{
		Code: "LUONG_CB", Name: "Base salary", Nature: "INCOME",
	})

	assert.ErrorIs(t, err, salaryerrors.ErrDuplicateCode)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryService_UpdateComponent_SystemReadOnly(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findComponentByIDFn = func(ctx context.Context, cid string) (*salary.SalaryComponent, error) {
		return &salary.SalaryComponent{ID: id, Code: "THUC_LINH", IsSystemDefined: true}, nil
	}

	_, err := deps.service.UpdateComponent(ctx, id.String(), salary.UpdateComponentRequest{
		Name: "Net pay", Nature: "OTHER",
	})

	assert.ErrorIs(t, err, salaryerrors.ErrSystemComponentReadOnly)
}

func TestSalaryService_UpdateComponent_InvalidID(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	_, err := deps.service.UpdateComponent(ctx, "nope", salary.UpdateComponentRequest{
		Name: "X", Nature: "INCOME",
	})

	assert.ErrorIs(t, err, salaryerrors.ErrInvalidComponentID)
}

func TestSalaryService_DeleteComponent_NotFound(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)

	err := deps.service.DeleteComponent(ctx, uuid.New().String())

	assert.ErrorIs(t, err, salaryerrors.ErrComponentNotFound)
}

func TestSalaryService_CreateTemplate(t *testing.T) {
	ctx := context.Background()

	compA := salary.SalaryComponent{ID: uuid.New(), Code: "LUONG_CB", Name: "Base salary", Nature: "INCOME"}
	compB := salary.SalaryComponent{ID: uuid.New(), Code: "BHXH", Name: "Social insurance", Nature: "DEDUCTION"}

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, true)
	deps.repo.findComponentsByIDsFn = func(ctx context.Context, ids []string) ([]salary.SalaryComponent, error) {
		return []salary.SalaryComponent{compB, compA}, nil
	}
	var members []salary.TemplateMember
	deps.repo.replaceMembersFn = func(ctx context.Context, templateID string, m []salary.TemplateMember) error {
		members = m
		return nil
	}

	resp, err := deps.service.CreateTemplate(ctx, salary.CreateTemplateRequest{
		Name:         "Back Office",
		ComponentIDs: []string{compA.ID.String(), compB.ID.String()},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Components, 2)

	// Requested order is preserved regardless of lookup order.
	assert.Equal(t, "LUONG_CB", resp.Components[0].Code)
	assert.Equal(t, "BHXH", resp.Components[1].Code)
	assert.Len(t, members, 2)
	assert.Equal(t, 0, members[0].Position)
	assert.Equal(t, compA.ID, members[0].ComponentID)
	assert.Equal(t, 1, members[1].Position)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryService_CreateTemplate_DuplicateCode(t *testing.T) {
	ctx := context.Background()

	comp := salary.SalaryComponent{ID: uuid.New(), Code: "LUONG_CB", Nature: "INCOME"}
	other := salary.SalaryComponent{ID: uuid.New(), Code: "LUONG_CB", Nature: "INCOME"}

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findComponentsByIDsFn = func(ctx context.Context, ids []string) ([]salary.SalaryComponent, error) {
		return []salary.SalaryComponent{comp, other}, nil
	}

	_, err := deps.service.CreateTemplate(ctx, salary.CreateTemplateRequest{
		Name:         "Broken",
		ComponentIDs: []string{comp.ID.String(), other.ID.String()},
	})

	assert.ErrorIs(t, err, salaryerrors.ErrDuplicateCodeInTemplate)
}

func TestSalaryService_CreateTemplate_UnknownComponent(t *testing.T) {
	ctx := context.Background()

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	expectTx(t, deps.sqlMock, false)
	deps.repo.findComponentsByIDsFn = func(ctx context.Context, ids []string) ([]salary.SalaryComponent, error) {
		return nil, nil
	}

	_, err := deps.service.CreateTemplate(ctx, salary.CreateTemplateRequest{
		Name:         "Empty",
		ComponentIDs: []string{uuid.New().String()},
	})

	assert.ErrorIs(t, err, salaryerrors.ErrComponentNotFound)
}

func TestSalaryService_GetTemplateByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	comp := salary.SalaryComponent{ID: uuid.New(), Code: "LUONG_CB", Nature: "INCOME"}

	deps := setupSalaryServiceTest(t)
	defer deps.db.Close()

	deps.repo.findTemplateByIDFn = func(ctx context.Context, tid string) (*salary.SalaryTemplate, error) {
		if tid != id.String() {
			return nil, gorm.ErrRecordNotFound
		}
		return &salary.SalaryTemplate{
			ID:   id,
			Name: "Back Office",
			Members: []salary.TemplateMember{
				{TemplateID: id, ComponentID: comp.ID, Position: 0, Component: &comp},
			},
		}, nil
	}

	resp, err := deps.service.GetTemplateByID(ctx, id.String())

	assert.NoError(t, err)
	assert.Equal(t, "Back Office", resp.Name)
	assert.Len(t, resp.Components, 1)
	assert.Equal(t, "LUONG_CB", resp.Components[0].Code)

	_, err = deps.service.GetTemplateByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, salaryerrors.ErrTemplateNotFound)
}
