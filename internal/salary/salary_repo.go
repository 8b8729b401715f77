package salary

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
	salaryerrors "github.com/OutLand606/FinancePro-sub001/internal/salary/errors"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateComponent(ctx context.Context, component *SalaryComponent) error
	FindAllComponents(ctx context.Context) ([]SalaryComponent, error)
	FindComponentByID(ctx context.Context, id string) (*SalaryComponent, error)
	FindComponentsByIDs(ctx context.Context, ids []string) ([]SalaryComponent, error)
	UpdateComponent(ctx context.Context, component *SalaryComponent) error
	DeleteComponent(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, template *SalaryTemplate) error
	FindAllTemplates(ctx context.Context) ([]SalaryTemplate, error)
	FindTemplateByID(ctx context.Context, id string) (*SalaryTemplate, error)
	ReplaceMembers(ctx context.Context, templateID string, members []TemplateMember) error
	DeleteTemplate(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the caller's transaction connection,
// so every statement issued through it commits or rolls back with the tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txdb := r.db.Session(&gorm.Session{
		Context:                context.Background(),
		NewDB:                  true,
		SkipDefaultTransaction: true,
	})
	txdb.Statement.ConnPool = tx
	return &repository{db: txdb}
}

func (r *repository) CreateComponent(ctx context.Context, component *SalaryComponent) error {
	err := r.db.WithContext(ctx).Create(component).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return salaryerrors.ErrDuplicateCode
		}
	}
	return err
}

func (r *repository) FindAllComponents(ctx context.Context) ([]SalaryComponent, error) {
	var components []SalaryComponent
	err := r.db.WithContext(ctx).Order("code ASC").Find(&components).Error
	return components, err
}

func (r *repository) FindComponentByID(ctx context.Context, id string) (*SalaryComponent, error) {
	var component SalaryComponent
	err := r.db.WithContext(ctx).First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

func (r *repository) FindComponentsByIDs(ctx context.Context, ids []string) ([]SalaryComponent, error) {
	var components []SalaryComponent
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&components).Error
	return components, err
}

func (r *repository) UpdateComponent(ctx context.Context, component *SalaryComponent) error {
	return r.db.WithContext(ctx).Save(component).Error
}

func (r *repository) DeleteComponent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SalaryComponent{}, "id = ?", id).Error
}

func (r *repository) CreateTemplate(ctx context.Context, template *SalaryTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *repository) FindAllTemplates(ctx context.Context) ([]SalaryTemplate, error) {
	var templates []SalaryTemplate
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Members.Component").
		Order("name ASC").
		Find(&templates).Error
	return templates, err
}

func (r *repository) FindTemplateByID(ctx context.Context, id string) (*SalaryTemplate, error) {
	var template SalaryTemplate
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Members.Component").
		First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *repository) ReplaceMembers(ctx context.Context, templateID string, members []TemplateMember) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("template_id = ?", templateID).Delete(&TemplateMember{}).Error; err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}
	return db.Create(&members).Error
}

func (r *repository) DeleteTemplate(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("template_id = ?", id).Delete(&TemplateMember{}).Error; err != nil {
		return err
	}
	return db.Delete(&SalaryTemplate{}, "id = ?", id).Error
}

// Catalog adapts the repository to payroll.TemplateCatalog: it flattens a
// template into the ordered, frozen component list a run computes against.
type Catalog struct {
	repo Repository
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) GetTemplate(ctx context.Context, templateID uuid.UUID) (*payroll.TemplateSpec, error) {
	template, err := c.repo.FindTemplateByID(ctx, templateID.String())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Missing templates are a per-employee warning, not a failure.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	spec := &payroll.TemplateSpec{
		ID:         template.ID.String(),
		Name:       template.Name,
		Components: make([]payroll.ComponentSpec, 0, len(template.Members)),
	}
	for _, member := range template.Members {
		if member.Component == nil {
			continue
		}
		spec.Components = append(spec.Components, payroll.ComponentSpec{
			Code:       member.Component.Code,
			Name:       member.Component.Name,
			Nature:     member.Component.Nature,
			Formula:    member.Component.Formula,
			FixedValue: member.Component.FixedValue,
			IsTaxable:  member.Component.IsTaxable,
			System:     member.Component.IsSystemDefined,
		})
	}
	return spec, nil
}
