package salary

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	salaryerrors "github.com/OutLand606/FinancePro-sub001/internal/salary/errors"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	CreateComponent(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	GetAllComponents(ctx context.Context) ([]ComponentResponse, error)
	UpdateComponent(ctx context.Context, id string, req UpdateComponentRequest) (ComponentResponse, error)
	DeleteComponent(ctx context.Context, id string) error

	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	GetAllTemplates(ctx context.Context) ([]TemplateResponse, error)
	GetTemplateByID(ctx context.Context, id string) (TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) CreateComponent(
	ctx context.Context,
	req CreateComponentRequest,
) (ComponentResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	component := &SalaryComponent{
		ID:         uuid.New(),
		Code:       req.Code,
		Name:       req.Name,
		Nature:     req.Nature,
		Formula:    req.Formula,
		FixedValue: req.FixedValue,
		IsTaxable:  req.IsTaxable,
	}

	if err := qtx.CreateComponent(ctx, component); err != nil {
		return ComponentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ComponentResponse{}, err
	}

	return mapComponentToResponse(*component), nil
}

func (s *service) GetAllComponents(ctx context.Context) ([]ComponentResponse, error) {
	components, err := s.repo.FindAllComponents(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ComponentResponse, len(components))
	for i, component := range components {
		resp[i] = mapComponentToResponse(component)
	}
	return resp, nil
}

func (s *service) UpdateComponent(
	ctx context.Context,
	id string,
	req UpdateComponentRequest,
) (ComponentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ComponentResponse{}, salaryerrors.ErrInvalidComponentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ComponentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	component, err := qtx.FindComponentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ComponentResponse{}, salaryerrors.ErrComponentNotFound
		}
		return ComponentResponse{}, err
	}
	if component.IsSystemDefined {
		return ComponentResponse{}, salaryerrors.ErrSystemComponentReadOnly
	}

	component.Name = req.Name
	component.Nature = req.Nature
	component.Formula = req.Formula
	component.FixedValue = req.FixedValue
	component.IsTaxable = req.IsTaxable

	if err := qtx.UpdateComponent(ctx, component); err != nil {
		return ComponentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ComponentResponse{}, err
	}

	return mapComponentToResponse(*component), nil
}

func (s *service) DeleteComponent(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return salaryerrors.ErrInvalidComponentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	component, err := qtx.FindComponentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return salaryerrors.ErrComponentNotFound
		}
		return err
	}
	if component.IsSystemDefined {
		return salaryerrors.ErrSystemComponentReadOnly
	}

	if err := qtx.DeleteComponent(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) CreateTemplate(
	ctx context.Context,
	req CreateTemplateRequest,
) (TemplateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TemplateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	components, err := qtx.FindComponentsByIDs(ctx, req.ComponentIDs)
	if err != nil {
		return TemplateResponse{}, err
	}
	byID := make(map[string]SalaryComponent, len(components))
	for _, component := range components {
		byID[component.ID.String()] = component
	}

	// Codes act as variable names inside one template, so duplicates would
	// make later formulas ambiguous.
	seen := make(map[string]bool, len(req.ComponentIDs))
	members := make([]TemplateMember, 0, len(req.ComponentIDs))
	ordered := make([]SalaryComponent, 0, len(req.ComponentIDs))

	templateID := uuid.New()
	for i, id := range req.ComponentIDs {
		component, ok := byID[id]
		if !ok {
			return TemplateResponse{}, salaryerrors.ErrComponentNotFound
		}
		if seen[component.Code] {
			return TemplateResponse{}, salaryerrors.ErrDuplicateCodeInTemplate
		}
		seen[component.Code] = true

		members = append(members, TemplateMember{
			ID:          uuid.New(),
			TemplateID:  templateID,
			ComponentID: component.ID,
			Position:    i,
		})
		ordered = append(ordered, component)
	}

	template := &SalaryTemplate{
		ID:   templateID,
		Name: req.Name,
	}
	if err := qtx.CreateTemplate(ctx, template); err != nil {
		return TemplateResponse{}, err
	}
	if err := qtx.ReplaceMembers(ctx, templateID.String(), members); err != nil {
		return TemplateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TemplateResponse{}, err
	}

	resp := TemplateResponse{
		ID:         templateID.String(),
		Name:       req.Name,
		Components: make([]ComponentResponse, len(ordered)),
	}
	for i, component := range ordered {
		resp.Components[i] = mapComponentToResponse(component)
	}
	return resp, nil
}

func (s *service) GetAllTemplates(ctx context.Context) ([]TemplateResponse, error) {
	templates, err := s.repo.FindAllTemplates(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		resp[i] = mapTemplateToResponse(template)
	}
	return resp, nil
}

func (s *service) GetTemplateByID(ctx context.Context, id string) (TemplateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TemplateResponse{}, salaryerrors.ErrInvalidTemplateID
	}

	template, err := s.repo.FindTemplateByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TemplateResponse{}, salaryerrors.ErrTemplateNotFound
		}
		return TemplateResponse{}, err
	}

	return mapTemplateToResponse(*template), nil
}

func (s *service) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return salaryerrors.ErrInvalidTemplateID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteTemplate(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapComponentToResponse(component SalaryComponent) ComponentResponse {
	return ComponentResponse{
		ID:              component.ID.String(),
		Code:            component.Code,
		Name:            component.Name,
		Nature:          component.Nature,
		Formula:         component.Formula,
		FixedValue:      component.FixedValue,
		IsTaxable:       component.IsTaxable,
		IsSystemDefined: component.IsSystemDefined,
	}
}

func mapTemplateToResponse(template SalaryTemplate) TemplateResponse {
	resp := TemplateResponse{
		ID:         template.ID.String(),
		Name:       template.Name,
		Components: make([]ComponentResponse, 0, len(template.Members)),
	}
	for _, member := range template.Members {
		if member.Component == nil {
			continue
		}
		resp.Components = append(resp.Components, mapComponentToResponse(*member.Component))
	}
	return resp
}
