package payroll

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	payrollerrors "github.com/OutLand606/FinancePro-sub001/internal/payroll/errors"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *PayrollRun) error
	FindByPeriod(ctx context.Context, period string) (*PayrollRun, error)
	Update(ctx context.Context, run *PayrollRun) error
	ReplaceSlips(ctx context.Context, runID string, slips []Payslip) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the caller's transaction connection,
// the same way gorm's own Begin does. Every statement issued through the
// returned repository commits or rolls back with that transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	txdb := r.db.Session(&gorm.Session{
		Context:                context.Background(),
		NewDB:                  true,
		SkipDefaultTransaction: true,
	})
	txdb.Statement.ConnPool = tx
	return &repository{db: txdb}
}

func (r *repository) Create(ctx context.Context, run *PayrollRun) error {
	err := r.db.WithContext(ctx).Create(run).Error
	return mapUniqueViolation(err)
}

func (r *repository) FindByPeriod(ctx context.Context, period string) (*PayrollRun, error) {
	var run PayrollRun
	err := r.db.WithContext(ctx).
		Preload("Slips", func(db *gorm.DB) *gorm.DB {
			return db.Order("employee_id ASC")
		}).
		Preload("Slips.Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&run, "period = ?", period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payrollerrors.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) Update(ctx context.Context, run *PayrollRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// ReplaceSlips swaps the run's slip set wholesale. Aggregates on the run row
// are the caller's responsibility and must be updated in the same
// transaction.
func (r *repository) ReplaceSlips(ctx context.Context, runID string, slips []Payslip) error {
	db := r.db.WithContext(ctx)

	if err := db.
		Where("payslip_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&Payslip{}).
				Select("id").
				Where("run_id = ?", runID),
		).
		Delete(&PayslipDetail{}).Error; err != nil {
		return err
	}

	if err := db.Where("run_id = ?", runID).Delete(&Payslip{}).Error; err != nil {
		return err
	}

	if len(slips) == 0 {
		return nil
	}
	return db.Create(&slips).Error
}

// mapUniqueViolation turns the Postgres 23505 on the period index into the
// domain conflict error, so a concurrent first compute of the same month is
// reported precisely.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return payrollerrors.ErrRunConflict
	}
	return err
}
