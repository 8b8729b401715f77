package ledger

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
)

// Repository also serves as the payroll.DisbursementLedger implementation.
// Disbursement inserts go through the caller's transaction when one is
// attached, so the cash record and the run status change commit together.
type Repository interface {
	payroll.DisbursementLedger
	FindAccountByID(ctx context.Context, id string) (*CashAccount, error)
	ListAccounts(ctx context.Context) ([]CashAccount, error)
	CreateAccount(ctx context.Context, account *CashAccount) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the ledger onto the caller's transaction connection, so
// the disbursement record commits or rolls back with the run status change.
func (r *repository) WithTx(tx *sql.Tx) payroll.DisbursementLedger {
	txdb := r.db.Session(&gorm.Session{
		Context:                context.Background(),
		NewDB:                  true,
		SkipDefaultTransaction: true,
	})
	txdb.Statement.ConnPool = tx
	return &repository{db: txdb}
}

func (r *repository) CreateDisbursement(ctx context.Context, d payroll.Disbursement) error {
	return r.db.WithContext(ctx).Create(&d).Error
}

func (r *repository) FindAccountByID(ctx context.Context, id string) (*CashAccount, error) {
	var account CashAccount
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repository) ListAccounts(ctx context.Context) ([]CashAccount, error) {
	var accounts []CashAccount
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *repository) CreateAccount(ctx context.Context, account *CashAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}
