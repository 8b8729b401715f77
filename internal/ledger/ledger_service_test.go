package ledger_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/ledger"
	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
)

type fakeLedgerRepository struct {
	createDisbursementFn func(ctx context.Context, d payroll.Disbursement) error
	findAccountFn        func(ctx context.Context, id string) (*ledger.CashAccount, error)
	listAccountsFn       func(ctx context.Context) ([]ledger.CashAccount, error)
	createAccountFn      func(ctx context.Context, account *ledger.CashAccount) error
}

func (f *fakeLedgerRepository) WithTx(tx *sql.Tx) payroll.DisbursementLedger {
	return f
}

func (f *fakeLedgerRepository) CreateDisbursement(ctx context.Context, d payroll.Disbursement) error {
	if f.createDisbursementFn != nil {
		return f.createDisbursementFn(ctx, d)
	}
	return nil
}

func (f *fakeLedgerRepository) FindAccountByID(ctx context.Context, id string) (*ledger.CashAccount, error) {
	if f.findAccountFn != nil {
		return f.findAccountFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLedgerRepository) ListAccounts(ctx context.Context) ([]ledger.CashAccount, error) {
	if f.listAccountsFn != nil {
		return f.listAccountsFn(ctx)
	}
	return nil, nil
}

func (f *fakeLedgerRepository) CreateAccount(ctx context.Context, account *ledger.CashAccount) error {
	if f.createAccountFn != nil {
		return f.createAccountFn(ctx, account)
	}
	return nil
}

func TestLedgerService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	var created *ledger.CashAccount
	repo := &fakeLedgerRepository{
		createAccountFn: func(ctx context.Context, account *ledger.CashAccount) error {
			created = account
			return nil
		},
	}
	service := ledger.NewService(repo)

	resp, err := service.CreateAccount(ctx, ledger.CreateAccountRequest{
		Name:     "Payroll VND",
		BankName: "Vietcombank",
		Number:   "0071000123456",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	// New accounts start active so they are immediately usable for payout.
	assert.True(t, created.Active)
	assert.Equal(t, "Payroll VND", resp.Name)
	assert.Equal(t, created.ID.String(), resp.ID)
}

func TestLedgerService_GetAccountByID(t *testing.T) {
	ctx := context.Background()
	service := ledger.NewService(&fakeLedgerRepository{})

	_, err := service.GetAccountByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ledger.ErrInvalidAccountID)

	_, err = service.GetAccountByID(ctx, "10000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestLedgerService_GetAllAccounts(t *testing.T) {
	ctx := context.Background()

	repo := &fakeLedgerRepository{
		listAccountsFn: func(ctx context.Context) ([]ledger.CashAccount, error) {
			return []ledger.CashAccount{
				{Name: "Operations", Active: true},
				{Name: "Payroll VND", Active: true},
			}, nil
		},
	}
	service := ledger.NewService(repo)

	resp, err := service.GetAllAccounts(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Operations", resp[0].Name)
}
