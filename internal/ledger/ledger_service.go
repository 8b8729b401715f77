package ledger

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/shared/apperror"
)

var (
	ErrInvalidAccountID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid account id",
		http.StatusBadRequest,
	)
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"cash account not found",
		http.StatusNotFound,
	)
)

type Service interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	GetAllAccounts(ctx context.Context) ([]AccountResponse, error)
	GetAccountByID(ctx context.Context, id string) (AccountResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	account := &CashAccount{
		ID:       uuid.New(),
		Name:     req.Name,
		BankName: req.BankName,
		Number:   req.Number,
		Active:   true,
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return AccountResponse{}, err
	}
	return mapAccountToResponse(account), nil
}

func (s *service) GetAllAccounts(ctx context.Context) ([]AccountResponse, error) {
	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, mapAccountToResponse(&accounts[i]))
	}
	return responses, nil
}

func (s *service) GetAccountByID(ctx context.Context, id string) (AccountResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AccountResponse{}, ErrInvalidAccountID
	}

	account, err := s.repo.FindAccountByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AccountResponse{}, ErrAccountNotFound
	}
	if err != nil {
		return AccountResponse{}, err
	}
	return mapAccountToResponse(account), nil
}

func mapAccountToResponse(account *CashAccount) AccountResponse {
	return AccountResponse{
		ID:       account.ID.String(),
		Name:     account.Name,
		BankName: account.BankName,
		Number:   account.Number,
		Active:   account.Active,
	}
}
