// Package payment provides the business logic for submitting and settling
// send and withdraw transactions.
//
// A transaction is created in pending state, handed to the processor, and
// settled only after the processor reports an outcome. Settlement runs inside
// a unit of work: the conditional balance debit and the status flip to
// success commit together. A debit that no longer fits the balance, or a
// processor failure, marks the transaction failed and leaves the account
// untouched.
package payment

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/payflow/pkg/domain"
	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/processor"
	"github.com/amirasaad/payflow/pkg/repository"
	"github.com/google/uuid"
)

// SendInput is the validated input for a send transaction.
type SendInput struct {
	AccountID       uuid.UUID
	Amount          float64
	ReceiverAccount string
}

// WithdrawInput is the validated input for a withdraw transaction.
type WithdrawInput struct {
	AccountID uuid.UUID
	Amount    float64
}

// Service orchestrates transaction submission and settlement.
type Service struct {
	uow       repository.UnitOfWork
	processor processor.Processor
	logger    *slog.Logger
}

// New creates a payment Service.
func New(uow repository.UnitOfWork, proc processor.Processor, logger *slog.Logger) *Service {
	return &Service{uow: uow, processor: proc, logger: logger}
}

// Send submits a send transaction and blocks until it settles.
func (s *Service) Send(ctx context.Context, in SendInput) (*dto.TransactionRead, error) {
	return s.submit(ctx, domain.TransactionTypeSend, in.AccountID, in.Amount, in.ReceiverAccount)
}

// Withdraw submits a withdraw transaction and blocks until it settles.
func (s *Service) Withdraw(ctx context.Context, in WithdrawInput) (*dto.TransactionRead, error) {
	return s.submit(ctx, domain.TransactionTypeWithdraw, in.AccountID, in.Amount, "")
}

func (s *Service) submit(
	ctx context.Context,
	txType domain.TransactionType,
	accountID uuid.UUID,
	amount float64,
	receiverAccount string,
) (*dto.TransactionRead, error) {
	log := s.logger.With("type", txType, "accountID", accountID, "amount", amount)
	log.Info("transaction requested")

	cents, err := domain.ToCents(amount)
	if err != nil {
		log.Warn("invalid amount", "error", err)
		return nil, err
	}

	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acct, err := accounts.Get(ctx, accountID)
	if err != nil {
		log.Warn("account lookup failed", "error", err)
		return nil, err
	}
	// Advisory pre-check so an obviously uncovered request fails fast. The
	// authoritative check is the conditional debit at settlement.
	account := &domain.Account{ID: acct.ID, Balance: acct.Balance, Currency: acct.Currency}
	if !account.CanDebit(cents) {
		log.Warn("insufficient balance", "balance", acct.Balance, "requested", cents)
		return nil, domain.ErrInsufficientBalance
	}

	tx, err := domain.NewTransaction(txType, accountID, cents, receiverAccount)
	if err != nil {
		return nil, err
	}
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	if err = transactions.Create(ctx, dto.TransactionCreate{
		ID:              tx.ID,
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		ReceiverAccount: tx.ReceiverAccount,
		AccountID:       tx.AccountID,
		Status:          string(tx.Status),
	}); err != nil {
		log.Error("failed to create transaction", "error", err)
		return nil, err
	}
	log = log.With("transactionID", tx.ID)
	log.Debug("transaction created", "status", tx.Status)

	read := &dto.TransactionRead{
		ID:              tx.ID,
		Type:            string(tx.Type),
		Amount:          domain.FromCents(tx.Amount),
		ReceiverAccount: tx.ReceiverAccount,
		AccountID:       tx.AccountID,
		Status:          string(tx.Status),
		CreatedAt:       tx.CreatedAt,
	}

	result, err := s.processor.Process(ctx, read)
	if err != nil {
		// No outcome was reached; the transaction stays pending.
		log.Error("processing did not complete", "error", err)
		return nil, err
	}
	if result.Status == processor.Failed {
		log.Warn("processor rejected transaction", "reason", result.Reason)
		if err = s.finalize(ctx, tx.ID, domain.TransactionStatusFailed, result.CompletedAt); err != nil {
			log.Error("failed to mark transaction failed", "error", err)
			return nil, err
		}
		return nil, &processorError{reason: result.Reason}
	}

	if err = s.settle(ctx, tx.ID, accountID, cents, result.CompletedAt); err != nil {
		if errors.Is(err, domain.ErrInsufficientBalance) {
			// The balance moved between the pre-check and settlement.
			log.Warn("settlement debit rejected")
			if ferr := s.finalize(ctx, tx.ID, domain.TransactionStatusFailed, result.CompletedAt); ferr != nil {
				log.Error("failed to mark transaction failed", "error", ferr)
				return nil, ferr
			}
		}
		return nil, err
	}

	read.Status = string(domain.TransactionStatusSuccess)
	read.CompletedAt = &result.CompletedAt
	log.Info("transaction settled", "completedAt", result.CompletedAt)
	return read, nil
}

// settle applies the balance effect and the success status in one database
// transaction. The conditional debit is what makes concurrent submissions
// against the same account safe: the losing request gets
// ErrInsufficientBalance instead of overdrafting.
func (s *Service) settle(
	ctx context.Context,
	txID, accountID uuid.UUID,
	amount int64,
	completedAt time.Time,
) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if err = accounts.DebitIf(ctx, accountID, amount); err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}
		status := string(domain.TransactionStatusSuccess)
		return transactions.Update(ctx, txID, dto.TransactionUpdate{
			Status:      &status,
			CompletedAt: &completedAt,
		})
	})
}

func (s *Service) finalize(
	ctx context.Context,
	txID uuid.UUID,
	status domain.TransactionStatus,
	completedAt time.Time,
) error {
	transactions, err := s.uow.TransactionRepository()
	if err != nil {
		return err
	}
	st := string(status)
	return transactions.Update(ctx, txID, dto.TransactionUpdate{
		Status:      &st,
		CompletedAt: &completedAt,
	})
}

type processorError struct {
	reason string
}

func (e *processorError) Error() string {
	if e.reason == "" {
		return "transaction processing failed"
	}
	return "transaction processing failed: " + e.reason
}

func (e *processorError) Unwrap() error {
	return domain.ErrProvider
}
