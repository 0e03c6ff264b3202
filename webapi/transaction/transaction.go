// Package transaction exposes the send and withdraw endpoints of the
// payment service.
package transaction

import (
	"errors"

	"github.com/amirasaad/payflow/pkg/config"
	"github.com/amirasaad/payflow/pkg/domain"
	"github.com/amirasaad/payflow/pkg/middleware"
	paymentsvc "github.com/amirasaad/payflow/pkg/service/payment"
	"github.com/amirasaad/payflow/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the transaction endpoints. Both require a valid bearer
// token.
//
// Routes:
//   - POST /transaction/send     : Send funds to a receiver account.
//   - POST /transaction/withdraw : Withdraw funds from an account.
func Routes(app *fiber.App, paymentSvc *paymentsvc.Service, cfg *config.App) {
	app.Post("/transaction/send", middleware.JwtProtected(cfg.Jwt), Send(paymentSvc))
	app.Post("/transaction/withdraw", middleware.JwtProtected(cfg.Jwt), Withdraw(paymentSvc))
}

// Send returns a handler that submits a send transaction and replies once it
// settles. The response is held open for the full processing latency.
func Send(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID, err := middleware.CallerID(c)
		if err != nil {
			log.Warn("unauthorized access attempt")
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[SendRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", nil,
				"accountId must be a valid UUID", fiber.StatusBadRequest)
		}
		log.Infof("send transaction requested: caller=%s account=%s amount=%v receiver=%s",
			callerID, accountID, input.Amount, input.ReceiverAccount)

		tx, err := paymentSvc.Send(c.Context(), paymentsvc.SendInput{
			AccountID:       accountID,
			Amount:          input.Amount,
			ReceiverAccount: input.ReceiverAccount,
		})
		if err != nil {
			return transactionError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction successful",
			fiber.Map{"transaction": tx})
	}
}

// Withdraw returns a handler that submits a withdraw transaction and replies
// once it settles.
func Withdraw(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID, err := middleware.CallerID(c)
		if err != nil {
			log.Warn("unauthorized access attempt")
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err
		}
		accountID, err := uuid.Parse(input.AccountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", nil,
				"accountId must be a valid UUID", fiber.StatusBadRequest)
		}
		log.Infof("withdraw transaction requested: caller=%s account=%s amount=%v",
			callerID, accountID, input.Amount)

		tx, err := paymentSvc.Withdraw(c.Context(), paymentsvc.WithdrawInput{
			AccountID: accountID,
			Amount:    input.Amount,
		})
		if err != nil {
			return transactionError(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction successful",
			fiber.Map{"transaction": tx})
	}
}

func transactionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return common.ProblemDetailsJSON(c, "Account not found", err)
	case errors.Is(err, domain.ErrInsufficientBalance):
		return common.ProblemDetailsJSON(c, "Insufficient balance", err)
	case errors.Is(err, domain.ErrTransactionAmountMustBePositive),
		errors.Is(err, domain.ErrInvalidAmount):
		return common.ProblemDetailsJSON(c, "Invalid amount", err)
	default:
		log.Errorf("transaction processing failed: %v", err)
		return common.ProblemDetailsJSON(c, "Transaction failed", nil,
			fiber.StatusInternalServerError)
	}
}
