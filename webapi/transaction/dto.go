package transaction

// SendRequest is the request body for a send transaction.
type SendRequest struct {
	AccountID       string  `json:"accountId" validate:"required,uuid4"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	ReceiverAccount string  `json:"receiver_account" validate:"required,max=64"`
}

// WithdrawRequest is the request body for a withdraw transaction.
type WithdrawRequest struct {
	AccountID string  `json:"accountId" validate:"required,uuid4"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}
