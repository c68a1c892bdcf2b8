package entity

import "errors"

var (
	ErrSelfTrade           = errors.New("buyer and seller are the same account")
	ErrInvalidTransition   = errors.New("invalid trade status transition")
	ErrTradeNotCompleted   = errors.New("trade is not completed")
	ErrDuplicateEvaluation = errors.New("this side has already evaluated the trade")
	ErrListingUnavailable  = errors.New("listing is deleted or already completed")
	ErrInvalidEntityData   = errors.New("invalid entity data")
)
