package payperiod

import "errors"

var (
	ErrPayPeriodNotConfigured = errors.New("pay period not configured")
	ErrInvalidEmployeeID      = errors.New("pay period employee id must be numeric")
)
