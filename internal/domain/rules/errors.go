package rules

import "errors"

var (
	ErrUnknownLeaveCategory = errors.New("unknown leave category")
	ErrUnknownRuleID        = errors.New("unknown rule id")
	ErrEmptyDirective       = errors.New("directive contains no operation")
)
