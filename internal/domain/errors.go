package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilter = errors.New("invalid filter value")
	ErrNotFound      = errors.New("not found")
)

// InvalidDateError identifica qual limite da janela é inválido
type InvalidDateError struct {
	Bound  string
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid %s date %q: %s", e.Bound, e.Value, e.Reason)
}

// QueryFailure representa uma chamada rejeitada ou com falha no Stripe
type QueryFailure struct {
	Resource   string
	Reason     string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *QueryFailure) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("query %s failed (status %d, retryable=%t): %s", e.Resource, e.StatusCode, e.Retryable, e.Reason)
	}
	return fmt.Sprintf("query %s failed (retryable=%t): %s", e.Resource, e.Retryable, e.Reason)
}

func (e *QueryFailure) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PartialAggregationWarning registra um valor descartado sem interromper a agregação
type PartialAggregationWarning struct {
	Table  string `json:"table"`
	Column string `json:"column,omitempty"`
	Row    int    `json:"row"`
	Value  any    `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func (w PartialAggregationWarning) Error() string {
	if w.Column == "" {
		return fmt.Sprintf("%s row %d skipped: %s", w.Table, w.Row, w.Reason)
	}
	return fmt.Sprintf("%s.%s row %d skipped (%v): %s", w.Table, w.Column, w.Row, w.Value, w.Reason)
}

func IsRetryable(err error) bool {
	var qf *QueryFailure
	return errors.As(err, &qf) && qf.Retryable
}
