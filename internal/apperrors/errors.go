package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoPriorRecord indicates that a reconciliation was requested for a date
// with no strictly earlier closed record to reconcile against.
var ErrNoPriorRecord = errors.New("no prior record found")

// ErrReconciliationPending indicates that a save was requested for a date
// that still needs its prior-day reconciliation session resolved. The save
// is aborted; the operator must confirm or cancel the session first.
var ErrReconciliationPending = errors.New("prior-day reconciliation pending")
