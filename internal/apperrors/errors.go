package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that an action was attempted from a lifecycle
// status that does not permit it.
var ErrInvalidState = errors.New("action not permitted in current status")

// ErrUnbalanced indicates that an entry failed the debit/credit balance check
// at the posting gate.
var ErrUnbalanced = errors.New("entry debits and credits do not balance")

// ErrAlreadyReversed indicates that a reversal was attempted on an entry that
// already has a posted reversal.
var ErrAlreadyReversed = errors.New("entry has already been reversed")

// ErrVersionConflict indicates an optimistic concurrency failure: the caller's
// entry version is stale and must be refetched before retrying.
var ErrVersionConflict = errors.New("entry version conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
