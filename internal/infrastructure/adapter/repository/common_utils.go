package repository

import (
	"strings"
)

// ErrorType labels a database failure by what the caller can do about it
type ErrorType string

const (
	DuplicateKeyError  ErrorType = "duplicate_key"
	SerializationError ErrorType = "serialization"
	ConstraintError    ErrorType = "constraint"
	ConnectionError    ErrorType = "connection"
)

// ErrorClassifier classifies errors surfaced by the postgres driver. The
// driver reports these only through the error text, so classification is
// substring matching on the message and its SQLSTATE code.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsSerializationError(err):
		return SerializationError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsConnectionError(err):
		return ConnectionError
	}
	return ""
}

// IsDuplicateKeyError reports a unique violation (SQLSTATE 23505)
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return matchesAny(err, "duplicate key value", "sqlstate 23505")
}

// IsSerializationError reports a lost SERIALIZABLE conflict (SQLSTATE 40001)
// or a deadlock (SQLSTATE 40P01); both are safe to retry
func (c *ErrorClassifier) IsSerializationError(err error) bool {
	return matchesAny(err,
		"could not serialize access",
		"deadlock detected",
		"sqlstate 40001",
		"sqlstate 40p01")
}

// IsConstraintError reports any other integrity violation (SQLSTATE 23xxx)
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	return c.IsDuplicateKeyError(err) ||
		matchesAny(err,
			"violates foreign key constraint",
			"violates not-null constraint",
			"violates check constraint")
}

// IsConnectionError reports connectivity failures
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	return matchesAny(err,
		"connection refused",
		"connection reset",
		"broken pipe",
		"server closed",
		"dial",
		"eof")
}

func matchesAny(err error, patterns ...string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range patterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
