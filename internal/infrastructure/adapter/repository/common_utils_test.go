package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{
			name:     "Nil error has no class",
			err:      nil,
			expected: "",
		},
		{
			name:     "Unique violation message",
			err:      errors.New(`duplicate key value violates unique constraint "idx_lease_locks_transaction_id"`),
			expected: DuplicateKeyError,
		},
		{
			name:     "Unique violation by SQLSTATE code",
			err:      errors.New("ERROR: some wrapped failure (SQLSTATE 23505)"),
			expected: DuplicateKeyError,
		},
		{
			name:     "Serialization conflict",
			err:      errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"),
			expected: SerializationError,
		},
		{
			name:     "Deadlock",
			err:      errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"),
			expected: SerializationError,
		},
		{
			name:     "Foreign key violation",
			err:      errors.New(`ERROR: insert or update on table "schedule_entries" violates foreign key constraint`),
			expected: ConstraintError,
		},
		{
			name:     "Connection failure",
			err:      errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			expected: ConnectionError,
		},
		{
			name:     "Unrecognized error has no class",
			err:      errors.New("something else entirely"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_IsDuplicateKeyError(t *testing.T) {
	classifier := NewErrorClassifier()

	assert.True(t, classifier.IsDuplicateKeyError(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, classifier.IsDuplicateKeyError(errors.New("violates check constraint")))
	assert.False(t, classifier.IsDuplicateKeyError(nil))
}
