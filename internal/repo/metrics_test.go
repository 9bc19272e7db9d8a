package repo

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "SELECT", operation("\n\t\tselect id from airlines"))
	assert.Equal(t, "BEGIN", operation("BEGIN"))
	assert.Equal(t, "UNKNOWN", operation("   "))
}

func TestRecordQuery_countsErrorsAndSlowStatements(t *testing.T) {
	const op = "TEST_RECORD"

	recordQuery(op, time.Millisecond, nil)
	recordQuery(op, 2*slowQuery, assert.AnError)

	assert.Equal(t, 2.0, testutil.ToFloat64(queryTotal.WithLabelValues(op)))
	assert.Equal(t, 1.0, testutil.ToFloat64(queryErrors.WithLabelValues(op)))
	assert.Equal(t, 1.0, testutil.ToFloat64(slowQueries.WithLabelValues(op)))
}
