package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
)

func TestCheckPresence_AllPresent(t *testing.T) {
	err := domain.CheckPresence(domain.InvalidRequest, domain.Of("a"), domain.Of(0), domain.Of(false))

	assert.NoError(t, err)
}

func TestCheckPresence_NoValues(t *testing.T) {
	assert.NoError(t, domain.CheckPresence(domain.NotFound))
}

func TestCheckPresence_InvalidRequest(t *testing.T) {
	err := domain.CheckPresence(domain.InvalidRequest, domain.Of("Test Air"), domain.Nullable[string]{})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckPresence_NotFound(t *testing.T) {
	var row domain.Nullable[domain.Airline]

	err := domain.CheckPresence(domain.NotFound, row)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestCheckPresence_NilPresence verifies that a nil interface value counts as absent.
func TestCheckPresence_NilPresence(t *testing.T) {
	err := domain.CheckPresence(domain.InvalidRequest, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

// TestCheckPresence_UnknownMode verifies that an unrecognised mode yields an
// error outside the taxonomy, which the handler reports as an internal error.
func TestCheckPresence_UnknownMode(t *testing.T) {
	err := domain.CheckPresence(domain.Mode(42), domain.Nullable[string]{})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidRequest)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineInput_RequiredAndArgs(t *testing.T) {
	in := domain.AirlineInput{Name: domain.Of("Test Air"), ColorCode: domain.Of("#fff")}

	assert.NoError(t, domain.CheckPresence(domain.InvalidRequest, in.Required()...))
	assert.Equal(t, []any{"Test Air", "#fff"}, in.Args())
}
