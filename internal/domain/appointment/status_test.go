package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.True(t, StatusCancelled.Valid())

	assert.False(t, Status("").Valid())
	assert.False(t, Status("pendente").Valid())
	assert.False(t, Status("Finalizado").Valid())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		code string
	}{
		{"pending to completed", StatusPending, StatusCompleted, ""},
		{"pending to cancelled", StatusPending, StatusCancelled, ""},
		{"pending to pending", StatusPending, StatusPending, "invalid_status_transition"},
		{"completed is terminal", StatusCompleted, StatusCancelled, "invalid_status_transition"},
		{"cancelled is terminal", StatusCancelled, StatusCompleted, "invalid_status_transition"},
		{"unknown target", StatusPending, Status("Finalizado"), "invalid_status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.code))
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
