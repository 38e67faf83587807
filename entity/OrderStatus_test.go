package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusAccepted, StatusRejected, StatusDispatched, StatusDelivered} {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusAccepted, StatusDispatched, true},
		{StatusDispatched, StatusDelivered, true},

		{StatusPending, StatusDispatched, false},
		{StatusPending, StatusDelivered, false},
		{StatusAccepted, StatusRejected, false},
		{StatusAccepted, StatusDelivered, false},
		{StatusRejected, StatusAccepted, false},
		{StatusRejected, StatusDispatched, false},
		{StatusDelivered, StatusRejected, false},
		{StatusDelivered, StatusPending, false},
		{StatusAccepted, StatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusPrev(t *testing.T) {
	for next, want := range map[OrderStatus]OrderStatus{
		StatusAccepted:   StatusPending,
		StatusRejected:   StatusPending,
		StatusDispatched: StatusAccepted,
		StatusDelivered:  StatusDispatched,
	} {
		got, ok := next.Prev()
		assert.True(t, ok, "%s should have a source status", next)
		assert.Equal(t, want, got)
	}

	_, ok := StatusPending.Prev()
	assert.False(t, ok, "pending is never a transition target")
}
