package statemachine

import (
	"testing"

	"quickdeliver-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCourierSettable(t *testing.T) {
	assert.True(t, CourierSettable(models.StatusPending))
	assert.True(t, CourierSettable(models.StatusPreparing))
	assert.True(t, CourierSettable(models.StatusOnTheWay))
	assert.True(t, CourierSettable(models.StatusDelivered))
	assert.False(t, CourierSettable(models.StatusCancelled))
	assert.False(t, CourierSettable("lost"))
}

func TestCanCancel(t *testing.T) {
	assert.True(t, CanCancel(models.StatusPending))
	assert.False(t, CanCancel(models.StatusPreparing))
	assert.False(t, CanCancel(models.StatusOnTheWay))
	assert.False(t, CanCancel(models.StatusDelivered))
	assert.False(t, CanCancel(models.StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusDelivered))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusOnTheWay))
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusOnTheWay, models.StatusDelivered},
		NextStatuses(models.StatusPending))
	assert.Equal(t,
		[]models.OrderStatus{models.StatusDelivered},
		NextStatuses(models.StatusOnTheWay))
	assert.Nil(t, NextStatuses(models.StatusDelivered))
	assert.Nil(t, NextStatuses(models.StatusCancelled))
}

func TestValid(t *testing.T) {
	for _, s := range All() {
		assert.True(t, Valid(s), string(s))
	}
	assert.False(t, Valid("lost"))
}
