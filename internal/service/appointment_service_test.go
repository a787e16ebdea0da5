package service

import (
	"context"
	"testing"

	"github.com/HansLagmay/realestate-coordination-service/internal/domain/entity"
	"github.com/HansLagmay/realestate-coordination-service/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleAppointment(t *testing.T, svc AppointmentService, propertyID, date, timeSlot string) *entity.Appointment {
	t.Helper()
	apt, err := svc.Create(context.Background(), CreateAppointmentParams{
		PropertyID:   propertyID,
		AgentID:      "user_agent1",
		CustomerName: "Juan Cruz",
		Date:         date,
		Time:         timeSlot,
	})
	require.NoError(t, err)
	return apt
}

func TestCreateRejectsDoubleBookedSlot(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(newTestStore(), logger.NoOp{})

	scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")

	_, err := svc.Create(ctx, CreateAppointmentParams{
		PropertyID:   "prop_x",
		CustomerName: "Maria Santos",
		Date:         "2024-03-15",
		Time:         "10:00",
	})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "Time conflict")

	// The rejected write must not have landed.
	assert.Len(t, svc.List(ctx), 1)
}

func TestAdjacentSlotAndOtherPropertyAreFree(t *testing.T) {
	svc := NewAppointmentService(newTestStore(), logger.NoOp{})

	scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")

	// Same property, same date, different slot.
	scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:30")
	// Different property, identical date and slot.
	scheduleAppointment(t, svc, "prop_y", "2024-03-15", "10:00")
}

func TestCancelledAppointmentReleasesSlot(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(newTestStore(), logger.NoOp{})

	apt := scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")

	cancelled := entity.AppointmentCancelled
	_, err := svc.Update(ctx, apt.ID, UpdateAppointmentParams{Status: &cancelled})
	require.NoError(t, err)

	scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")
}

func TestUpdateConflictLeavesRecordUnmodified(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(newTestStore(), logger.NoOp{})

	scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")
	other := scheduleAppointment(t, svc, "prop_x", "2024-03-15", "11:00")

	conflicting := "10:00"
	_, err := svc.Update(ctx, other.ID, UpdateAppointmentParams{Time: &conflicting})
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	unchanged, err := svc.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "11:00", unchanged.Time)
}

func TestUpdateDoesNotConflictWithItself(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(newTestStore(), logger.NoOp{})

	apt := scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")

	// Moving only the date re-checks the merged triple, excluding own id.
	newDate := "2024-03-16"
	updated, err := svc.Update(ctx, apt.ID, UpdateAppointmentParams{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", updated.Date)
	assert.Equal(t, "10:00", updated.Time)
}

func TestUpdatePropertyChangeChecksTargetSlot(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(newTestStore(), logger.NoOp{})

	scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")
	onOther := scheduleAppointment(t, svc, "prop_y", "2024-03-15", "10:00")

	target := "prop_x"
	_, err := svc.Update(ctx, onOther.ID, UpdateAppointmentParams{PropertyID: &target})
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestByAgentAndByProperty(t *testing.T) {
	ctx := context.Background()
	svc := NewAppointmentService(newTestStore(), logger.NoOp{})

	scheduleAppointment(t, svc, "prop_x", "2024-03-15", "10:00")
	scheduleAppointment(t, svc, "prop_y", "2024-03-16", "14:00")

	assert.Len(t, svc.ByAgent(ctx, "user_agent1"), 2)
	assert.Len(t, svc.ByProperty(ctx, "prop_x"), 1)
	assert.Empty(t, svc.ByProperty(ctx, "prop_z"))
}
