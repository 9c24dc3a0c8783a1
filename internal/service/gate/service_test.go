package gate

import (
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueConsole/internal/domain"
	"github.com/m04kA/SMC-VenueConsole/pkg/logger"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeMetrics struct {
	transitions []string
}

func (m *fakeMetrics) ObserveGateTransition(from, to string) {
	m.transitions = append(m.transitions, from+"->"+to)
}

func newService(t *testing.T) (*Service, *fakeClock, *fakeMetrics) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)}
	m := &fakeMetrics{}
	svc := NewService(Config{SessionTTL: 15 * time.Minute, PINAttemptsPerMin: 5, PINBurst: 2}, m, logger.Nop())
	svc.timeProvider = clock
	return svc, clock, m
}

var venue = domain.Venue{ID: "v1", PINCode: "4321"}

func TestService_NormalGoesStraightToExecuting(t *testing.T) {
	svc, _, m := newService(t)

	opened := svc.Open("v1", "t1", domain.ImportanceNormal, domain.CategoryCommunications)
	assert.Equal(t, domain.GateIdle, opened.State)

	sess, err := svc.Execute("v1", opened.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GateExecuting, sess.State)

	sess, err = svc.Complete("v1", opened.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.GateDone, sess.State)

	_, err = svc.Get("v1", opened.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, []string{"idle->executing", "executing->done"}, m.transitions)
}

func TestService_SecondConfirm(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceHigh, domain.CategoryReservations)

	sess, err := svc.Execute("v1", opened.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GatePromptSecondConfirm, sess.State)

	sess, err = svc.Confirm("v1", opened.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.GateIdle, sess.State)

	_, err = svc.Execute("v1", opened.ID)
	require.NoError(t, err)
	sess, err = svc.Confirm("v1", opened.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.GateExecuting, sess.State)
}

func TestService_PIN(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceCritical, domain.CategoryEmergencies)

	sess, err := svc.Execute("v1", opened.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GatePromptPIN, sess.State)

	sess, err = svc.SubmitPIN(venue, opened.ID, "0000")
	assert.ErrorIs(t, err, ErrPINMismatch)
	assert.True(t, sess.PINError)
	assert.Equal(t, domain.GatePromptPIN, sess.State)

	sess, err = svc.SubmitPIN(venue, opened.ID, "4321")
	require.NoError(t, err)
	assert.Equal(t, domain.GateExecuting, sess.State)
	assert.False(t, sess.PINError)
}

func TestService_PINAttemptsAreRateLimited(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceCritical, domain.CategoryEmergencies)
	_, err := svc.Execute("v1", opened.ID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.SubmitPIN(venue, opened.ID, "0000")
		assert.ErrorIs(t, err, ErrPINMismatch)
	}
	_, err = svc.SubmitPIN(venue, opened.ID, "4321")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestService_AllowPINSharesVenueLimit(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceCritical, domain.CategoryEmergencies)
	_, err := svc.Execute("v1", opened.ID)
	require.NoError(t, err)

	assert.True(t, svc.AllowPIN("v1"))
	assert.True(t, svc.AllowPIN("v1"))
	assert.True(t, svc.AllowPIN("v2"))

	_, err = svc.SubmitPIN(venue, opened.ID, "4321")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
}

func TestService_FailureAllowsRetry(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceNormal, domain.CategoryHours)
	_, err := svc.Execute("v1", opened.ID)
	require.NoError(t, err)

	sess, err := svc.Complete("v1", opened.ID, errors.New("remote down"))
	require.NoError(t, err)
	assert.Equal(t, domain.GateFailed, sess.State)
	assert.Equal(t, "remote down", sess.LastError)

	sess, err = svc.Execute("v1", opened.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GateExecuting, sess.State)
}

func TestService_CancelRejectedWhileExecuting(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceNormal, domain.CategoryHours)
	_, err := svc.Execute("v1", opened.ID)
	require.NoError(t, err)

	_, err = svc.Cancel("v1", opened.ID)
	assert.ErrorIs(t, err, ErrBusy)

	_, err = svc.Execute("v1", opened.ID)
	assert.ErrorIs(t, err, ErrBusy)
}

func TestService_CancelRemovesSession(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceNormal, domain.CategoryHours)

	sess, err := svc.Cancel("v1", opened.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GateCancelled, sess.State)

	_, err = svc.Get("v1", opened.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_InvalidTransition(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceNormal, domain.CategoryHours)

	_, err := svc.Confirm("v1", opened.ID, true)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_SessionIsScopedToVenue(t *testing.T) {
	svc, _, _ := newService(t)
	opened := svc.Open("v1", "t1", domain.ImportanceNormal, domain.CategoryHours)

	_, err := svc.Execute("v2", opened.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_PurgeExpired(t *testing.T) {
	svc, clock, _ := newService(t)
	idle := svc.Open("v1", "t1", domain.ImportanceNormal, domain.CategoryHours)
	busy := svc.Open("v1", "t2", domain.ImportanceNormal, domain.CategoryHours)
	_, err := svc.Execute("v1", busy.ID)
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour)
	assert.Equal(t, 1, svc.PurgeExpired())

	_, err = svc.Get("v1", idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Get("v1", busy.ID)
	assert.NoError(t, err)
}

func TestService_Schedule(t *testing.T) {
	svc, _, _ := newService(t)
	scheduler, err := gocron.NewScheduler()
	require.NoError(t, err)
	defer func() { _ = scheduler.Shutdown() }()

	job, err := svc.Schedule(scheduler, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, purgeJobName, job.Name())
	assert.Len(t, scheduler.Jobs(), 1)
}
