package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"ptiadmin_backend/internals/features/inspections/dashboard/service"
)

type fakeRefresher struct {
	ran chan struct{}
	err error
}

func (f *fakeRefresher) Refresh(context.Context) (service.Stats, error) {
	select {
	case f.ran <- struct{}{}:
	default:
	}
	return service.Stats{Total: 1}, f.err
}

func TestRefresherRunsAndStopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := &fakeRefresher{ran: make(chan struct{}, 1), err: errors.New("db down")}
	c, err := StartStatsRefresher("@every 1s", f, zap.NewNop())
	require.NoError(t, err)

	select {
	case <-f.ran:
	case <-time.After(3 * time.Second):
		t.Fatal("refresher never ran")
	}

	<-c.Stop().Done()
}

func TestRefresherRejectsBadSpec(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := StartStatsRefresher("every tuesday", &fakeRefresher{ran: make(chan struct{}, 1)}, nil)
	assert.ErrorContains(t, err, "every tuesday")
}
