// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/mock"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	NewWorkers(w1, w2, w3).Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on empty workers list
	NewWorkers().Run()
}

func TestSessionWatcher_FiresOnceOnExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)

	gomock.InOrder(
		auth.EXPECT().IsAuthenticated().Return(true),
	)
	auth.EXPECT().Revalidate(gomock.Any()).Return(false).AnyTimes()
	auth.EXPECT().IsAuthenticated().Return(false).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	expired := make(chan struct{}, 1)
	onExpired := func() {
		fired.Add(1)
		select {
		case expired <- struct{}{}:
		default:
		}
	}

	NewSessionWatcher(ctx, auth, 10*time.Millisecond, onExpired, logger.Nop()).Run()

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("expected expiry signal")
	}

	// los ticks siguientes no vuelven a disparar el aviso
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestSessionWatcher_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().IsAuthenticated().Return(false).AnyTimes()
	auth.EXPECT().Revalidate(gomock.Any()).Return(false).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	NewSessionWatcher(ctx, auth, 5*time.Millisecond, nil, logger.Nop()).Run()

	time.Sleep(20 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}
