package worker_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/worker"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeCounter struct {
	calls atomic.Int32
	err   error
}

func (f *fakeCounter) Platform(context.Context) (stats.Platform, error) {
	f.calls.Add(1)
	if f.err != nil {
		return stats.Platform{}, f.err
	}
	return stats.Platform{TotalUsers: 4, TotalPets: 3}, nil
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestSnapshot_RunOnce(t *testing.T) {
	core, logs := observer.New(logger.Info)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	m := metrics.New()

	require.NoError(t, worker.NewSnapshot(&fakeCounter{}, m, time.Minute).RunOnce(ctx))

	body := scrape(t, m)
	require.Contains(t, body, "petadoption_users 4")
	require.Contains(t, body, "petadoption_pets 3")
	require.Contains(t, body, `petadoption_snapshots_total{result="success"} 1`)

	entries := logs.FilterMessage("data snapshot taken").All()
	require.Len(t, entries, 1)
	require.EqualValues(t, 4, entries[0].ContextMap()["users"])
	require.EqualValues(t, 3, entries[0].ContextMap()["pets"])
}

func TestSnapshot_RunOnce_Failure(t *testing.T) {
	m := metrics.New()

	err := worker.NewSnapshot(&fakeCounter{err: errors.New("db down")}, m, time.Minute).RunOnce(context.Background())
	require.Error(t, err)
	require.Contains(t, scrape(t, m), `petadoption_snapshots_total{result="failure"} 1`)
}

func TestSnapshot_RunStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	counter := &fakeCounter{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.NewSnapshot(counter, nil, 5*time.Millisecond).Run(ctx)
	}()

	require.Eventually(t, func() bool { return counter.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("snapshot job did not stop")
	}
}

func TestNewSnapshot_DefaultInterval(t *testing.T) {
	counter := &fakeCounter{}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Con intervalo inválido se usa el de 30s: en 20ms no corre nada.
	worker.NewSnapshot(counter, nil, 0).Run(ctx)
	require.Zero(t, counter.calls.Load())
}
