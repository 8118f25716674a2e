package service

import (
	"sync/atomic"

	"github.com/gumutoni/tasktidy/internal/pkg/timeutil"
)

type ProbeResult struct {
	Healthy   bool
	CheckedAt int64
	Message   string
}

// StoreHealth publishes the latest store probe result to the health
// endpoint. The process starts healthy: startup already pinged the store.
type StoreHealth struct {
	latest atomic.Pointer[ProbeResult]
}

func NewStoreHealth() *StoreHealth {
	h := &StoreHealth{}
	h.latest.Store(&ProbeResult{Healthy: true, CheckedAt: timeutil.NowUnix()})
	return h
}

func (h *StoreHealth) Record(err error) {
	result := &ProbeResult{Healthy: err == nil, CheckedAt: timeutil.NowUnix()}
	if err != nil {
		result.Message = err.Error()
	}
	h.latest.Store(result)
}

func (h *StoreHealth) Latest() ProbeResult {
	return *h.latest.Load()
}

func (h *StoreHealth) Healthy() bool {
	return h.latest.Load().Healthy
}
