// Package metrics instruments vault operations with Prometheus counters.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/systmms/credstore/pkg/vault"
)

var (
	vaultOperationsTotal *prometheus.CounterVec

	metricsOnce sync.Once
)

// initMetrics registers the collectors on first use.
func initMetrics() {
	metricsOnce.Do(func() {
		vaultOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credstore_vault_operations_total",
				Help: "Total number of vault operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		)
	})
}

// instrumentedVault counts every operation by outcome. Payloads and
// identities never reach the metrics surface.
type instrumentedVault struct {
	inner vault.Vault
}

// Instrument wraps a vault with operation counters.
func Instrument(v vault.Vault) vault.Vault {
	initMetrics()
	return &instrumentedVault{inner: v}
}

func record(operation string, st vault.Status) {
	vaultOperationsTotal.WithLabelValues(operation, st.Outcome().String()).Inc()
}

func (m *instrumentedVault) Add(q vault.Query) vault.Status {
	st := m.inner.Add(q)
	record("add", st)
	return st
}

func (m *instrumentedVault) Fetch(q vault.Query) ([]vault.Item, vault.Status) {
	items, st := m.inner.Fetch(q)
	record("fetch", st)
	return items, st
}

func (m *instrumentedVault) Update(filter vault.Query, attrs vault.Query) vault.Status {
	st := m.inner.Update(filter, attrs)
	record("update", st)
	return st
}

func (m *instrumentedVault) Delete(q vault.Query) vault.Status {
	st := m.inner.Delete(q)
	record("delete", st)
	return st
}
