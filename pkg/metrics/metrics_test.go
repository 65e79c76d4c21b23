package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/pkg/metrics"
)

func TestRecordContractOperation(t *testing.T) {
	m := metrics.New("tienda_test")
	m.RecordContractOperation("create", metrics.ResultOK)
	m.RecordContractOperation("create", metrics.ResultRejected)
	m.RecordContractOperation("create", metrics.ResultRejected)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContractOperations.WithLabelValues("create", metrics.ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ContractOperations.WithLabelValues("create", metrics.ResultRejected)))
}

func TestObserveHTTP(t *testing.T) {
	m := metrics.New("tienda_test")
	m.ObserveHTTP("GET", "/api/contracts", "200", time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/contracts", "200")))
}

func TestNilMetricsEsSeguro(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.RecordContractOperation("create", metrics.ResultOK)
		m.ObserveHTTP("GET", "/", "200", time.Now())
		m.RecordAuthAttempt(metrics.ResultOK)
	})
}
