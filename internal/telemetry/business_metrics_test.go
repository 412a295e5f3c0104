package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessMetrics_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBusinessMetrics("kirana_test", reg)
	require.NotNil(t, m)

	m.OrdersCreated.WithLabelValues("cash").Inc()
	m.OrdersCreated.WithLabelValues("cash").Inc()
	m.OrderTransitions.WithLabelValues("pending", "confirmed").Inc()
	m.OTPRequested.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily)
	for _, f := range families {
		byName[f.GetName()] = f
	}

	orders := byName["kirana_test_business_orders_created_total"]
	require.NotNil(t, orders)
	assert.Equal(t, 2.0, orders.GetMetric()[0].GetCounter().GetValue())

	transitions := byName["kirana_test_business_order_transitions_total"]
	require.NotNil(t, transitions)
	assert.Equal(t, 1.0, transitions.GetMetric()[0].GetCounter().GetValue())

	otp := byName["kirana_test_business_otp_requested_total"]
	require.NotNil(t, otp)
	assert.Equal(t, 1.0, otp.GetMetric()[0].GetCounter().GetValue())
}

func TestNewBusinessMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewBusinessMetrics("", prometheus.NewRegistry())
		NewBusinessMetrics("", prometheus.NewRegistry())
	})
}

func TestCaptureError_DisabledIsNoop(t *testing.T) {
	assert.False(t, IsEnabled())
	assert.NotPanics(t, func() {
		CaptureError(assert.AnError)
		CaptureErrorFromContext(t.Context(), assert.AnError, nil)
	})
}

func TestThrottledCounter_LabelledByLimiter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBusinessMetrics("kirana_test", reg)
	m.Throttled.WithLabelValues("auth").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "kirana_test_business_requests_throttled_total" {
			continue
		}
		require.Len(t, f.GetMetric(), 1)
		assert.Equal(t, "auth", f.GetMetric()[0].GetLabel()[0].GetValue())
		return
	}
	t.Fatal("throttled counter not registered")
}
