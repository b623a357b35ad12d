package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPredictionsCounter(t *testing.T) {
	before := testutil.ToFloat64(Predictions.WithLabelValues("salary", "fallback"))
	Predictions.WithLabelValues("salary", "fallback").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Predictions.WithLabelValues("salary", "fallback")))
}

func TestObserveDelegate(t *testing.T) {
	ObserveDelegate("ml_salary_predictor.py", time.Now().Add(-time.Second))
	assert.Equal(t, 1, testutil.CollectAndCount(DelegateDuration, "aichat_delegate_duration_seconds"))
}
