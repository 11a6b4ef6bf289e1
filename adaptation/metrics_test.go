package adaptation_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"adaptation-engine/adaptation"
)

func TestMetrics_RecordOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := adaptation.NewMetrics(reg)
	require.NoError(t, err)

	cfg := adaptation.DefaultConfig()
	cfg.Model = newExampleTable()
	cfg.Metrics = metrics
	m := adaptation.NewManager(cfg)

	mustRegister(m, func(any) (any, error) { return nil, nil }, ukStandard, iraqStandard)
	registerUKToEU(m)
	registerEUToJapan(m)

	plug := &ukPlug{}

	_, err = m.Adapt(plug, ukStandard)
	require.NoError(t, err)
	_, err = m.Adapt(plug, japanStandard)
	require.NoError(t, err)
	_, err = m.AdaptOr(plug, iraqStandard, "default")
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.AdaptTotal.WithLabelValues(adaptation.OutcomeProvided)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.AdaptTotal.WithLabelValues(adaptation.OutcomeAdapted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.AdaptTotal.WithLabelValues(adaptation.OutcomeDefault)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MaterializationsTotal.WithLabelValues(adaptation.MaterializedOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.MaterializationsTotal.WithLabelValues(adaptation.MaterializedDeclined)), 0)
	assert.Positive(t, testutil.ToFloat64(metrics.SearchExpansions))

	count, err := testutil.GatherAndCount(reg, "adaptation_chain_length")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := adaptation.NewMetrics(reg)
	require.NoError(t, err)

	_, err = adaptation.NewMetrics(reg)
	require.Error(t, err)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	metrics, err := adaptation.NewMetrics(nil)
	require.NoError(t, err)
	assert.NotNil(t, metrics.AdaptTotal)
}

func TestLogger_TracesSearch(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	cfg := adaptation.DefaultConfig()
	cfg.Model = newExampleTable()
	cfg.Logger = zap.New(core)
	m := adaptation.NewManager(cfg)

	mustRegister(m, func(any) (any, error) { return nil, nil }, ukStandard, iraqStandard)
	registerUKToEU(m)

	_, err := m.AdaptOr(&ukPlug{}, iraqStandard, nil)
	require.NoError(t, err)
	_, err = m.Adapt(&ukPlug{}, euStandard)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("adapter chain declined").Len())
	assert.Equal(t, 1, logs.FilterMessage("no adapter chain found").Len())
	assert.Equal(t, 1, logs.FilterMessage("adapted").Len())
	assert.Equal(t, 2, logs.FilterMessage("registered adaptation offer").Len())
}
