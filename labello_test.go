package labello_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/labello"
	"github.com/arloliu/labello/blob"
	"github.com/arloliu/labello/encoder"
	"github.com/arloliu/labello/format"
)

func TestNewEncoder_Strategies(t *testing.T) {
	for _, strategy := range []format.StrategyType{
		format.StrategyOrdinal,
		format.StrategyOneHot,
		format.StrategyCustom,
	} {
		enc, err := labello.NewEncoder[string](strategy)
		require.NoError(t, err)
		require.Equal(t, strategy, enc.Strategy())
	}
}

func TestNewEncoder_ZeroDefaultsToOrdinal(t *testing.T) {
	enc, err := labello.NewEncoder[string](0)
	require.NoError(t, err)
	require.Equal(t, format.StrategyOrdinal, enc.Strategy())
}

func TestPipeline_FitTransformBlobInverse(t *testing.T) {
	data := []string{"INFO", "WARN", "INFO", "ERROR", "INFO", "WARN"}

	enc := labello.NewOrdinalEncoder[string]()
	tr, err := enc.FitTransform(data)
	require.NoError(t, err)
	require.Equal(t, 3, enc.NumClasses())

	// Ship the encoded sequence to another stage and invert it there.
	raw, err := blob.Encode(tr, blob.WithCompression(format.CompressionS2))
	require.NoError(t, err)

	received, err := blob.Decode(raw)
	require.NoError(t, err)

	recon, err := enc.InverseTransform(received)
	require.NoError(t, err)
	require.Equal(t, data, recon)
}

func TestHashMapping_Bucketed(t *testing.T) {
	const buckets = 8

	fn := labello.HashMapping(buckets)
	labels := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, label := range labels {
		require.Less(t, fn(label), uint64(buckets))
		require.Equal(t, fn(label), fn(label), "mapping must be deterministic")
	}
}

func TestHashMapping_ZeroBucketsIsRawHash(t *testing.T) {
	fn := labello.HashMapping(0)
	require.Equal(t, labello.CategoryID("alpha"), fn("alpha"))
}

func TestHashMapping_DrivesCustomEncoder(t *testing.T) {
	data := []string{"alpha", "beta", "alpha", "gamma"}

	enc := labello.NewCustomEncoder[string]()
	require.NoError(t, enc.Fit(data, encoder.WithMappingFunc(labello.HashMapping(16))))

	tr := enc.Transform(data)
	require.Equal(t, len(data), tr.Len())
	for _, code := range tr.Codes() {
		require.Less(t, code, uint64(16))
	}
}

func TestCategoryID_Deterministic(t *testing.T) {
	require.Equal(t, labello.CategoryID("cpu.usage"), labello.CategoryID("cpu.usage"))
	require.NotEqual(t, labello.CategoryID("cpu.usage"), labello.CategoryID("memory.usage"))
}
