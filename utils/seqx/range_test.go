package seqx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/msto63/pyutils/utils/seqx"
)

func TestRange_Values(t *testing.T) {
	tests := []struct {
		name string
		r    seqx.Range
		want []int64
	}{
		{"stop only", seqx.NewRange(5), []int64{0, 1, 2, 3, 4}},
		{"empty stop", seqx.NewRange(0), []int64{}},
		{"negative stop", seqx.NewRange(-3), []int64{}},
		{"start and stop", seqx.NewRangeFrom(2, 5), []int64{2, 3, 4}},
		{"negative start", seqx.NewRangeFrom(-2, 2), []int64{-2, -1, 0, 1}},
		{"positive step", seqx.NewRangeStep(0, 10, 3), []int64{0, 3, 6, 9}},
		{"step lands on stop", seqx.NewRangeStep(0, 9, 3), []int64{0, 3, 6}},
		{"negative step", seqx.NewRangeStep(10, 0, -3), []int64{10, 7, 4, 1}},
		{"countdown", seqx.NewRangeStep(3, -1, -1), []int64{3, 2, 1, 0}},
		{"start equals stop", seqx.NewRangeStep(5, 5, 1), []int64{}},
		{"ascending past stop", seqx.NewRangeStep(5, 0, 1), []int64{}},
		{"descending past stop", seqx.NewRangeStep(0, 5, -1), []int64{}},
		{"zero step", seqx.NewRangeStep(0, 5, 0), []int64{}},
		{"zero value", seqx.Range{}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.r.Slice())
			require.Equal(t, len(tt.want), tt.r.Len())
		})
	}
}

func TestRange_NoOverflow(t *testing.T) {
	r := seqx.NewRangeStep(math.MaxInt64-10, math.MaxInt64, 4)
	require.Equal(t, []int64{math.MaxInt64 - 10, math.MaxInt64 - 6, math.MaxInt64 - 2}, r.Slice())
	require.Equal(t, 3, r.Len())

	r = seqx.NewRangeStep(math.MaxInt64-2, math.MaxInt64, 5)
	require.Equal(t, []int64{math.MaxInt64 - 2}, r.Slice())

	r = seqx.NewRangeStep(math.MinInt64+5, math.MinInt64, -3)
	require.Equal(t, []int64{math.MinInt64 + 5, math.MinInt64 + 2}, r.Slice())
	require.Equal(t, 2, r.Len())

	r = seqx.NewRangeStep(math.MinInt64+1, math.MinInt64, -1)
	require.Equal(t, []int64{math.MinInt64 + 1}, r.Slice())

	r = seqx.NewRangeStep(math.MaxInt64, math.MinInt64, math.MinInt64)
	require.Equal(t, []int64{math.MaxInt64, -1}, r.Slice())
	require.Equal(t, 2, r.Len())
}

func TestRange_LenMatchesStop(t *testing.T) {
	for n := int64(0); n <= 64; n++ {
		r := seqx.NewRange(n)
		require.Equal(t, int(n), r.Len())
		require.Len(t, r.Slice(), int(n))
	}
}

func TestRange_LenSaturates(t *testing.T) {
	r := seqx.NewRangeFrom(math.MinInt64, math.MaxInt64)
	require.Equal(t, math.MaxInt, r.Len())
}

func TestRange_Restartable(t *testing.T) {
	r := seqx.NewRangeStep(1, 10, 2)
	first := r.Slice()
	second := r.Slice()
	require.Equal(t, first, second)
	require.Equal(t, []int64{1, 3, 5, 7, 9}, first)
}

func TestRange_EarlyBreak(t *testing.T) {
	var got []int64
	for v := range seqx.NewRange(100).All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int64{0, 1, 2}, got)
}

func TestRange_Backward(t *testing.T) {
	require.Equal(t, []int64{1, 4, 7, 10}, seqx.Collect(seqx.NewRangeStep(10, 0, -3).Backward()))
	require.Equal(t, []int64{4, 3, 2, 1, 0}, seqx.Collect(seqx.NewRange(5).Backward()))
	require.Empty(t, seqx.Collect(seqx.NewRange(0).Backward()))
}

func TestRange_Contains(t *testing.T) {
	r := seqx.NewRangeStep(10, 0, -3)
	require.True(t, r.Contains(10))
	require.True(t, r.Contains(7))
	require.True(t, r.Contains(1))
	require.False(t, r.Contains(8))
	require.False(t, r.Contains(0))
	require.False(t, r.Contains(13))
	require.False(t, r.Contains(-2))

	up := seqx.NewRangeStep(-4, 5, 2)
	require.True(t, up.Contains(-4))
	require.True(t, up.Contains(4))
	require.False(t, up.Contains(5))
	require.False(t, up.Contains(-3))

	require.False(t, seqx.NewRangeStep(0, 5, 0).Contains(0))
}

func TestRange_At(t *testing.T) {
	r := seqx.NewRangeStep(10, 0, -3)

	v, ok := r.At(0)
	require.True(t, ok)
	require.Equal(t, int64(10), v)

	v, ok = r.At(3)
	require.True(t, ok)
	require.Equal(t, int64(1), v)

	_, ok = r.At(4)
	require.False(t, ok)

	_, ok = r.At(-1)
	require.False(t, ok)
}

func TestRange_Accessors(t *testing.T) {
	r := seqx.NewRangeStep(1, 20, 4)
	require.Equal(t, int64(1), r.Start())
	require.Equal(t, int64(20), r.Stop())
	require.Equal(t, int64(4), r.Step())
	require.True(t, r.Valid())
	require.Equal(t, "range(1, 20, 4)", r.String())

	require.False(t, seqx.NewRangeStep(1, 20, 0).Valid())
	require.Equal(t, "range(0, 3, 1)", seqx.NewRange(3).String())
}
