package loader

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainTestSplitSizesAndDisjoint(t *testing.T) {
	train, test, err := TrainTestSplit(11, 0.2, 42)
	require.NoError(t, err)
	assert.Len(t, test, 3, "ceil(11*0.2)")
	assert.Len(t, train, 8)

	all := append(append([]int{}, train...), test...)
	sort.Ints(all)
	for i, v := range all {
		assert.Equal(t, i, v)
	}
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	a1, b1, err := TrainTestSplit(100, 0.2, 42)
	require.NoError(t, err)
	a2, b2, err := TrainTestSplit(100, 0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	_, b3, err := TrainTestSplit(100, 0.2, 7)
	require.NoError(t, err)
	assert.NotEqual(t, b1, b3)
}

func TestTrainTestSplitRejects(t *testing.T) {
	_, _, err := TrainTestSplit(1, 0.2, 42)
	assert.Error(t, err)
	_, _, err = TrainTestSplit(10, 0, 42)
	assert.Error(t, err)
}
