package loader

import (
	"math"
	"math/rand"

	apperrors "github.com/Shenika-D/ShadowFox-Internship/internal/errors"
)

// TrainTestSplit splits row indices 0..n-1 into train and test sets by ratio.
// The test set takes ceil(n*testRatio) rows from the front of a permutation
// drawn from a source seeded with seed, so equal seeds give equal splits.
func TrainTestSplit(n int, testRatio float64, seed int64) (train, test []int, err error) {
	if testRatio <= 0 || testRatio >= 1 {
		return nil, nil, apperrors.InvalidArgument("test ratio %v outside (0,1)", testRatio)
	}
	nTest := int(math.Ceil(float64(n) * testRatio))
	if nTest < 1 || n-nTest < 1 {
		return nil, nil, apperrors.InvalidArgument("cannot split %d rows with test ratio %v", n, testRatio)
	}
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	test = append([]int(nil), indices[:nTest]...)
	train = append([]int(nil), indices[nTest:]...)
	return train, test, nil
}
