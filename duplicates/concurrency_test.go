// SPDX-License-Identifier: MIT
package duplicates_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/dupguard/duplicates"
	"github.com/katalvlaran/dupguard/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentQueries runs zipped and unzipped queries from many goroutines.
func TestConcurrentQueries(t *testing.T) {
	identity := duplicates.SpaceFunc(func(x matrix.Matrix) (matrix.Matrix, error) { return x.Clone(), nil })
	rows := make([][]float64, 100)
	for i := range rows {
		rows[i] = []float64{float64(i) / 10, float64(i%7) / 10}
	}
	evaluated, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	mgr, err := duplicates.NewManager(identity, evaluated, nil, nil)
	require.NoError(t, err)

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func(id int) {
			defer wg.Done()
			for i, x := range rows {
				var dup bool
				var err error
				if (i+id)%2 == 0 {
					dup, err = mgr.IsZippedDuplicate(x)
				} else {
					dup, err = mgr.IsUnzippedDuplicate(x)
				}
				assert.NoError(t, err)
				assert.True(t, dup)
			}
		}(r)
	}
	wg.Wait()
	require.Equal(t, len(rows), mgr.Len())
}
