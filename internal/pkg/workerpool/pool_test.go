package workerpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_RunsEveryTask(t *testing.T) {
	p := New(3, 10)
	results := p.Run(context.Background())

	var done atomic.Int32
	for i := 0; i < 10; i++ {
		p.Submit(func(context.Context) error {
			done.Add(1)
			return nil
		})
	}
	p.Close()

	n := 0
	for r := range results {
		require.NoError(t, r.Err)
		n++
	}
	assert.Equal(t, 10, n)
	assert.Equal(t, int32(10), done.Load())
}

func TestEach_KeepsErrorsByIndex(t *testing.T) {
	boom := errors.New("boom")
	errs := Each(context.Background(), 2, 5, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})

	require.Len(t, errs, 5)
	for i, err := range errs {
		if i == 3 {
			assert.ErrorIs(t, err, boom)
			continue
		}
		assert.NoError(t, err)
	}
}
