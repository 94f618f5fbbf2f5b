package navigator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridnav/navigator"
)

func TestPositionFeed(t *testing.T) {
	var f navigator.PositionFeed
	_, _, ok := f.Latest()
	assert.False(t, ok)

	assert.Equal(t, uint64(1), f.Publish(cell(1, 2)))
	assert.Equal(t, uint64(2), f.Publish(cell(3, 4)))
	c, v, ok := f.Latest()
	assert.True(t, ok)
	assert.Equal(t, cell(3, 4), c)
	assert.Equal(t, uint64(2), v)
}

func TestPositionFeed_ConcurrentPublish(t *testing.T) {
	const writers, each = 8, 200
	var f navigator.PositionFeed
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				f.Publish(cell(w, i))
			}
		}(w)
	}
	wg.Wait()

	_, v, ok := f.Latest()
	assert.True(t, ok)
	assert.Equal(t, uint64(writers*each), v)
}
