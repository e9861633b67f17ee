package ordernum

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextFormat(t *testing.T) {
	g := NewGenerator()

	num := g.Next()
	assert.True(t, strings.HasPrefix(num, "ORD-"))
	assert.Len(t, num, 16) // "ORD-" + 8位时间戳 + 4位随机数
}

func TestNextConcurrentSafe(t *testing.T) {
	g := NewGenerator()

	var wg sync.WaitGroup
	results := make(chan string, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- g.Next()
		}()
	}
	wg.Wait()
	close(results)

	for num := range results {
		assert.True(t, strings.HasPrefix(num, "ORD-"))
	}
}

func TestGenerateUsesDefaultGenerator(t *testing.T) {
	assert.True(t, strings.HasPrefix(Generate(), "ORD-"))
}
