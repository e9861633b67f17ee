package ordernum

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator 订单号生成器
// 格式: ORD-<时间戳后8位><4位随机数>，例如 ORD-173056231047
// 时间前缀 + 随机后缀，碰撞概率可忽略，不做仓储去重检查
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator 创建订单号生成器
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next 生成下一个订单号
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := time.Now().UnixMilli() % 100000000 // 时间戳后8位
	suffix := g.rng.Intn(10000)              // 4位随机后缀

	return fmt.Sprintf("ORD-%08d%04d", ts, suffix)
}

// 全局默认生成器
var defaultGenerator = NewGenerator()

// Generate 生成订单号（使用默认生成器）
func Generate() string {
	return defaultGenerator.Next()
}
