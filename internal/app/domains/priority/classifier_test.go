package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opne/internal/app/domains/entity/etorder"
)

func TestScoreToLevel(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{100, 1},
		{80, 1},
		{79, 2},
		{65, 2},
		{64, 3},
		{35, 3},
		{34, 4},
		{20, 4},
		{19, 5},
		{1, 5},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ScoreToLevel(tt.score), "score=%d", tt.score)
	}
}

func TestScoreToLevelMonotonic(t *testing.T) {
	// 分值越高等级数字越小（不增）
	prev := ScoreToLevel(1)
	for score := 2; score <= 100; score++ {
		level := ScoreToLevel(score)
		assert.LessOrEqual(t, level, prev, "score=%d", score)
		prev = level
	}
}

func TestLevelToLabel(t *testing.T) {
	assert.Equal(t, "URGENT", LevelToLabel(1))
	assert.Equal(t, "HIGH", LevelToLabel(2))
	assert.Equal(t, "NORMAL", LevelToLabel(3))
	assert.Equal(t, "LOW", LevelToLabel(4))
	assert.Equal(t, "LOWEST", LevelToLabel(5))

	// 越界回落 NORMAL
	assert.Equal(t, "NORMAL", LevelToLabel(0))
	assert.Equal(t, "NORMAL", LevelToLabel(6))
}

func TestLevelToFulfillmentPriority(t *testing.T) {
	assert.Equal(t, etorder.FulfillmentUrgent, LevelToFulfillmentPriority(1))
	assert.Equal(t, etorder.FulfillmentHigh, LevelToFulfillmentPriority(2))
	assert.Equal(t, etorder.FulfillmentNormal, LevelToFulfillmentPriority(3))
	assert.Equal(t, etorder.FulfillmentLow, LevelToFulfillmentPriority(4))
	assert.Equal(t, etorder.FulfillmentLow, LevelToFulfillmentPriority(5))
	assert.Equal(t, etorder.FulfillmentNormal, LevelToFulfillmentPriority(99))
}

func TestIsExpressMethod(t *testing.T) {
	assert.True(t, IsExpressMethod("express"))
	assert.True(t, IsExpressMethod("Overnight"))
	assert.True(t, IsExpressMethod(" NEXT_DAY "))
	assert.False(t, IsExpressMethod("standard"))
	assert.False(t, IsExpressMethod(""))
}

func TestGenerateTags(t *testing.T) {
	tests := []struct {
		name  string
		attrs OrderAttributes
		want  []string
	}{
		{
			name:  "plain order",
			attrs: OrderAttributes{TotalAmount: 100, ShippingMethod: "standard"},
			want:  []string{},
		},
		{
			name:  "high value only",
			attrs: OrderAttributes{TotalAmount: 500},
			want:  []string{TagHighValue},
		},
		{
			name:  "large order stacks with high value",
			attrs: OrderAttributes{TotalAmount: 1000},
			want:  []string{TagHighValue, TagLargeOrder},
		},
		{
			name:  "premium stacks all amount tags",
			attrs: OrderAttributes{TotalAmount: 2000},
			want:  []string{TagHighValue, TagLargeOrder, TagPremiumOrder},
		},
		{
			name:  "express by shipping method",
			attrs: OrderAttributes{TotalAmount: 50, ShippingMethod: "overnight"},
			want:  []string{TagExpressShipping},
		},
		{
			name:  "express by flag",
			attrs: OrderAttributes{TotalAmount: 50, IsExpressShipping: true},
			want:  []string{TagExpressShipping},
		},
		{
			name: "vip repeat express premium",
			attrs: OrderAttributes{
				TotalAmount:      2500,
				ShippingMethod:   "express",
				IsVIPCustomer:    true,
				IsRepeatCustomer: true,
			},
			want: []string{TagHighValue, TagExpressShipping, TagVIPCustomer, TagRepeatCustomer, TagLargeOrder, TagPremiumOrder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateTags(tt.attrs))
		})
	}
}

func TestGenerateTagsDeterministic(t *testing.T) {
	attrs := OrderAttributes{TotalAmount: 1500, IsVIPCustomer: true, ShippingMethod: "express"}
	first := GenerateTags(attrs)
	second := GenerateTags(attrs)
	assert.Equal(t, first, second)
}
