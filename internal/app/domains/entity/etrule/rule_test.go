package etrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerTierCondition(t *testing.T) {
	vip := &CustomerTierCondition{Field: "is_vip_customer", Value: "true"}
	assert.True(t, vip.Matches(true, false))
	assert.False(t, vip.Matches(false, true))

	repeat := &CustomerTierCondition{Field: "is_repeat_customer", Value: "true"}
	assert.True(t, repeat.Matches(false, true))
	assert.False(t, repeat.Matches(true, false))

	// 比较值不是字面量 "true" 时永不命中
	off := &CustomerTierCondition{Field: "is_vip_customer", Value: "false"}
	assert.False(t, off.Matches(true, true))

	unknown := &CustomerTierCondition{Field: "is_gold_customer", Value: "true"}
	assert.False(t, unknown.Matches(true, true))
}

func TestParseConditionMethods(t *testing.T) {
	assert.Equal(t, []string{"express", "overnight"}, ParseConditionMethods("Express, OVERNIGHT"))
	assert.Equal(t, []string{"next_day"}, ParseConditionMethods("next_day"))
	assert.Empty(t, ParseConditionMethods(" , ,"))
}

func TestShippingMethodConditionEquality(t *testing.T) {
	c := &ShippingMethodCondition{Operator: "=", Methods: []string{"express"}}
	assert.True(t, c.Matches("express"))
	assert.False(t, c.Matches("overnight"))

	empty := &ShippingMethodCondition{Operator: "="}
	assert.False(t, empty.Matches("express"))
}
