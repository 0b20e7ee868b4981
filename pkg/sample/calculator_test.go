package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCalculator(t *testing.T) {
	c := NewCalculator()
	assert.Equal(t, 0, c.Result())
}

func TestCalculator_ZeroValue(t *testing.T) {
	var c Calculator
	c.Add(3)
	assert.Equal(t, 3, c.Result())
}

func TestCalculator_Chaining(t *testing.T) {
	c := NewCalculator()
	c.Add(5).Subtract(2).Add(1)

	assert.Equal(t, 4, c.Result())
}

func TestCalculator_ChainReturnsSameInstance(t *testing.T) {
	c := NewCalculator()

	added := c.Add(10)
	assert.Same(t, c, added)

	subtracted := added.Subtract(4)
	assert.Same(t, c, subtracted)

	// every step mutated the one accumulator
	assert.Equal(t, 6, c.Result())
	assert.Equal(t, 6, added.Result())
}

func TestCalculator_NegativeValues(t *testing.T) {
	c := NewCalculator().Add(-3).Subtract(-5)
	assert.Equal(t, 2, c.Result())
}

func TestCalculator_ResultIsNetSum(t *testing.T) {
	adds := []int{4, 8, 15}
	subs := []int{16, 23, 42}

	c := NewCalculator()
	for i := range adds {
		c.Add(adds[i]).Subtract(subs[i])
	}

	assert.Equal(t, CalculateSum(adds)-CalculateSum(subs), c.Result())
}
