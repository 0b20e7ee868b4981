package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSum(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    int
	}{
		{"nil", nil, 0},
		{"empty", []int{}, 0},
		{"single", []int{42}, 42},
		{"several", []int{1, 2, 3, 4}, 10},
		{"mixed signs", []int{-5, 10, -2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateSum(tt.numbers))
		})
	}
}

func TestFindMax(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    int
	}{
		{"single", []int{7}, 7},
		{"ascending", []int{1, 2, 3}, 3},
		{"max first", []int{9, 2, 3}, 9},
		{"all negative", []int{-8, -3, -11}, -3},
		{"duplicates", []int{4, 4, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindMax(tt.numbers)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindMax_Empty(t *testing.T) {
	_, ok := FindMax(nil)
	assert.False(t, ok)

	_, ok = FindMax([]int{})
	assert.False(t, ok)
}

func TestFindMax_ZeroIsAValue(t *testing.T) {
	got, ok := FindMax([]int{-1, 0, -2})
	assert.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestFindMax_DoesNotModifyInput(t *testing.T) {
	numbers := []int{3, 1, 2}
	FindMax(numbers)
	assert.Equal(t, []int{3, 1, 2}, numbers)
}
