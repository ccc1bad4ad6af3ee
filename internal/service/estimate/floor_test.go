package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moving-quote/internal/catalog"
)

func TestParseFloor(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"B2", -2},
		{"b1", -1},
		{"B", 0},
		{"3", 3},
		{"15층", 15},
		{"-2", -2},
		{"2-3-4", 234}, // несколько дефисов: остаются только цифры
		{"", 0},
		{"abc", 0},
		{" 7 ", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFloor(tt.in), "ParseFloor(%q)", tt.in)
	}
}

func TestLadderCost(t *testing.T) {
	e := NewEngine(catalog.Default())

	truck25, ok := e.catalog.Vehicle("2.5톤 트럭")
	assert.True(t, ok)
	truck5, ok := e.catalog.Vehicle("5톤 트럭")
	assert.True(t, ok)

	// ниже 2 этажа подъёмник не нужен
	cost, note := e.ladderCost(1, truck25)
	assert.Equal(t, 0, cost)
	assert.Empty(t, note)

	cost, note = e.ladderCost(-3, truck25)
	assert.Equal(t, 0, cost)
	assert.Empty(t, note)

	// 5 этаж, 2.5 тонны → диапазон 2-5, ступень 2.5t
	cost, note = e.ladderCost(5, truck25)
	assert.Equal(t, 70000, cost)
	assert.Empty(t, note)

	cost, _ = e.ladderCost(7, truck25)
	assert.Equal(t, 80000, cost)

	// в диапазоне 21-25 у 5т нулевая ячейка → уходим на ступень по умолчанию
	cost, note = e.ladderCost(23, truck5)
	assert.Equal(t, 110000, cost)
	assert.Empty(t, note)

	// этаж вне всех диапазонов
	cost, note = e.ladderCost(30, truck25)
	assert.Equal(t, 0, cost)
	assert.NotEmpty(t, note)
}

func TestSkyCost(t *testing.T) {
	e := NewEngine(catalog.Default())

	// часы < 1 приводятся к 1
	assert.Equal(t, 150000, e.skyCost(0))
	assert.Equal(t, 150000, e.skyCost(-5))
	assert.Equal(t, 150000, e.skyCost(1))
	assert.Equal(t, 250000, e.skyCost(3))
}
