package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moving-quote/internal/catalog"
)

func TestAggregate(t *testing.T) {
	e := NewEngine(catalog.Default())

	volume, weight := e.Aggregate(catalog.CategoryHome, map[string]float64{
		"냉장고": 1,
		"세탁기": 2,
	})
	assert.InDelta(t, 2.4, volume, 0.001)
	assert.InDelta(t, 280, weight, 0.001)
}

func TestAggregate_IgnoresUnknownAndNonPositive(t *testing.T) {
	e := NewEngine(catalog.Default())

	volume, weight := e.Aggregate(catalog.CategoryHome, map[string]float64{
		"존재하지 않는 물건": 5,
		"냉장고":       0,
		"세탁기":       -2,
	})
	assert.Zero(t, volume)
	assert.Zero(t, weight)
}

func TestAggregate_EmptyAndUnknownCategory(t *testing.T) {
	e := NewEngine(catalog.Default())

	volume, weight := e.Aggregate(catalog.CategoryHome, nil)
	assert.Zero(t, volume)
	assert.Zero(t, weight)

	volume, weight = e.Aggregate("factory", map[string]float64{"냉장고": 1})
	assert.Zero(t, volume)
	assert.Zero(t, weight)
}

func TestAggregate_DuplicateItemCountedOnce(t *testing.T) {
	cat := catalog.Default()
	cat.Items["dup"] = []catalog.Item{
		{Name: "박스", VolumeM3: 0.2, WeightKg: 10},
		{Name: "박스", VolumeM3: 0.2, WeightKg: 10},
	}
	e := NewEngine(cat)

	volume, weight := e.Aggregate("dup", map[string]float64{"박스": 3})
	assert.InDelta(t, 0.6, volume, 0.001)
	assert.InDelta(t, 30, weight, 0.001)
}

func TestAggregate_RoundsToTwoDecimals(t *testing.T) {
	cat := catalog.Default()
	cat.Items["odd"] = []catalog.Item{
		{Name: "화분(소)", VolumeM3: 0.333, WeightKg: 1.111},
	}
	e := NewEngine(cat)

	volume, weight := e.Aggregate("odd", map[string]float64{"화분(소)": 2})
	assert.Equal(t, 0.67, volume)
	assert.Equal(t, 2.22, weight)
}

func TestAggregate_MonotonicInQuantity(t *testing.T) {
	e := NewEngine(catalog.Default())

	quantities := map[string]float64{"냉장고": 1, "책상": 2}
	prevVolume, prevWeight := e.Aggregate(catalog.CategoryHome, quantities)

	for qty := 2.0; qty <= 10; qty++ {
		quantities["책상"] = qty
		volume, weight := e.Aggregate(catalog.CategoryHome, quantities)
		assert.GreaterOrEqual(t, volume, prevVolume)
		assert.GreaterOrEqual(t, weight, prevWeight)
		prevVolume, prevWeight = volume, weight
	}
}
