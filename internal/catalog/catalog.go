package catalog

import (
	"fmt"
	"sort"
)

type MoveCategory string

const (
	CategoryHome    MoveCategory = "home"
	CategoryOffice  MoveCategory = "office"
	CategoryOneroom MoveCategory = "oneroom"
)

type AccessMethod string

const (
	AccessLadder   AccessMethod = "ladder"
	AccessSky      AccessMethod = "sky"
	AccessElevator AccessMethod = "elevator"
	AccessStairs   AccessMethod = "stairs"
)

type StorageType string

const (
	StorageContainer StorageType = "container"
	StorageIndoor    StorageType = "indoor"
)

type Item struct {
	Name     string  `json:"name"`
	VolumeM3 float64 `json:"volume_m3"`
	WeightKg float64 `json:"weight_kg"`
}

type Vehicle struct {
	Name             string  `json:"name"`
	CapacityM3       float64 `json:"capacity_m3"`
	WeightCapacityKg float64 `json:"weight_capacity_kg"`
}

// VehiclePrice — базовый тариф и штатный экипаж машины для категории переезда.
// BaseWomen учитывается только для категории home.
type VehiclePrice struct {
	Vehicle   string `json:"vehicle"`
	BasePrice int    `json:"base_price"`
	BaseMen   int    `json:"base_men"`
	BaseWomen int    `json:"base_women"`
}

type FloorRange struct {
	Key string
	Min int
	Max int
}

// TonnageBucket — ступень грузоподъёмности для таблицы цен лестничного подъёмника.
// Ступени хранятся по убыванию Threshold, машина попадает в первую ступень,
// чей порог не превышает её тоннаж.
type TonnageBucket struct {
	Key       string
	Threshold float64
}

type ElectricityRate struct {
	FlatUnder30 int
	Per30Days   int
	PerDay      int
}

type SpecialDay struct {
	FormKey string `json:"form_key"`
	Label   string `json:"label"`
	Price   int    `json:"price"`
}

// Catalog — неизменяемые справочные данные расчёта. Загружается один раз при
// старте, после Validate никакая часть приложения его не меняет.
type Catalog struct {
	LoadingEfficiency float64

	Items    map[MoveCategory][]Item
	Vehicles []Vehicle
	Prices   map[MoveCategory]map[string]VehiclePrice

	FloorRanges    []FloorRange
	FloorPrices    map[string]map[string]int
	TonnageBuckets []TonnageBucket
	DefaultBucket  string

	StorageRates map[StorageType]int
	Electricity  ElectricityRate

	LongDistance map[string]int
	SpecialDays  []SpecialDay

	SkyBasePrice int
	SkyHourRate  int

	AddManCost   int
	AddWomanCost int

	WastePerTon int

	VATPercent  float64
	CardPercent float64
}

func (c *Catalog) ItemsFor(category MoveCategory) []Item {
	return c.Items[category]
}

func (c *Catalog) Vehicle(name string) (Vehicle, bool) {
	for _, v := range c.Vehicles {
		if v.Name == name {
			return v, true
		}
	}
	return Vehicle{}, false
}

func (c *Catalog) Price(category MoveCategory, vehicle string) (VehiclePrice, bool) {
	prices, ok := c.Prices[category]
	if !ok {
		return VehiclePrice{}, false
	}
	p, ok := prices[vehicle]
	return p, ok
}

// VehiclesFor возвращает машины, у которых есть тариф для категории,
// по возрастанию объёма кузова.
func (c *Catalog) VehiclesFor(category MoveCategory) []Vehicle {
	prices := c.Prices[category]

	var out []Vehicle
	for _, v := range c.Vehicles {
		if _, ok := prices[v.Name]; ok {
			out = append(out, v)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CapacityM3 < out[j].CapacityM3
	})

	return out
}

func (c *Catalog) FloorRangeKey(floor int) (string, bool) {
	for _, r := range c.FloorRanges {
		if floor >= r.Min && floor <= r.Max {
			return r.Key, true
		}
	}
	return "", false
}

// BucketFor подбирает ступень тоннажа: первый порог, не превышающий tons,
// иначе ступень по умолчанию.
func (c *Catalog) BucketFor(tons float64) string {
	for _, b := range c.TonnageBuckets {
		if b.Threshold <= tons {
			return b.Key
		}
	}
	return c.DefaultBucket
}

// Validate проверяет обязательные таблицы один раз при загрузке, чтобы расчёт
// не проверял их на каждый запрос.
func (c *Catalog) Validate() error {
	const op = "catalog.Validate"

	if c.LoadingEfficiency <= 0 || c.LoadingEfficiency > 1 {
		return fmt.Errorf("%s: loading efficiency must be in (0;1], got %v", op, c.LoadingEfficiency)
	}
	if len(c.Vehicles) == 0 {
		return fmt.Errorf("%s: no vehicles", op)
	}
	if len(c.Prices) == 0 {
		return fmt.Errorf("%s: no vehicle price tables", op)
	}

	for category, prices := range c.Prices {
		if len(prices) == 0 {
			return fmt.Errorf("%s: empty price table for category %q", op, category)
		}
		for name := range prices {
			if _, ok := c.Vehicle(name); !ok {
				return fmt.Errorf("%s: price row for unknown vehicle %q (category %q)", op, name, category)
			}
		}
	}

	if len(c.TonnageBuckets) == 0 {
		return fmt.Errorf("%s: no tonnage buckets", op)
	}
	for i := 1; i < len(c.TonnageBuckets); i++ {
		if c.TonnageBuckets[i].Threshold >= c.TonnageBuckets[i-1].Threshold {
			return fmt.Errorf("%s: tonnage buckets must descend, %q >= %q",
				op, c.TonnageBuckets[i].Key, c.TonnageBuckets[i-1].Key)
		}
	}

	hasDefault := false
	for _, b := range c.TonnageBuckets {
		if b.Key == c.DefaultBucket {
			hasDefault = true
		}
	}
	if !hasDefault {
		return fmt.Errorf("%s: default bucket %q is not among tonnage buckets", op, c.DefaultBucket)
	}

	for i, r := range c.FloorRanges {
		if r.Min > r.Max {
			return fmt.Errorf("%s: floor range %q: min %d > max %d", op, r.Key, r.Min, r.Max)
		}
		for _, other := range c.FloorRanges[:i] {
			if r.Min <= other.Max && other.Min <= r.Max {
				return fmt.Errorf("%s: floor ranges %q and %q overlap", op, other.Key, r.Key)
			}
		}
		if _, ok := c.FloorPrices[r.Key]; !ok {
			return fmt.Errorf("%s: no ladder prices for floor range %q", op, r.Key)
		}
	}

	if c.VATPercent < 0 || c.CardPercent < 0 {
		return fmt.Errorf("%s: negative tax percent", op)
	}

	return nil
}
