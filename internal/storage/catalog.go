package storage

type ItemRow struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	VolumeM3 float64 `json:"volume_m3"`
	WeightKg float64 `json:"weight_kg"`
}

type VehicleRow struct {
	Name             string  `json:"name"`
	CapacityM3       float64 `json:"capacity_m3"`
	WeightCapacityKg float64 `json:"weight_capacity_kg"`
}

type VehiclePriceRow struct {
	Category  string `json:"category"`
	Vehicle   string `json:"vehicle"`
	BasePrice int    `json:"base_price"`
	BaseMen   int    `json:"base_men"`
	BaseWomen int    `json:"base_women"`
}

type FloorPriceRow struct {
	RangeKey string `json:"range_key"`
	MinFloor int    `json:"min_floor"`
	MaxFloor int    `json:"max_floor"`
	Bucket   string `json:"bucket"`
	Price    int    `json:"price"`
}

type TonnageBucketRow struct {
	Bucket    string  `json:"bucket"`
	Threshold float64 `json:"threshold"`
	IsDefault bool    `json:"is_default"`
}

type StorageRateRow struct {
	Type       string `json:"type"`
	RatePerDay int    `json:"rate_per_day"`
}

type LongDistanceRow struct {
	Route string `json:"route"`
	Price int    `json:"price"`
}

type SpecialDayRow struct {
	FormKey string `json:"form_key"`
	Label   string `json:"label"`
	Price   int    `json:"price"`
	Ord     int    `json:"ord"`
}

// SettingRow — скалярные параметры расчёта (loading_efficiency, vat_percent и т.д.).
type SettingRow struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
