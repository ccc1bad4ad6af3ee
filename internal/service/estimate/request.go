package estimate

import (
	"strconv"
	"strings"

	"moving-quote/internal/catalog"
)

// Leg — одна сторона переезда (откуда или куда).
type Leg struct {
	Floor    string
	Method   catalog.AccessMethod
	SkyHours int
}

// Request — плоская запись заявки из формы. Всё числовое неотрицательно,
// кроме Adjustment (ручная корректировка со знаком).
type Request struct {
	Category   catalog.MoveCategory
	Quantities map[string]float64

	VehicleName string

	Departure Leg
	Arrival   Leg

	AddMen          int
	AddWomen        int
	RemoveBaseMan   bool
	RemoveBaseWoman bool

	IsStorage   bool
	StorageDays int
	StorageType catalog.StorageType
	Electricity bool

	LongDistance    bool
	LongDistanceKey string

	Waste     bool
	WasteTons float64

	SpecialDays map[string]bool

	ViaPoint       bool
	ViaPointAmount int

	Adjustment int

	ManualLadderDeparture       bool
	ManualLadderDepartureAmount int
	ManualLadderArrival         bool
	ManualLadderArrivalAmount   int

	VAT  bool
	Card bool
}

// BuildRequest приводит сырую JSON-запись формы к типизированному запросу.
// Неизвестные и нечисловые значения приводятся к нулю, ничего не падает.
func BuildRequest(form map[string]any) Request {
	req := Request{
		Category:    catalog.MoveCategory(stringField(form, "category")),
		Quantities:  quantityField(form, "items"),
		VehicleName: stringField(form, "vehicle"),

		Departure: Leg{
			Floor:    stringField(form, "start_floor"),
			Method:   catalog.AccessMethod(stringField(form, "start_method")),
			SkyHours: intField(form, "start_sky_hours"),
		},
		Arrival: Leg{
			Floor:    stringField(form, "end_floor"),
			Method:   catalog.AccessMethod(stringField(form, "end_method")),
			SkyHours: intField(form, "end_sky_hours"),
		},

		AddMen:          intField(form, "add_men"),
		AddWomen:        intField(form, "add_women"),
		RemoveBaseMan:   boolField(form, "remove_base_man"),
		RemoveBaseWoman: boolField(form, "remove_base_woman"),

		IsStorage:   boolField(form, "storage"),
		StorageDays: intField(form, "storage_days"),
		StorageType: catalog.StorageType(stringField(form, "storage_type")),
		Electricity: boolField(form, "storage_electric"),

		LongDistance:    boolField(form, "long_distance"),
		LongDistanceKey: stringField(form, "long_distance_route"),

		Waste:     boolField(form, "waste"),
		WasteTons: floatField(form, "waste_tons"),

		ViaPoint:       boolField(form, "via_point"),
		ViaPointAmount: intField(form, "via_point_amount"),

		// единственное поле со знаком
		Adjustment: signedIntField(form, "adjustment"),

		ManualLadderDeparture:       boolField(form, "manual_ladder_start"),
		ManualLadderDepartureAmount: intField(form, "manual_ladder_start_amount"),
		ManualLadderArrival:         boolField(form, "manual_ladder_end"),
		ManualLadderArrivalAmount:   intField(form, "manual_ladder_end_amount"),

		VAT:  boolField(form, "vat"),
		Card: boolField(form, "card"),
	}

	req.SpecialDays = make(map[string]bool)
	for key, val := range form {
		if strings.HasPrefix(key, "date_") {
			req.SpecialDays[key] = coerceBool(val)
		}
	}

	return req
}

func stringField(form map[string]any, key string) string {
	if s, ok := form[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func boolField(form map[string]any, key string) bool {
	return coerceBool(form[key])
}

func coerceBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1" || v == "on" || v == "y"
	case float64:
		return v != 0
	}
	return false
}

func floatField(form map[string]any, key string) float64 {
	f := coerceFloat(form[key])
	if f < 0 {
		return 0
	}
	return f
}

func intField(form map[string]any, key string) int {
	n := int(coerceFloat(form[key]))
	if n < 0 {
		return 0
	}
	return n
}

func signedIntField(form map[string]any, key string) int {
	return int(coerceFloat(form[key]))
}

func coerceFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

func quantityField(form map[string]any, key string) map[string]float64 {
	out := make(map[string]float64)
	items, ok := form[key].(map[string]any)
	if !ok {
		return out
	}
	for name, val := range items {
		out[name] = coerceFloat(val)
	}
	return out
}
