package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moving-quote/internal/catalog"
)

func findLines(res Result, label string) []CostLine {
	var out []CostLine
	for _, line := range res.Lines {
		if line.Label == label {
			out = append(out, line)
		}
	}
	return out
}

func TestEstimate_HomeLadderScenario(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "2.5톤 트럭",
		Departure:   Leg{Floor: "5", Method: catalog.AccessLadder},
		Arrival:     Leg{Floor: "1", Method: catalog.AccessElevator},
	})

	base := findLines(res, "기본 운임")
	assert.Len(t, base, 1)
	assert.Equal(t, 600000, base[0].Amount)

	ladder := findLines(res, "출발지 사다리차")
	assert.Len(t, ladder, 1)
	assert.Equal(t, 70000, ladder[0].Amount)

	// на прибытии лифт, подъёмник не нужен
	assert.Empty(t, findLines(res, "도착지 사다리차"))

	assert.Equal(t, 670000, res.Total)
	assert.Zero(t, res.Total%100)

	assert.Equal(t, 3, res.Personnel.FinalMen)
	assert.Equal(t, 1, res.Personnel.FinalWomen)
}

func TestEstimate_StorageDoublesBaseFare(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "2.5톤 트럭",
		IsStorage:   true,
		StorageDays: 10,
		StorageType: catalog.StorageContainer,
	})

	base := findLines(res, "기본 운임")
	assert.Len(t, base, 1)
	assert.Equal(t, 1200000, base[0].Amount)

	fee := findLines(res, "보관료")
	assert.Len(t, fee, 1)
	assert.Equal(t, 130000, fee[0].Amount)

	// электричество не запрошено
	assert.Empty(t, findLines(res, "보관 전기료"))
}

func TestEstimate_ElectricityTiers(t *testing.T) {
	e := NewEngine(catalog.Default())

	req := Request{
		Category:    catalog.CategoryHome,
		VehicleName: "1톤 트럭",
		IsStorage:   true,
		StorageType: catalog.StorageContainer,
		Electricity: true,
	}

	// 35 дней → 2 блока по 30 дней
	req.StorageDays = 35
	elec := findLines(e.Estimate(req), "보관 전기료")
	assert.Len(t, elec, 1)
	assert.Equal(t, 60000, elec[0].Amount)

	// 30 дней ровно → 1 блок
	req.StorageDays = 30
	elec = findLines(e.Estimate(req), "보관 전기료")
	assert.Equal(t, 30000, elec[0].Amount)

	// меньше 30 дней → фикс
	req.StorageDays = 5
	elec = findLines(e.Estimate(req), "보관 전기료")
	assert.Equal(t, 30000, elec[0].Amount)
}

func TestEstimate_StorageLineEmittedEvenAtZeroRate(t *testing.T) {
	cat := catalog.Default()
	cat.StorageRates[catalog.StorageIndoor] = 0
	e := NewEngine(cat)

	res := e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "1톤 트럭",
		IsStorage:   true,
		StorageDays: 7,
		StorageType: catalog.StorageIndoor,
	})

	fee := findLines(res, "보관료")
	assert.Len(t, fee, 1)
	assert.Zero(t, fee[0].Amount)
}

func TestEstimate_RemoveBaseWomanOnce(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:        catalog.CategoryHome,
		VehicleName:     "3.5톤 트럭", // baseWomen = 2
		RemoveBaseWoman: true,
		AddWomen:        1,
	})

	discounts := findLines(res, "기본 인원 제외(여)")
	assert.Len(t, discounts, 1)
	assert.Equal(t, -120000, discounts[0].Amount)

	assert.Equal(t, 1, res.Personnel.RemovedWomen)
	assert.Equal(t, 2, res.Personnel.FinalWomen) // 2 - 1 + 1

	added := findLines(res, "인원 추가")
	assert.Len(t, added, 1)
	assert.Equal(t, 120000, added[0].Amount)
}

func TestEstimate_RemoveIgnoredWithoutBaseCrew(t *testing.T) {
	e := NewEngine(catalog.Default())

	// в office женщин в штате нет, снимать некого
	res := e.Estimate(Request{
		Category:        catalog.CategoryOffice,
		VehicleName:     "2.5톤 트럭",
		RemoveBaseWoman: true,
	})

	assert.Empty(t, findLines(res, "기본 인원 제외(여)"))
	assert.Zero(t, res.Personnel.RemovedWomen)
	assert.Zero(t, res.Personnel.FinalWomen)
}

func TestEstimate_WasteCeiling(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "1톤 트럭",
		Waste:       true,
		WasteTons:   0.5,
	})

	waste := findLines(res, "폐기물 처리")
	assert.Len(t, waste, 1)
	assert.Equal(t, 50000, waste[0].Amount)
}

func TestEstimate_CardAndVATExclusive(t *testing.T) {
	e := NewEngine(catalog.Default())

	req := Request{
		Category:    catalog.CategoryHome,
		VehicleName: "2.5톤 트럭",
		VAT:         true,
		Card:        true,
	}

	res := e.Estimate(req)
	// карта включает НДС, вторая строка не появляется
	assert.Len(t, findLines(res, "카드결제(부가세+수수료 포함)"), 1)
	assert.Empty(t, findLines(res, "부가세(10%)"))

	req.Card = false
	res = e.Estimate(req)
	assert.Len(t, findLines(res, "부가세(10%)"), 1)
	assert.Empty(t, findLines(res, "카드결제(부가세+수수료 포함)"))

	vat := findLines(res, "부가세(10%)")[0]
	assert.Equal(t, 60000, vat.Amount)
	assert.Equal(t, 660000, res.Total)
}

func TestEstimate_TotalRoundsUpTo100(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "2.5톤 트럭",
		Adjustment:  50,
	})

	assert.Len(t, findLines(res, "추가 할증"), 1)
	assert.Equal(t, 600100, res.Total)
	assert.Zero(t, res.Total%100)
}

func TestEstimate_NegativeAdjustmentAndFloor(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "2.5톤 트럭",
		Adjustment:  -100000,
	})

	discount := findLines(res, "할인")
	assert.Len(t, discount, 1)
	assert.Equal(t, -100000, discount[0].Amount)
	assert.Equal(t, 500000, res.Total)

	// скидка больше сметы: итог не уходит в минус
	res = e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "1톤 트럭",
		Adjustment:  -10000000,
	})
	assert.Zero(t, res.Total)
}

func TestEstimate_MissingVehicle(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{Category: catalog.CategoryHome})

	assert.Zero(t, res.Total)
	assert.Len(t, res.Lines, 1)
	assert.Equal(t, "오류", res.Lines[0].Label)
	assert.Equal(t, Personnel{}, res.Personnel)
}

func TestEstimate_MissingPriceRow(t *testing.T) {
	e := NewEngine(catalog.Default())

	// 5т не возит однушки — тарифа нет, расчёт обрывается целиком
	res := e.Estimate(Request{
		Category:    catalog.CategoryOneroom,
		VehicleName: "5톤 트럭",
		Waste:       true,
		WasteTons:   1,
	})

	assert.Zero(t, res.Total)
	assert.Len(t, res.Lines, 1)
	assert.Equal(t, "오류", res.Lines[0].Label)
}

func TestEstimate_LineOrder(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:        catalog.CategoryHome,
		VehicleName:     "2.5톤 트럭",
		Departure:       Leg{Floor: "5", Method: catalog.AccessLadder},
		Arrival:         Leg{Floor: "B1", Method: catalog.AccessSky, SkyHours: 2},
		AddMen:          1,
		Adjustment:      30000,
		IsStorage:       true,
		StorageDays:     35,
		StorageType:     catalog.StorageContainer,
		Electricity:     true,
		LongDistance:    true,
		LongDistanceKey: "수도권-충청",
		Waste:           true,
		WasteTons:       0.5,
		SpecialDays:     map[string]bool{"date_nohand": true},
		ViaPoint:        true,
		ViaPointAmount:  50000,
		VAT:             true,
	})

	var labels []string
	for _, line := range res.Lines {
		labels = append(labels, line.Label)
	}

	assert.Equal(t, []string{
		"기본 운임",
		"출발지 사다리차",
		"도착지 스카이",
		"인원 추가",
		"추가 할증",
		"보관료",
		"보관 전기료",
		"장거리 운임",
		"폐기물 처리",
		"날짜 할증",
		"경유지 추가",
		"부가세(10%)",
	}, labels)

	assert.Zero(t, res.Total%100)
}

func TestEstimate_SpecialDaysOrderedByCatalog(t *testing.T) {
	e := NewEngine(catalog.Default())

	res := e.Estimate(Request{
		Category:    catalog.CategoryHome,
		VehicleName: "1톤 트럭",
		SpecialDays: map[string]bool{
			"date_holiday": true,
			"date_nohand":  true,
		},
	})

	days := findLines(res, "날짜 할증")
	assert.Len(t, days, 2)
	assert.Equal(t, "손없는날", days[0].Note)
	assert.Equal(t, "공휴일", days[1].Note)
}
