package estimate

import (
	"fmt"
	"math"

	"moving-quote/internal/catalog"
)

type CostLine struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
	Note   string `json:"note"`
}

type Result struct {
	Total     int        `json:"total"`
	Lines     []CostLine `json:"lines"`
	Personnel Personnel  `json:"personnel"`
}

// Engine — чистый расчёт сметы переезда поверх неизменяемого каталога.
// Состояния нет, один Engine можно дёргать из любого числа горутин.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Estimate считает смету целиком: строки идут в фиксированном порядке
// (базовый тариф, подъёмники, персонал, корректировки, хранение, допзатраты),
// потом НДС либо карточная наценка, итог округляется вверх до 100 вон.
// Фатальные случаи (нет машины, нет тарифа) возвращают нулевую смету с одной
// строкой ошибки, частичный расчёт не отдаём.
func (e *Engine) Estimate(req Request) Result {
	if req.VehicleName == "" {
		return errorResult("차량이 선택되지 않았습니다")
	}

	vehicle, ok := e.catalog.Vehicle(req.VehicleName)
	if !ok {
		return errorResult("선택한 차량의 요금 정보가 없습니다")
	}
	price, ok := e.catalog.Price(req.Category, req.VehicleName)
	if !ok {
		return errorResult("선택한 차량의 요금 정보가 없습니다")
	}

	baseWomen := 0
	if req.Category == catalog.CategoryHome {
		baseWomen = price.BaseWomen
	}

	var lines []CostLine

	// 1. базовый тариф; при переезде с хранением машина едет дважды
	base := price.BasePrice
	baseNote := vehicle.Name
	if req.IsStorage {
		base *= 2
		baseNote += ", 보관이사 왕복"
	}
	lines = append(lines, CostLine{Label: "기본 운임", Amount: base, Note: baseNote})

	// 2. подъёмники по этажам: сначала отправление, затем прибытие
	lines = append(lines, e.legLines(req.Departure, vehicle, "출발지")...)
	lines = append(lines, e.legLines(req.Arrival, vehicle, "도착지")...)

	// 3. персонал
	personnel, personnelLines := e.resolvePersonnel(price, baseWomen, req)
	lines = append(lines, personnelLines...)

	// 4. ручная корректировка со знаком
	if req.Adjustment > 0 {
		lines = append(lines, CostLine{Label: "추가 할증", Amount: req.Adjustment})
	} else if req.Adjustment < 0 {
		lines = append(lines, CostLine{Label: "할인", Amount: req.Adjustment})
	}

	// 5. ручные надбавки за подъёмник, каждая за своим флажком
	if req.ManualLadderDeparture && req.ManualLadderDepartureAmount > 0 {
		lines = append(lines, CostLine{Label: "출발지 사다리차 추가 할증", Amount: req.ManualLadderDepartureAmount})
	}
	if req.ManualLadderArrival && req.ManualLadderArrivalAmount > 0 {
		lines = append(lines, CostLine{Label: "도착지 사다리차 추가 할증", Amount: req.ManualLadderArrivalAmount})
	}

	// 6. хранение: строка пишется всегда, даже при нулевом тарифе
	if req.IsStorage && req.StorageDays > 0 {
		rate := e.catalog.StorageRates[req.StorageType]
		lines = append(lines, CostLine{
			Label:  "보관료",
			Amount: rate * req.StorageDays,
			Note:   fmt.Sprintf("%d일, %s", req.StorageDays, storageLabel(req.StorageType)),
		})

		if req.Electricity {
			lines = append(lines, CostLine{
				Label:  "보관 전기료",
				Amount: e.electricityFee(req.StorageDays),
				Note:   fmt.Sprintf("%d일", req.StorageDays),
			})
		}
	}

	// 7. дальний маршрут
	if req.LongDistance {
		if tariff := e.catalog.LongDistance[req.LongDistanceKey]; tariff > 0 {
			lines = append(lines, CostLine{Label: "장거리 운임", Amount: tariff, Note: req.LongDistanceKey})
		}
	}

	// 8. вывоз мусора
	if req.Waste && req.WasteTons > 0 {
		cost := int(math.Ceil(float64(e.catalog.WastePerTon) * req.WasteTons))
		if cost > 0 {
			lines = append(lines, CostLine{
				Label:  "폐기물 처리",
				Amount: cost,
				Note:   fmt.Sprintf("%.1f톤", req.WasteTons),
			})
		}
	}

	// 9. надбавки за дату, в порядке каталога
	for _, day := range e.catalog.SpecialDays {
		if req.SpecialDays[day.FormKey] && day.Price > 0 {
			lines = append(lines, CostLine{Label: "날짜 할증", Amount: day.Price, Note: day.Label})
		}
	}

	// 10. заезд по пути
	if req.ViaPoint && req.ViaPointAmount > 0 {
		lines = append(lines, CostLine{Label: "경유지 추가", Amount: req.ViaPointAmount})
	}

	subtotal := 0
	for _, line := range lines {
		subtotal += line.Amount
	}

	// НДС и карточная наценка взаимоисключающие, карта уже включает НДС
	if req.Card {
		fee := ceilPercent(subtotal, e.catalog.CardPercent)
		lines = append(lines, CostLine{Label: "카드결제(부가세+수수료 포함)", Amount: fee})
		subtotal += fee
	} else if req.VAT {
		vat := ceilPercent(subtotal, e.catalog.VATPercent)
		lines = append(lines, CostLine{Label: "부가세(10%)", Amount: vat})
		subtotal += vat
	}

	return Result{
		Total:     ceilTo100(subtotal),
		Lines:     lines,
		Personnel: personnel,
	}
}

func (e *Engine) legLines(leg Leg, vehicle catalog.Vehicle, prefix string) []CostLine {
	switch leg.Method {
	case catalog.AccessLadder:
		floor := ParseFloor(leg.Floor)
		if floor < 2 {
			return nil
		}
		cost, note := e.ladderCost(floor, vehicle)
		if note == "" {
			note = fmt.Sprintf("%d층", floor)
		}
		return []CostLine{{Label: prefix + " 사다리차", Amount: cost, Note: note}}

	case catalog.AccessSky:
		hours := leg.SkyHours
		if hours <= 0 {
			hours = 1
		}
		return []CostLine{{
			Label:  prefix + " 스카이",
			Amount: e.skyCost(hours),
			Note:   fmt.Sprintf("%d시간", hours),
		}}
	}

	return nil
}

// electricityFee — плата за электричество при хранении. Порядок веток
// сознательно повторяет действующий тариф: от 30 дней — поблочно, меньше 30 —
// фикс. TODO: ветка с посуточным тарифом недостижима, пока заданы обе первые;
// уточнить у оператора, нужна ли она вообще.
func (e *Engine) electricityFee(days int) int {
	switch {
	case days >= 30:
		blocks := (days + 29) / 30
		return e.catalog.Electricity.Per30Days * blocks
	case days < 30:
		return e.catalog.Electricity.FlatUnder30
	default:
		return e.catalog.Electricity.PerDay * days
	}
}

func storageLabel(t catalog.StorageType) string {
	switch t {
	case catalog.StorageContainer:
		return "컨테이너 보관"
	case catalog.StorageIndoor:
		return "실내 보관"
	}
	return string(t)
}

func errorResult(msg string) Result {
	return Result{
		Total: 0,
		Lines: []CostLine{{Label: "오류", Amount: 0, Note: msg}},
	}
}

func ceilPercent(amount int, percent float64) int {
	return int(math.Ceil(float64(amount) * percent / 100))
}

// ceilTo100 округляет итог вверх до 100 вон; отрицательный итог обнуляем.
func ceilTo100(amount int) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Ceil(float64(amount)/100)) * 100
}
