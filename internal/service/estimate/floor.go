package estimate

import (
	"strconv"
	"strings"
	"unicode"

	"moving-quote/internal/catalog"
)

// ParseFloor разбирает строку этажа из формы в число. "B3" — подвал, -3.
// Иначе берём цифры и одиночный ведущий минус; мусор и строки с несколькими
// дефисами деградируют до цифровой части или до 0.
func ParseFloor(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if s[0] == 'B' || s[0] == 'b' {
		n := digitsOf(s[1:])
		if n == 0 {
			return 0
		}
		return -n
	}

	neg := strings.HasPrefix(s, "-") && strings.Count(s, "-") == 1
	n := digitsOf(s)
	if neg {
		return -n
	}
	return n
}

func digitsOf(s string) int {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// ladderCost — цена лестничного подъёмника по этажу и тоннажу машины.
// Ниже 2 этажа подъёмник не нужен. Нулевая или отсутствующая ячейка уводит
// на ступень по умолчанию; если этаж не попал ни в один диапазон, цена 0
// с пометкой.
func (e *Engine) ladderCost(floor int, vehicle catalog.Vehicle) (int, string) {
	if floor < 2 {
		return 0, ""
	}

	rangeKey, ok := e.catalog.FloorRangeKey(floor)
	if !ok {
		return 0, "해당 층수의 사다리차 요금이 없습니다"
	}

	tons := vehicle.WeightCapacityKg / 1000
	bucket := e.catalog.BucketFor(tons)

	price := e.catalog.FloorPrices[rangeKey][bucket]
	if price == 0 && bucket != e.catalog.DefaultBucket {
		price = e.catalog.FloorPrices[rangeKey][e.catalog.DefaultBucket]
	}
	if price == 0 {
		return 0, "해당 톤수의 사다리차 요금이 없습니다"
	}

	return price, ""
}

// skyCost — стоимость вышки: базовая цена за первый час плюс почасовая доплата.
// Часы меньше 1 приводятся к 1.
func (e *Engine) skyCost(hours int) int {
	if hours <= 0 {
		hours = 1
	}
	return e.catalog.SkyBasePrice + e.catalog.SkyHourRate*(hours-1)
}
