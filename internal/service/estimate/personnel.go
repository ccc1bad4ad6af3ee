package estimate

import (
	"fmt"

	"moving-quote/internal/catalog"
)

type Personnel struct {
	BaseMen      int `json:"base_men"`
	BaseWomen    int `json:"base_women"`
	AddedMen     int `json:"added_men"`
	AddedWomen   int `json:"added_women"`
	RemovedMen   int `json:"removed_men"`
	RemovedWomen int `json:"removed_women"`
	FinalMen     int `json:"final_men"`
	FinalWomen   int `json:"final_women"`
}

// resolvePersonnel собирает итоговый экипаж из штатного состава машины и ручных
// правок. Снять можно не больше одного человека каждого пола, снятый человек
// даёт скидку в размере стоимости дополнительного работника.
func (e *Engine) resolvePersonnel(price catalog.VehiclePrice, baseWomen int, req Request) (Personnel, []CostLine) {
	p := Personnel{
		BaseMen:    price.BaseMen,
		BaseWomen:  baseWomen,
		AddedMen:   req.AddMen,
		AddedWomen: req.AddWomen,
	}

	var lines []CostLine

	if req.RemoveBaseWoman && p.BaseWomen > 0 {
		p.RemovedWomen = 1
		lines = append(lines, CostLine{
			Label:  "기본 인원 제외(여)",
			Amount: -e.catalog.AddWomanCost,
			Note:   "이모님 1명 제외",
		})
	}
	if req.RemoveBaseMan && p.BaseMen > 0 {
		p.RemovedMen = 1
		lines = append(lines, CostLine{
			Label:  "기본 인원 제외(남)",
			Amount: -e.catalog.AddManCost,
			Note:   "기사님 1명 제외",
		})
	}

	if p.AddedMen+p.AddedWomen > 0 {
		lines = append(lines, CostLine{
			Label:  "인원 추가",
			Amount: p.AddedMen*e.catalog.AddManCost + p.AddedWomen*e.catalog.AddWomanCost,
			Note:   fmt.Sprintf("남 %d명, 여 %d명", p.AddedMen, p.AddedWomen),
		})
	}

	p.FinalMen = clampZero(p.BaseMen - p.RemovedMen + p.AddedMen)
	p.FinalWomen = clampZero(p.BaseWomen - p.RemovedWomen + p.AddedWomen)

	return p, lines
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
