package generate_excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"moving-quote/internal/service/estimate"
)

type QuoteCalculator interface {
	Estimate(req estimate.Request) estimate.Result
}

// QuoteExcelService рендерит рассчитанную смету в xlsx для отправки клиенту.
type QuoteExcelService struct {
	calc QuoteCalculator
}

func NewQuoteExcelService(calc QuoteCalculator) *QuoteExcelService {
	return &QuoteExcelService{calc: calc}
}

func (g *QuoteExcelService) GenerateQuoteExcel(form map[string]any) ([]byte, error) {
	req := estimate.BuildRequest(form)
	res := g.calc.Estimate(req)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "견적서"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{
		NumFmt: 3, // #,##0
	})

	headers := []string{"구분", "금액(원)", "비고"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)

	// строки сметы в порядке расчёта
	row := 2
	for _, line := range res.Lines {
		f.SetCellValue(sheet, cellName(1, row), line.Label)
		f.SetCellValue(sheet, cellName(2, row), line.Amount)
		f.SetCellValue(sheet, cellName(3, row), line.Note)
		row++
	}

	f.SetCellValue(sheet, cellName(1, row), "총 금액")
	f.SetCellValue(sheet, cellName(2, row), res.Total)
	f.SetCellStyle(sheet, cellName(1, row), cellName(3, row), totalStyle)
	f.SetCellStyle(sheet, "B2", cellName(2, row), moneyStyle)

	// блок персонала под сметой
	row += 2
	f.SetCellValue(sheet, cellName(1, row), "작업 인원")
	f.SetCellStyle(sheet, cellName(1, row), cellName(1, row), headerStyle)
	row++
	f.SetCellValue(sheet, cellName(1, row), "남")
	f.SetCellValue(sheet, cellName(2, row), res.Personnel.FinalMen)
	f.SetCellValue(sheet, cellName(3, row), personnelNote(res.Personnel.BaseMen, res.Personnel.AddedMen, res.Personnel.RemovedMen))
	row++
	f.SetCellValue(sheet, cellName(1, row), "여")
	f.SetCellValue(sheet, cellName(2, row), res.Personnel.FinalWomen)
	f.SetCellValue(sheet, cellName(3, row), personnelNote(res.Personnel.BaseWomen, res.Personnel.AddedWomen, res.Personnel.RemovedWomen))

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 14)
	f.SetColWidth(sheet, "C", "C", 36)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write quote sheet: %w", err)
	}

	return buf.Bytes(), nil
}

func personnelNote(base, added, removed int) string {
	return fmt.Sprintf("기본 %d명, 추가 %d명, 제외 %d명", base, added, removed)
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
