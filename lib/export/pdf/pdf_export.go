package pdfexport

import (
	"bytes"
	"fmt"
	dbmodels "hrms-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GeneratePayslip - расчетный листок сотрудника за период
func GeneratePayslip(companyName string, rec dbmodels.Finance) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GeneratePayslip panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Расчетный листок за период %v", rec.Period), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if rec.User != nil {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("Сотрудник: %v", rec.User.GetFullName()), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("Табельный номер: %v", rec.User.EmployeeNumber), "", 1, "L", false, 0, "")
		if rec.User.JobTitle != "" {
			pdf.CellFormat(0, 7, fmt.Sprintf("Должность: %v", rec.User.JobTitle), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	writeAmountRow(pdf, "Оклад", rec.Basic, false)
	writeAmountRow(pdf, "Надбавки", rec.Allowances, false)
	writeAmountRow(pdf, "Удержания", -rec.Deductions, false)
	writeAmountRow(pdf, "К выплате", rec.NetAmount(), true)

	if rec.Comment != "" {
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Комментарий: %v", rec.Comment), "", "L", false)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAmountRow(pdf *fpdf.Fpdf, name string, amount float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Arial", style, 11)
	pdf.CellFormat(120, 8, name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
}
