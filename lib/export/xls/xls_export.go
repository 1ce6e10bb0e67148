package xlsexport

import (
	"bytes"
	"fmt"
	dbmodels "hrms-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportAttendance(list []dbmodels.Attendance) (*bytes.Buffer, error)
	ExportFinance(list []dbmodels.Finance) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var attendanceHeaders = []string{"Сотрудник", "Дата", "Приход", "Уход", "Перерывы", "Отработано", "Статус"}

func (i impl) ExportAttendance(list []dbmodels.Attendance) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, attendanceHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeAttendanceData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Посещаемость")
	return f.WriteToBuffer()
}

func writeAttendanceData(f *excelize.File, sheet string, list []dbmodels.Attendance, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(attendanceHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Сотрудник"
		col := 1
		if item.User != nil {
			if err := writeColumn(f, sheet, col, row, item.User.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Дата"
		col++
		if err := writeColumn(f, sheet, col, row, item.Date); err != nil {
			return row, err
		}

		// "Приход"
		col++
		if item.CheckIn != nil {
			if err := writeColumn(f, sheet, col, row, item.CheckIn.Format("15:04")); err != nil {
				return row, err
			}
		}

		// "Уход"
		col++
		if item.CheckOut != nil {
			if err := writeColumn(f, sheet, col, row, item.CheckOut.Format("15:04")); err != nil {
				return row, err
			}
		}

		// "Перерывы"
		col++
		if err := writeColumn(f, sheet, col, row, len(item.Breaks)); err != nil {
			return row, err
		}

		// "Отработано"
		col++
		worked := item.WorkedDuration()
		workedStr := fmt.Sprintf("%02d:%02d", int(worked.Hours()), int(worked.Minutes())%60)
		if err := writeColumn(f, sheet, col, row, workedStr); err != nil {
			return row, err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}
	}
	return row, nil
}

var financeHeaders = []string{"Сотрудник", "Табельный номер", "Период", "Оклад", "Надбавки", "Удержания", "К выплате", "Выплачено"}

func (i impl) ExportFinance(list []dbmodels.Finance) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, financeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeFinanceData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Расчетная ведомость")
	return f.WriteToBuffer()
}

func writeFinanceData(f *excelize.File, sheet string, list []dbmodels.Finance, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(financeHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Сотрудник"
		col := 1
		if item.User != nil {
			if err := writeColumn(f, sheet, col, row, item.User.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Табельный номер"
		col++
		if item.User != nil {
			if err := writeColumn(f, sheet, col, row, item.User.EmployeeNumber); err != nil {
				return row, err
			}
		}

		// "Период"
		col++
		if err := writeColumn(f, sheet, col, row, item.Period); err != nil {
			return row, err
		}

		// "Оклад"
		col++
		if err := writeColumn(f, sheet, col, row, item.Basic); err != nil {
			return row, err
		}

		// "Надбавки"
		col++
		if err := writeColumn(f, sheet, col, row, item.Allowances); err != nil {
			return row, err
		}

		// "Удержания"
		col++
		if err := writeColumn(f, sheet, col, row, item.Deductions); err != nil {
			return row, err
		}

		// "К выплате"
		col++
		if err := writeColumn(f, sheet, col, row, item.NetAmount()); err != nil {
			return row, err
		}

		// "Выплачено"
		col++
		paid := "Нет"
		if item.Paid {
			paid = "Да"
		}
		if err := writeColumn(f, sheet, col, row, paid); err != nil {
			return row, err
		}
	}
	return row, nil
}
