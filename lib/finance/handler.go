package financehandler

import (
	"bytes"
	"fmt"
	"hrms-backend/config"
	"hrms-backend/db"
	pdfexport "hrms-backend/lib/export/pdf"
	xlsexport "hrms-backend/lib/export/xls"
	financestore "hrms-backend/lib/finance/store"
	notificationhandler "hrms-backend/lib/notification"
	"hrms-backend/lib/smtp"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	financeapimodels "hrms-backend/models/api/finance"
	dbmodels "hrms-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Save(data financeapimodels.FinanceData) (id string, err error)
	MarkPaid(id string) error
	ListByPeriod(filter financeapimodels.PeriodFilter) (list []financeapimodels.FinanceView, err error)
	ListMy(userID string) (list []financeapimodels.FinanceView, err error)
	Payslip(userID, id string) (fileName string, file []byte, err error)
	SendPayslip(id string) error
	ExportPeriod(period string) (fileName string, file *bytes.Buffer, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: financestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store financestore.Provider
}

// Save создает запись периода или обновляет существующую.
// Уникальность пары сотрудник-период обеспечивает индекс
func (i impl) Save(data financeapimodels.FinanceData) (id string, err error) {
	logger := log.
		WithField("user_id", data.UserID).
		WithField("period", data.Period)
	err = data.Validate()
	if err != nil {
		return "", err
	}
	exist, err := i.store.GetByUserAndPeriod(data.UserID, data.Period)
	if err != nil {
		return "", err
	}
	if exist != nil {
		if exist.Paid {
			return "", errors.New("выплаченный период менять нельзя")
		}
		err = i.store.Update(exist.ID, map[string]interface{}{
			"basic":      data.Basic,
			"allowances": data.Allowances,
			"deductions": data.Deductions,
			"comment":    data.Comment,
		})
		if err != nil {
			logger.WithError(err).Error("ошибка обновления расчетного периода")
			return "", err
		}
		return exist.ID, nil
	}
	rec := dbmodels.Finance{
		UserID:     data.UserID,
		Period:     data.Period,
		Basic:      data.Basic,
		Allowances: data.Allowances,
		Deductions: data.Deductions,
		Comment:    data.Comment,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания расчетного периода")
		return "", err
	}
	logger.WithField("rec_id", id).Info("расчетный период создан")
	return id, nil
}

func (i impl) MarkPaid(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("расчетный период не найден")
	}
	if rec.Paid {
		return errors.New("период уже выплачен")
	}
	err = i.store.Update(id, map[string]interface{}{
		"paid":    true,
		"paid_at": time.Now(),
	})
	if err != nil {
		logger.WithError(err).Error("ошибка отметки выплаты")
		return err
	}
	logger.Info("период отмечен выплаченным")
	notificationhandler.Instance.Notify(rec.UserID, models.NotificationPayslipPublished,
		fmt.Sprintf("Выплата за период %v проведена, расчетный листок доступен", rec.Period), "")
	return nil
}

func (i impl) ListByPeriod(filter financeapimodels.PeriodFilter) (list []financeapimodels.FinanceView, err error) {
	err = filter.Validate()
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListByPeriod(filter.Period)
	if err != nil {
		return nil, err
	}
	list = make([]financeapimodels.FinanceView, 0, len(recList))
	for _, rec := range recList {
		if filter.UserID != "" && rec.UserID != filter.UserID {
			continue
		}
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) ListMy(userID string) (list []financeapimodels.FinanceView, err error) {
	recList, err := i.store.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list = make([]financeapimodels.FinanceView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// Payslip - расчетный листок в pdf. Сотрудник получает только свой листок,
// для сотрудника с пустым userID проверка владения не выполняется
func (i impl) Payslip(userID, id string) (fileName string, file []byte, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, errors.New("расчетный период не найден")
	}
	if userID != "" && rec.UserID != userID {
		return "", nil, errors.New("расчетный листок принадлежит другому сотруднику")
	}
	file, err = pdfexport.GeneratePayslip(config.Conf.Company.Name, *rec)
	if err != nil {
		log.WithError(err).
			WithField("rec_id", id).
			Error("ошибка формирования расчетного листка")
		return "", nil, errors.Wrap(err, "ошибка формирования расчетного листка")
	}
	fileName = fmt.Sprintf("payslip_%v.pdf", rec.Period)
	return fileName, file, nil
}

// SendPayslip отправляет расчетный листок сотруднику на почту вложением
func (i impl) SendPayslip(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("расчетный период не найден")
	}
	if rec.User == nil || rec.User.Email == "" {
		return errors.New("у сотрудника не указана почта")
	}
	fileName, file, err := i.Payslip("", id)
	if err != nil {
		return err
	}
	message := fmt.Sprintf("Расчетный листок за период %v во вложении", rec.Period)
	err = smtp.Instance.SendEMailWithAttachment(config.Conf.Smtp.EmailSendVerification, rec.User.Email,
		message, "Расчетный листок", fileName, file)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки расчетного листка")
		return errors.Wrap(err, "ошибка отправки расчетного листка")
	}
	logger.Info("расчетный листок отправлен")
	return nil
}

func (i impl) ExportPeriod(period string) (fileName string, file *bytes.Buffer, err error) {
	filter := financeapimodels.PeriodFilter{Period: period}
	err = filter.Validate()
	if err != nil {
		return "", nil, err
	}
	recList, err := i.store.ListByPeriod(period)
	if err != nil {
		return "", nil, err
	}
	file, err = xlsexport.Instance.ExportFinance(recList)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка формирования ведомости")
	}
	fileName = fmt.Sprintf("finance_%v.xlsx", period)
	return fileName, file, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("расчетный период не найден")
	}
	if rec.Paid {
		return errors.New("выплаченный период удалить нельзя")
	}
	return i.store.Delete(id)
}
