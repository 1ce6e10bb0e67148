package usershandler

import (
	emailverify "hrms-backend/lib/email-verify"
	"hrms-backend/lib/smtp"
	usersstore "hrms-backend/lib/users/store"
	employeeapimodels "hrms-backend/models/api/employee"
	dbmodels "hrms-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

type usersStoreStub struct {
	usersstore.Provider
	rec    *dbmodels.User
	updMap map[string]interface{}
}

func (s *usersStoreStub) GetByID(id string) (*dbmodels.User, error) {
	return s.rec, nil
}

func (s *usersStoreStub) Update(id string, updMap map[string]interface{}) error {
	s.updMap = updMap
	return nil
}

type smtpStub struct {
	configured bool
}

func (s smtpStub) IsConfigured() bool {
	return s.configured
}

func (s smtpStub) SendEMail(from, to, message, subject string) error {
	return nil
}

func (s smtpStub) SendEMailWithAttachment(from, to, message, subject, fileName string, file []byte) error {
	return nil
}

type verifyStub struct {
	emailverify.Provider
	sentTo []string
}

func (s *verifyStub) SendVerifyCode(email string) error {
	s.sentTo = append(s.sentTo, email)
	return nil
}

func TestUpdateEmailChange(t *testing.T) {
	oldSmtp, oldVerify := smtp.Instance, emailverify.Instance
	defer func() {
		smtp.Instance, emailverify.Instance = oldSmtp, oldVerify
	}()

	newRec := func() *dbmodels.User {
		return &dbmodels.User{Email: "old@company.ru"}
	}

	t.Run(`при настроенном smtp почта ставится на подтверждение и код уходит на новый адрес`, func(t *testing.T) {
		store := &usersStoreStub{rec: newRec()}
		verify := &verifyStub{}
		smtp.Instance = smtpStub{configured: true}
		emailverify.Instance = verify
		handler := impl{store: store}

		err := handler.Update("user-id", employeeapimodels.UserData{
			FirstName: "Иван",
			LastName:  "Иванов",
			Email:     "new@company.ru",
		})
		require.Nil(t, err)
		require.Equal(t, "new@company.ru", store.updMap["new_email"])
		require.NotContains(t, store.updMap, "email")
		require.Equal(t, []string{"new@company.ru"}, verify.sentTo)
	})

	t.Run(`без smtp почта применяется сразу без подтверждения`, func(t *testing.T) {
		store := &usersStoreStub{rec: newRec()}
		verify := &verifyStub{}
		smtp.Instance = smtpStub{configured: false}
		emailverify.Instance = verify
		handler := impl{store: store}

		err := handler.Update("user-id", employeeapimodels.UserData{
			FirstName: "Иван",
			LastName:  "Иванов",
			Email:     "new@company.ru",
		})
		require.Nil(t, err)
		require.Equal(t, "new@company.ru", store.updMap["email"])
		require.Equal(t, true, store.updMap["is_email_verified"])
		require.NotContains(t, store.updMap, "new_email")
		require.Empty(t, verify.sentTo)
	})

	t.Run(`прежняя почта не запускает подтверждение`, func(t *testing.T) {
		store := &usersStoreStub{rec: newRec()}
		verify := &verifyStub{}
		smtp.Instance = smtpStub{configured: true}
		emailverify.Instance = verify
		handler := impl{store: store}

		err := handler.Update("user-id", employeeapimodels.UserData{
			FirstName: "Иван",
			LastName:  "Иванов",
			Email:     "old@company.ru",
		})
		require.Nil(t, err)
		require.NotContains(t, store.updMap, "new_email")
		require.NotContains(t, store.updMap, "email")
		require.Empty(t, verify.sentTo)
	})
}
