package authhandler

import (
	"fmt"
	"hrms-backend/config"
	"hrms-backend/db"
	emailverify "hrms-backend/lib/email-verify"
	usersstore "hrms-backend/lib/users/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	initchecker "hrms-backend/lib/utils/init-checker"
	"hrms-backend/models"
	authapimodels "hrms-backend/models/api/auth"
	dbmodels "hrms-backend/models/db"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Signup(data authapimodels.SignupRequest) error
	Login(data authapimodels.LoginRequest) (*authapimodels.JWTResponse, error)
	Refresh(refreshToken string) (*authapimodels.JWTResponse, error)
	VerifyEmail(code string) error
	ResetPassword(email string) error
	ApplyPassword(data authapimodels.ApplyPasswordRequest) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"usersStore", instance.usersStore,
	)
	Instance = instance
}

type impl struct {
	usersStore usersstore.Provider
}

// Signup - самостоятельная регистрация сотрудника.
// Учетная запись не активна, пока ее не одобрит администратор или HR
func (i impl) Signup(data authapimodels.SignupRequest) error {
	logger := log.WithField("email", data.Email)
	err := data.Validate()
	if err != nil {
		return err
	}
	rec := dbmodels.User{
		Email:       strings.ToLower(strings.TrimSpace(data.Email)),
		Password:    authutils.GetMD5Hash(data.Password),
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		Role:        models.UserRoleEmployee,
		Status:      models.UserWorkingStatus,
		IsApproved:  false,
		JoinDate:    time.Now(),
	}
	_, err = i.usersStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка регистрации сотрудника")
		return err
	}
	logger.Info("сотрудник зарегистрирован, ожидает одобрения")
	if config.Conf.Smtp.EmailSendVerification != "" {
		err = emailverify.Instance.SendVerifyCode(rec.Email)
		if err != nil {
			logger.WithError(err).Error("ошибка отправки кода подтверждения почты")
		}
	}
	return nil
}

func (i impl) Login(data authapimodels.LoginRequest) (*authapimodels.JWTResponse, error) {
	logger := log.WithField("email", data.Email)
	err := data.Validate()
	if err != nil {
		return nil, err
	}
	user, err := i.usersStore.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка получения данных пользователя")
		return nil, errors.New("ошибка входа")
	}
	if user == nil || user.Password != authutils.GetMD5Hash(data.Password) {
		return nil, errors.New("неверная почта или пароль")
	}
	if !user.IsApproved {
		return nil, errors.New("учетная запись еще не одобрена")
	}
	if user.Status == models.UserResignedStatus {
		return nil, errors.New("учетная запись деактивирована")
	}
	resp, err := i.buildTokens(user)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования токена")
		return nil, errors.New("ошибка входа")
	}
	err = i.usersStore.Update(user.ID, map[string]interface{}{
		"last_login": time.Now(),
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления времени входа")
	}
	return resp, nil
}

func (i impl) Refresh(refreshToken string) (*authapimodels.JWTResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("некорректный refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("некорректный refresh token")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return nil, errors.New("ошибка получения данных пользователя")
	}
	if user == nil || !user.IsApproved || user.Status == models.UserResignedStatus {
		return nil, errors.New("учетная запись деактивирована")
	}
	return i.buildTokens(user)
}

func (i impl) buildTokens(user *dbmodels.User) (*authapimodels.JWTResponse, error) {
	accessToken, err := authutils.GetToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return nil, err
	}
	return &authapimodels.JWTResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) VerifyEmail(code string) error {
	return emailverify.Instance.VerifyCode(code)
}

// ResetPassword отправляет код сброса. Для неизвестной почты отвечаем успехом,
// наличие учетной записи наружу не раскрывается
func (i impl) ResetPassword(email string) error {
	logger := log.WithField("email", email)
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка получения данных пользователя")
		return errors.New("ошибка сброса пароля")
	}
	if user == nil {
		return nil
	}
	err = emailverify.Instance.SendResetCode(user.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки кода сброса пароля")
		return errors.New("ошибка сброса пароля")
	}
	return nil
}

func (i impl) ApplyPassword(data authapimodels.ApplyPasswordRequest) error {
	err := data.Validate()
	if err != nil {
		return err
	}
	email, err := emailverify.Instance.ApplyResetCode(data.Code)
	if err != nil {
		return err
	}
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		return errors.New("ошибка получения данных пользователя")
	}
	if user == nil {
		return errors.New("пользователь не найден")
	}
	return i.usersStore.Update(user.ID, map[string]interface{}{
		"password": authutils.GetMD5Hash(data.Password),
	})
}
