package filestorage

import (
	"bytes"
	"context"
	"hrms-backend/config"
	"hrms-backend/db"
	filesdbstorage "hrms-backend/lib/file-storage/store"
	filesapimodels "hrms-backend/models/api/files"
	dbmodels "hrms-backend/models/db"
	s3client "hrms-backend/s3"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, info dbmodels.UploadFileInfo, file []byte) (id string, err error)
	Get(ctx context.Context, userID, fileID string) (rec *dbmodels.FileStorage, content []byte, err error)
	List(userID string, fileType dbmodels.FileType) (list []filesapimodels.FileView, err error)
	Delete(ctx context.Context, userID, fileID string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	store filesdbstorage.Provider
}

func (i impl) Upload(ctx context.Context, info dbmodels.UploadFileInfo, file []byte) (id string, err error) {
	logger := log.WithField("user_id", info.UserID).
		WithField("file_name", info.FileName)
	if !info.FileType.IsValid() {
		return "", errors.New("неизвестный тип документа")
	}
	objectKey := uuid.NewString()
	_, err = s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: info.ContentType})
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла в S3")
		return "", errors.Wrap(err, "ошибка загрузки файла")
	}
	rec := dbmodels.FileStorage{
		Name:        info.FileName,
		UserID:      info.UserID,
		Type:        info.FileType,
		ObjectKey:   objectKey,
		ContentType: info.ContentType,
		Size:        int64(len(file)),
	}
	id, err = i.store.SaveFile(rec)
	if err != nil {
		return "", err
	}
	logger.WithField("rec_id", id).Info("документ загружен")
	return id, nil
}

func (i impl) Get(ctx context.Context, userID, fileID string) (rec *dbmodels.FileStorage, content []byte, err error) {
	rec, err = i.store.GetByID(userID, fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errors.New("документ не найден")
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка получения файла")
	}
	defer object.Close()
	content, err = io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "ошибка чтения файла")
	}
	return rec, content, nil
}

func (i impl) List(userID string, fileType dbmodels.FileType) (list []filesapimodels.FileView, err error) {
	recList, err := i.store.ListByUser(userID, fileType)
	if err != nil {
		return nil, err
	}
	list = make([]filesapimodels.FileView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Delete(ctx context.Context, userID, fileID string) error {
	rec, err := i.store.GetByID(userID, fileID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("документ не найден")
	}
	err = s3client.Client.RemoveObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла")
	}
	return i.store.Delete(userID, fileID)
}
