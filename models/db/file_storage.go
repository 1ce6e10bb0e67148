package dbmodels

import filesapimodels "hrms-backend/models/api/files"

type FileStorage struct {
	BaseModel
	Name        string
	UserID      string `gorm:"type:varchar(36);index"`
	Type        FileType
	ObjectKey   string `gorm:"type:varchar(255)"`
	ContentType string
	Size        int64
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		UserID:      f.UserID,
		Type:        string(f.Type),
		ContentType: f.ContentType,
		Size:        f.Size,
	}
}

type FileType string

const (
	UserPassportDoc    FileType = "user_passport"
	UserContractDoc    FileType = "user_contract"
	UserProfilePhoto   FileType = "user_profile_photo"
	ResignationHandoff FileType = "resignation_handoff"
	UserOtherDoc       FileType = "user_other"
)

func (f FileType) IsValid() bool {
	switch f {
	case UserPassportDoc, UserContractDoc, UserProfilePhoto, ResignationHandoff, UserOtherDoc:
		return true
	}
	return false
}

type UploadFileInfo struct {
	UserID      string
	FileName    string
	FileType    FileType
	ContentType string
}
