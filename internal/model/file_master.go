package model

// FileMaster describes an uploaded attachment. The bytes live in the
// configured storage provider; URL is what clients fetch.
// swagger:model
type FileMaster struct {
	UUIDBase
	UploaderID   uint   `gorm:"index;not null" json:"uploaderId"`
	OriginalName string `gorm:"size:255;not null" json:"originalName"`
	StoredName   string `gorm:"size:255;not null" json:"-"`
	URL          string `gorm:"size:500;not null" json:"url"`
	ContentType  string `gorm:"size:100" json:"contentType"`
	Size         int64  `json:"size"`
}

func (FileMaster) TableName() string {
	return "file_masters"
}
