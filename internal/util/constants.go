package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeImage = "image/"
	MimePDF   = "application/pdf"
)

// AllowedAttachmentTypes are the MIME prefixes accepted as review attachments.
var AllowedAttachmentTypes = []string{MimeImage, MimePDF}

// MaxAttachmentSize caps a single review attachment, in bytes.
const MaxAttachmentSize = 10 << 20
