package upload

import "errors"

var (
	ErrEmptyFile       = errors.New("upload: file is empty")
	ErrFileTooLarge    = errors.New("upload: file exceeds size limit")
	ErrUnsupportedType = errors.New("upload: unsupported content type")
	ErrNotFound        = errors.New("upload: file not found")
	ErrUploadFailed    = errors.New("upload: upload failed")
	ErrDeleteFailed    = errors.New("upload: delete failed")
	ErrInvalidConfig   = errors.New("upload: invalid storage config")
)
