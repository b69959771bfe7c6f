package validation

import (
	"fmt"
	"mime/multipart"

	"luxrealty_backend/pkg/utils/image"
)

// ValidateImage checks size and declared content type before any decoding
// happens.
func ValidateImage(file *multipart.FileHeader) error {
	if file.Size > image.MaxImageSize {
		return fmt.Errorf("file size too large, maximum is %d bytes", image.MaxImageSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !image.AllowedImageTypes[contentType] {
		return fmt.Errorf("invalid file type %q, allowed types are: jpeg, png, webp", contentType)
	}

	return nil
}

// ValidateBrochure accepts PDF uploads up to 20MB.
func ValidateBrochure(file *multipart.FileHeader) error {
	const maxBrochureSize = 20 * 1024 * 1024

	if file.Size > maxBrochureSize {
		return fmt.Errorf("file size too large, maximum is %d bytes", maxBrochureSize)
	}

	if contentType := file.Header.Get("Content-Type"); contentType != "application/pdf" {
		return fmt.Errorf("invalid file type %q, brochures must be PDF", contentType)
	}

	return nil
}
