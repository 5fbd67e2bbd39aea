package validators

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/CorrelAid/chart_submission_portal/models"
)

// AllowedExtensions lists the data file types the webhook understands.
var AllowedExtensions = []string{".csv", ".xlsx", ".json"}

var ErrFileTooLarge = errors.New("file size exceeds the maximum limit")

// ValidateProcessFormData reads the optional file into memory. Every field
// is optional; only a present file is checked.
func ValidateProcessFormData(formData models.FormData, max_size int) (models.ProcessedFormData, error) {
	processedFormData := models.ProcessedFormData{
		Name:  strings.TrimSpace(formData.Name),
		Notes: formData.Notes,
	}
	if formData.File == nil {
		return processedFormData, nil
	}

	data, err := validateProcessFile(formData.File, max_size)
	if err != nil {
		return models.ProcessedFormData{}, err
	}
	processedFormData.FileName = filepath.Base(formData.File.Filename)
	processedFormData.FileContent = data
	return processedFormData, nil
}

func validateProcessFile(file *multipart.FileHeader, max_size int) ([]byte, error) {
	if err := ValidateExtension(file.Filename); err != nil {
		return nil, err
	}

	if file.Size > int64(max_size) {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, int64(max_size)+1))
	if err != nil {
		return nil, err
	}
	if len(data) > max_size {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// ValidateExtension rejects file names outside AllowedExtensions.
func ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("unsupported file type %q, expected one of %s", ext, strings.Join(AllowedExtensions, ", "))
}
