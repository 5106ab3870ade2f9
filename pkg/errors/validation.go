package errors

import (
	"strings"
	"unicode"
)

const (
	maxTemplateLength   = 4096
	maxDateFormatLength = 256
	maxPathLength       = 500
)

// ValidateTemplate checks a tooltip template received from outside the
// process. Placeholders are not validated: unknown ones are shown verbatim.
//
// Rules:
//   - Maximum length of 4096 bytes
//   - No control characters other than tab and newline
func ValidateTemplate(tmpl string) error {
	if len(tmpl) > maxTemplateLength {
		return New(ErrCodeInvalidTemplate, "template too long (max %d characters)", maxTemplateLength)
	}
	for _, r := range tmpl {
		if r == '\t' || r == '\n' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTemplate, "template contains invalid control characters")
		}
	}
	return nil
}

// ValidateDateFormat checks a strftime spec. An empty spec means "not
// configured" and is valid.
func ValidateDateFormat(spec string) error {
	if len(spec) > maxDateFormatLength {
		return New(ErrCodeInvalidDateFormat, "date format too long (max %d characters)", maxDateFormatLength)
	}
	for _, r := range spec {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDateFormat, "date format contains invalid control characters")
		}
	}
	if strings.HasSuffix(spec, "%") && !strings.HasSuffix(spec, "%%") {
		return New(ErrCodeInvalidDateFormat, "date format ends with a dangling %%")
	}
	return nil
}

// ValidatePath validates a configuration file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
