package analysis

import (
	"net/http"

	"github.com/Abraxas-365/jobtrack/pkg/errx"
)

var analysisErrors = errx.NewRegistry("ANALYSIS")

var (
	ErrInvalidModeCode           = analysisErrors.Register("INVALID_MODE", errx.TypeValidation, http.StatusBadRequest, "Unknown analysis type")
	ErrMissingFileCode           = analysisErrors.Register("MISSING_FILE", errx.TypeValidation, http.StatusBadRequest, "Resume file is required")
	ErrMissingJobDescriptionCode = analysisErrors.Register("MISSING_JOB_DESCRIPTION", errx.TypeValidation, http.StatusBadRequest, "Job description is required")
	ErrFileTooLargeCode          = analysisErrors.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusRequestEntityTooLarge, "Resume file exceeds the maximum allowed size")
	ErrUnsupportedFileTypeCode   = analysisErrors.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unsupported file type. Please upload a PDF, DOCX or TXT file")
	ErrCorruptDocumentCode       = analysisErrors.Register("CORRUPT_DOCUMENT", errx.TypeValidation, http.StatusBadRequest, "The uploaded file could not be read")
	ErrNoExtractableTextCode     = analysisErrors.Register("NO_EXTRACTABLE_TEXT", errx.TypeValidation, http.StatusBadRequest, "No text could be extracted from the uploaded file")
	ErrOracleConfigCode          = analysisErrors.Register("ORACLE_CONFIG", errx.TypeInternal, http.StatusInternalServerError, "AI service is not configured correctly")
	ErrOracleQuotaCode           = analysisErrors.Register("ORACLE_QUOTA", errx.TypeRateLimit, http.StatusTooManyRequests, "AI service quota exceeded, please try again later")
	ErrOracleSafetyBlockedCode   = analysisErrors.Register("ORACLE_SAFETY_BLOCKED", errx.TypeBusiness, http.StatusBadRequest, "The AI service declined to analyze this document")
	ErrOracleTransportCode       = analysisErrors.Register("ORACLE_TRANSPORT", errx.TypeExternal, http.StatusBadGateway, "AI service is unreachable, please try again later")
	ErrOracleFailedCode          = analysisErrors.Register("ORACLE_FAILED", errx.TypeExternal, http.StatusBadGateway, "AI analysis failed")
	ErrBadModelOutputCode        = analysisErrors.Register("BAD_MODEL_OUTPUT", errx.TypeInternal, http.StatusInternalServerError, "AI service returned an unusable response")
	ErrSpoolFailedCode           = analysisErrors.Register("SPOOL_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store the uploaded file for processing")
)

func ErrInvalidMode(mode string) *errx.Error {
	return analysisErrors.New(ErrInvalidModeCode).WithDetail("analysis_type", mode)
}

func ErrMissingFile() *errx.Error {
	return analysisErrors.New(ErrMissingFileCode)
}

func ErrMissingJobDescription() *errx.Error {
	return analysisErrors.New(ErrMissingJobDescriptionCode)
}

func ErrFileTooLarge(size, limit int64) *errx.Error {
	return analysisErrors.New(ErrFileTooLargeCode).WithDetails(map[string]any{
		"size_bytes": size,
		"max_bytes":  limit,
	})
}

func ErrUnsupportedFileType(ext string) *errx.Error {
	return analysisErrors.New(ErrUnsupportedFileTypeCode).WithDetail("extension", ext)
}

func ErrCorruptDocument(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrCorruptDocumentCode, cause)
}

func ErrNoExtractableText() *errx.Error {
	return analysisErrors.New(ErrNoExtractableTextCode)
}

func ErrOracleConfig(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrOracleConfigCode, cause)
}

func ErrOracleQuota(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrOracleQuotaCode, cause)
}

func ErrOracleSafetyBlocked(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrOracleSafetyBlockedCode, cause)
}

func ErrOracleTransport(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrOracleTransportCode, cause)
}

func ErrOracleFailed(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrOracleFailedCode, cause)
}

func ErrBadModelOutput(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrBadModelOutputCode, cause)
}

func ErrSpoolFailed(cause error) *errx.Error {
	return analysisErrors.NewWithCause(ErrSpoolFailedCode, cause)
}
