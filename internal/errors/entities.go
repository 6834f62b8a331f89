package errors

var (
	ErrCompanyNotFound = &DomainError{
		Code:    "COMPANY_NOT_FOUND",
		Message: "company not found",
		Kind:    KindNotFound,
	}
	ErrAlertNotFound = &DomainError{
		Code:    "ALERT_NOT_FOUND",
		Message: "alert not found",
		Kind:    KindNotFound,
	}
	ErrReportNotFound = &DomainError{
		Code:    "REPORT_NOT_FOUND",
		Message: "report not found",
		Kind:    KindNotFound,
	}
)
