package httperr

import "errors"

// Códigos de negócio usados pelas regras de cadastro e contabilidade
const (
	CodeMissingRequiredField = "missing_required_field"
	CodeInvalidCPF           = "invalid_cpf"
	CodeUnderageGuest        = "underage_guest"
	CodeInvalidDate          = "invalid_date"
	CodeInvalidDateRange     = "invalid_date_range"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
