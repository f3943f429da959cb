package httperr

import "errors"

// BusinessError é uma falha de regra de negócio corrigível pelo usuário
// (horário ocupado, estado inválido). Falhas de infraestrutura seguem
// como erros comuns e nunca viram um ACCEPT silencioso.
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
