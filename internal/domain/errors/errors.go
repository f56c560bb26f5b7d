package errors

import "errors"

// Erros de autenticação e autorização
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrCredenciaisInvalidas = errors.New("error.invalid_credentials")
	ErrContaNaoEncontrada   = errors.New("error.account_not_found")
	ErrContaSemFuncionario  = errors.New("error.account_without_employee")
	ErrTokenExpirado        = errors.New("error.token_expired")
	ErrAssinaturaInvalida   = errors.New("error.invalid_signature")
	ErrTokenMalformado      = errors.New("error.malformed_token")
	ErrNaoAutenticado       = errors.New("error.unauthorized")
	ErrTelaNaoPermitida     = errors.New("error.forbidden_screen")
)

// Erros do cadastro
// Nota: Estes são códigos de erro (message IDs para i18n).
var (
	ErrPessoaNaoEncontrada      = errors.New("error.person_not_found")
	ErrQuartoNaoEncontrado      = errors.New("error.room_not_found")
	ErrNumeroQuartoJaExiste     = errors.New("error.room_number_conflict")
	ErrEmpresaNaoEncontrada     = errors.New("error.company_not_found")
	ErrCNPJJaExiste             = errors.New("error.cnpj_conflict")
	ErrVeiculoNaoEncontrado     = errors.New("error.vehicle_not_found")
	ErrFuncionarioNaoEncontrado = errors.New("error.employee_not_found")
	ErrCargoNaoEncontrado       = errors.New("error.role_not_found")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
