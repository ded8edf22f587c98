package dto

// Actor identidade extraída da sessão; todo caso de uso protegido a recebe
// e aplica as regras de papel/posse a partir dela.
type Actor struct {
	UserID    string
	CompanyID string
	Role      string
	Name      string
}

// IsAdmin informa se o ator tem papel de administrador.
func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse corpo mínimo de confirmação (compatível com o cliente web).
type SuccessResponse struct {
	Success bool `json:"success"`
}
