package entity

import "time"

// Company representa uma organização/tenant do sistema. Toda entidade
// carrega o CompanyID dela; nenhuma consulta cruza esse limite.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
