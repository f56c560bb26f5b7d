package entities

import "time"

// Empresa representa uma pessoa jurídica conveniada
// (empresas que hospedam funcionários com faturamento direto)
type Empresa struct {
	ID           uint
	RazaoSocial  string
	NomeFantasia string
	CNPJ         string // único
	Telefone     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
