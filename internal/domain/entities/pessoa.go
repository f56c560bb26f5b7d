package entities

import "time"

// Pessoa representa uma pessoa física no cadastro do hotel
// (hóspedes, responsáveis, funcionários)
type Pessoa struct {
	ID        uint
	Nome      string
	Email     string
	Documento string // CPF ou passaporte
	Telefone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
