package entities

import "time"

// Situações possíveis de um quarto
const (
	QuartoLivre      = "LIVRE"
	QuartoOcupado    = "OCUPADO"
	QuartoManutencao = "MANUTENCAO"
)

// Quarto representa uma unidade habitacional do hotel
type Quarto struct {
	ID          uint
	Numero      string // único
	Andar       int
	Categoria   string
	ValorDiaria float64
	Situacao    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
