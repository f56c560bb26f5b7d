package entities

import "time"

// Tipos de lançamento financeiro
const (
	LancamentoReceita = "RECEITA"
	LancamentoDespesa = "DESPESA"
)

// Lancamento representa um movimento no livro financeiro do hotel
type Lancamento struct {
	ID        uint
	Descricao string
	Categoria string
	Tipo      string // RECEITA ou DESPESA
	Valor     float64
	Data      time.Time
	CreatedAt time.Time
}

// ResumoFinanceiro agrega lançamentos de um período
type ResumoFinanceiro struct {
	Inicio        time.Time
	Fim           time.Time
	TotalReceitas float64
	TotalDespesas float64
	Saldo         float64
	PorCategoria  []TotalCategoria
}

// TotalCategoria é o total de um período agrupado por categoria
type TotalCategoria struct {
	Categoria string
	Tipo      string
	Total     float64
}
