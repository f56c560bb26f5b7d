package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// LancamentoRepository implementa repositories.LancamentoRepository
type LancamentoRepository struct {
	db *gorm.DB
}

// NewLancamentoRepository cria um novo LancamentoRepository
func NewLancamentoRepository(db *gorm.DB) repositories.LancamentoRepository {
	return &LancamentoRepository{db: db}
}

func (r *LancamentoRepository) Create(ctx context.Context, lancamento *entities.Lancamento) error {
	model := &LancamentoModel{
		ID:        lancamento.ID,
		Descricao: lancamento.Descricao,
		Categoria: lancamento.Categoria,
		Tipo:      lancamento.Tipo,
		Valor:     lancamento.Valor,
		Data:      lancamento.Data,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	lancamento.ID = model.ID
	return nil
}

// ResumoFinanceiro agrega os lançamentos do período por tipo e categoria.
// Leitura pura, sem isolamento além do read-committed padrão
func (r *LancamentoRepository) ResumoFinanceiro(ctx context.Context, filters repositories.PeriodoFilters) (*entities.ResumoFinanceiro, error) {
	inicio, err := time.Parse("2006-01-02", filters.Inicio)
	if err != nil {
		return nil, err
	}
	fim, err := time.Parse("2006-01-02", filters.Fim)
	if err != nil {
		return nil, err
	}

	type totalRow struct {
		Categoria string
		Tipo      string
		Total     float64
	}

	var rows []totalRow
	db := getDB(ctx, r.db)
	err = db.Model(&LancamentoModel{}).
		Select("categoria, tipo, SUM(valor) AS total").
		Where("data BETWEEN ? AND ?", inicio, fim).
		Group("categoria, tipo").
		Order("categoria").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	resumo := &entities.ResumoFinanceiro{
		Inicio:       inicio,
		Fim:          fim,
		PorCategoria: make([]entities.TotalCategoria, 0, len(rows)),
	}
	for _, row := range rows {
		resumo.PorCategoria = append(resumo.PorCategoria, entities.TotalCategoria{
			Categoria: row.Categoria,
			Tipo:      row.Tipo,
			Total:     row.Total,
		})
		switch row.Tipo {
		case entities.LancamentoReceita:
			resumo.TotalReceitas += row.Total
		case entities.LancamentoDespesa:
			resumo.TotalDespesas += row.Total
		}
	}
	resumo.Saldo = resumo.TotalReceitas - resumo.TotalDespesas

	return resumo, nil
}
