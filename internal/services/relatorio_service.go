package services

import (
	"context"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// RelatorioService produz os relatórios financeiros (somente leitura)
type RelatorioService struct {
	lancamentoRepo repositories.LancamentoRepository
	logger         ports.Logger
}

// NewRelatorioService cria um novo RelatorioService
func NewRelatorioService(
	lancamentoRepo repositories.LancamentoRepository,
	logger ports.Logger,
) *RelatorioService {
	return &RelatorioService{lancamentoRepo: lancamentoRepo, logger: logger}
}

// ResumoFinanceiro agrega os lançamentos do período informado
func (s *RelatorioService) ResumoFinanceiro(ctx context.Context, filters repositories.PeriodoFilters) (*entities.ResumoFinanceiro, error) {
	return s.lancamentoRepo.ResumoFinanceiro(ctx, filters)
}
