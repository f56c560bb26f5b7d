package services

import (
	"context"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// FuncionarioService contém a lógica de leitura de funcionários,
// usada pelas telas de administração e provisionamento
type FuncionarioService struct {
	funcionarioRepo repositories.FuncionarioRepository
	logger          ports.Logger
}

// NewFuncionarioService cria um novo FuncionarioService
func NewFuncionarioService(
	funcionarioRepo repositories.FuncionarioRepository,
	logger ports.Logger,
) *FuncionarioService {
	return &FuncionarioService{funcionarioRepo: funcionarioRepo, logger: logger}
}

// GetFuncionario busca um funcionário por ID
func (s *FuncionarioService) GetFuncionario(ctx context.Context, id uint) (*entities.Funcionario, error) {
	funcionario, err := s.funcionarioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		return nil, errors.ErrFuncionarioNaoEncontrado
	}
	return funcionario, nil
}

// ListFuncionarios lista funcionários com filtros
func (s *FuncionarioService) ListFuncionarios(ctx context.Context, filters repositories.FuncionarioFilters) ([]*entities.Funcionario, error) {
	return s.funcionarioRepo.List(ctx, filters)
}
