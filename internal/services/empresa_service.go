package services

import (
	"context"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// EmpresaService contém a lógica de negócio para empresas conveniadas
type EmpresaService struct {
	empresaRepo repositories.EmpresaRepository
	logger      ports.Logger
}

// NewEmpresaService cria um novo EmpresaService
func NewEmpresaService(empresaRepo repositories.EmpresaRepository, logger ports.Logger) *EmpresaService {
	return &EmpresaService{empresaRepo: empresaRepo, logger: logger}
}

// CreateEmpresaInput representa os dados para criar uma empresa
type CreateEmpresaInput struct {
	RazaoSocial  string
	NomeFantasia string
	CNPJ         string
	Telefone     string
}

// CreateEmpresa cria uma nova empresa; o CNPJ é único
func (s *EmpresaService) CreateEmpresa(ctx context.Context, input CreateEmpresaInput) (*entities.Empresa, error) {
	existing, err := s.empresaRepo.FindByCNPJ(ctx, input.CNPJ)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrCNPJJaExiste
	}

	empresa := &entities.Empresa{
		RazaoSocial:  input.RazaoSocial,
		NomeFantasia: input.NomeFantasia,
		CNPJ:         input.CNPJ,
		Telefone:     input.Telefone,
	}

	if err := s.empresaRepo.Create(ctx, empresa); err != nil {
		return nil, err
	}

	s.logger.Info("empresa criada", "empresa_id", empresa.ID, "cnpj", empresa.CNPJ)
	return empresa, nil
}

// GetEmpresa busca uma empresa por ID
func (s *EmpresaService) GetEmpresa(ctx context.Context, id uint) (*entities.Empresa, error) {
	empresa, err := s.empresaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, errors.ErrEmpresaNaoEncontrada
	}
	return empresa, nil
}

// UpdateEmpresa atualiza os dados de uma empresa existente
func (s *EmpresaService) UpdateEmpresa(ctx context.Context, id uint, input CreateEmpresaInput) (*entities.Empresa, error) {
	empresa, err := s.GetEmpresa(ctx, id)
	if err != nil {
		return nil, err
	}

	// CNPJ alterado não pode colidir com outra empresa
	if input.CNPJ != empresa.CNPJ {
		existing, err := s.empresaRepo.FindByCNPJ(ctx, input.CNPJ)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.ErrCNPJJaExiste
		}
	}

	empresa.RazaoSocial = input.RazaoSocial
	empresa.NomeFantasia = input.NomeFantasia
	empresa.CNPJ = input.CNPJ
	empresa.Telefone = input.Telefone

	if err := s.empresaRepo.Update(ctx, empresa); err != nil {
		return nil, err
	}
	return empresa, nil
}

// DeleteEmpresa remove uma empresa
func (s *EmpresaService) DeleteEmpresa(ctx context.Context, id uint) error {
	if _, err := s.GetEmpresa(ctx, id); err != nil {
		return err
	}
	return s.empresaRepo.Delete(ctx, id)
}

// ListEmpresas lista empresas com filtros
func (s *EmpresaService) ListEmpresas(ctx context.Context, filters repositories.EmpresaFilters) ([]*entities.Empresa, error) {
	return s.empresaRepo.List(ctx, filters)
}
