package services

import (
	"context"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// VeiculoService contém a lógica de negócio para veículos
type VeiculoService struct {
	veiculoRepo repositories.VeiculoRepository
	pessoaRepo  repositories.PessoaRepository
	logger      ports.Logger
}

// NewVeiculoService cria um novo VeiculoService
func NewVeiculoService(
	veiculoRepo repositories.VeiculoRepository,
	pessoaRepo repositories.PessoaRepository,
	logger ports.Logger,
) *VeiculoService {
	return &VeiculoService{veiculoRepo: veiculoRepo, pessoaRepo: pessoaRepo, logger: logger}
}

// CreateVeiculoInput representa os dados para registrar um veículo
type CreateVeiculoInput struct {
	Placa    string
	Modelo   string
	Cor      string
	PessoaID uint
}

// CreateVeiculo registra um veículo vinculado a uma pessoa do cadastro
func (s *VeiculoService) CreateVeiculo(ctx context.Context, input CreateVeiculoInput) (*entities.Veiculo, error) {
	pessoa, err := s.pessoaRepo.FindByID(ctx, input.PessoaID)
	if err != nil {
		return nil, err
	}
	if pessoa == nil {
		return nil, errors.ErrPessoaNaoEncontrada
	}

	veiculo := &entities.Veiculo{
		Placa:    input.Placa,
		Modelo:   input.Modelo,
		Cor:      input.Cor,
		PessoaID: input.PessoaID,
	}

	if err := s.veiculoRepo.Create(ctx, veiculo); err != nil {
		return nil, err
	}

	s.logger.Info("veículo registrado", "veiculo_id", veiculo.ID, "placa", veiculo.Placa)
	return veiculo, nil
}

// GetVeiculo busca um veículo por ID
func (s *VeiculoService) GetVeiculo(ctx context.Context, id uint) (*entities.Veiculo, error) {
	veiculo, err := s.veiculoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if veiculo == nil {
		return nil, errors.ErrVeiculoNaoEncontrado
	}
	return veiculo, nil
}

// UpdateVeiculo atualiza os dados de um veículo existente
func (s *VeiculoService) UpdateVeiculo(ctx context.Context, id uint, input CreateVeiculoInput) (*entities.Veiculo, error) {
	veiculo, err := s.GetVeiculo(ctx, id)
	if err != nil {
		return nil, err
	}

	veiculo.Placa = input.Placa
	veiculo.Modelo = input.Modelo
	veiculo.Cor = input.Cor
	veiculo.PessoaID = input.PessoaID

	if err := s.veiculoRepo.Update(ctx, veiculo); err != nil {
		return nil, err
	}
	return veiculo, nil
}

// DeleteVeiculo remove um veículo
func (s *VeiculoService) DeleteVeiculo(ctx context.Context, id uint) error {
	if _, err := s.GetVeiculo(ctx, id); err != nil {
		return err
	}
	return s.veiculoRepo.Delete(ctx, id)
}

// ListVeiculos lista veículos com filtros
func (s *VeiculoService) ListVeiculos(ctx context.Context, filters repositories.VeiculoFilters) ([]*entities.Veiculo, error) {
	return s.veiculoRepo.List(ctx, filters)
}
