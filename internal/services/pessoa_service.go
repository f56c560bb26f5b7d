package services

import (
	"context"
	"time"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// PessoaService contém a lógica de negócio para pessoas
type PessoaService struct {
	pessoaRepo repositories.PessoaRepository
	notifier   ports.Notifier
	logger     ports.Logger
}

// NewPessoaService cria um novo PessoaService
func NewPessoaService(pessoaRepo repositories.PessoaRepository, notifier ports.Notifier, logger ports.Logger) *PessoaService {
	return &PessoaService{pessoaRepo: pessoaRepo, notifier: notifier, logger: logger}
}

// CreatePessoaInput representa os dados para criar uma pessoa
type CreatePessoaInput struct {
	Nome      string
	Email     string
	Documento string
	Telefone  string
}

// CreatePessoa cria uma nova pessoa no cadastro
func (s *PessoaService) CreatePessoa(ctx context.Context, input CreatePessoaInput) (*entities.Pessoa, error) {
	pessoa := &entities.Pessoa{
		Nome:      input.Nome,
		Email:     input.Email,
		Documento: input.Documento,
		Telefone:  input.Telefone,
	}

	if err := s.pessoaRepo.Create(ctx, pessoa); err != nil {
		return nil, err
	}

	s.logger.Info("pessoa criada", "pessoa_id", pessoa.ID, "nome", pessoa.Nome)
	if s.notifier != nil {
		s.notifier.Publish(ports.Evento{
			Tipo:     "CADASTRO",
			Mensagem: "Pessoa cadastrada: " + pessoa.Nome,
			Quando:   time.Now(),
		})
	}
	return pessoa, nil
}

// GetPessoa busca uma pessoa por ID
func (s *PessoaService) GetPessoa(ctx context.Context, id uint) (*entities.Pessoa, error) {
	pessoa, err := s.pessoaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pessoa == nil {
		return nil, errors.ErrPessoaNaoEncontrada
	}
	return pessoa, nil
}

// UpdatePessoa atualiza os dados de uma pessoa existente
func (s *PessoaService) UpdatePessoa(ctx context.Context, id uint, input CreatePessoaInput) (*entities.Pessoa, error) {
	pessoa, err := s.GetPessoa(ctx, id)
	if err != nil {
		return nil, err
	}

	pessoa.Nome = input.Nome
	pessoa.Email = input.Email
	pessoa.Documento = input.Documento
	pessoa.Telefone = input.Telefone

	if err := s.pessoaRepo.Update(ctx, pessoa); err != nil {
		return nil, err
	}
	return pessoa, nil
}

// DeletePessoa remove uma pessoa do cadastro
func (s *PessoaService) DeletePessoa(ctx context.Context, id uint) error {
	if _, err := s.GetPessoa(ctx, id); err != nil {
		return err
	}
	return s.pessoaRepo.Delete(ctx, id)
}

// ListPessoas lista pessoas com filtros
func (s *PessoaService) ListPessoas(ctx context.Context, filters repositories.PessoaFilters) ([]*entities.Pessoa, error) {
	return s.pessoaRepo.List(ctx, filters)
}
