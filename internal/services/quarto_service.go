package services

import (
	"context"
	"time"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// QuartoService contém a lógica de negócio para quartos
type QuartoService struct {
	quartoRepo repositories.QuartoRepository
	notifier   ports.Notifier
	logger     ports.Logger
}

// NewQuartoService cria um novo QuartoService
func NewQuartoService(quartoRepo repositories.QuartoRepository, notifier ports.Notifier, logger ports.Logger) *QuartoService {
	return &QuartoService{quartoRepo: quartoRepo, notifier: notifier, logger: logger}
}

// CreateQuartoInput representa os dados para criar um quarto
type CreateQuartoInput struct {
	Numero      string
	Andar       int
	Categoria   string
	ValorDiaria float64
}

// CreateQuarto cria um novo quarto; o número é único no hotel
func (s *QuartoService) CreateQuarto(ctx context.Context, input CreateQuartoInput) (*entities.Quarto, error) {
	existing, err := s.quartoRepo.FindByNumero(ctx, input.Numero)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrNumeroQuartoJaExiste
	}

	quarto := &entities.Quarto{
		Numero:      input.Numero,
		Andar:       input.Andar,
		Categoria:   input.Categoria,
		ValorDiaria: input.ValorDiaria,
		Situacao:    entities.QuartoLivre,
	}

	if err := s.quartoRepo.Create(ctx, quarto); err != nil {
		return nil, err
	}

	s.logger.Info("quarto criado", "quarto_id", quarto.ID, "numero", quarto.Numero)
	if s.notifier != nil {
		s.notifier.Publish(ports.Evento{
			Tipo:     "CADASTRO",
			Mensagem: "Quarto cadastrado: " + quarto.Numero,
			Quando:   time.Now(),
		})
	}
	return quarto, nil
}

// GetQuarto busca um quarto por ID
func (s *QuartoService) GetQuarto(ctx context.Context, id uint) (*entities.Quarto, error) {
	quarto, err := s.quartoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quarto == nil {
		return nil, errors.ErrQuartoNaoEncontrado
	}
	return quarto, nil
}

// UpdateQuartoInput representa os dados para atualizar um quarto
type UpdateQuartoInput struct {
	Andar       *int
	Categoria   *string
	ValorDiaria *float64
	Situacao    *string
}

// UpdateQuarto atualiza os campos informados de um quarto
func (s *QuartoService) UpdateQuarto(ctx context.Context, id uint, input UpdateQuartoInput) (*entities.Quarto, error) {
	quarto, err := s.GetQuarto(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Andar != nil {
		quarto.Andar = *input.Andar
	}
	if input.Categoria != nil {
		quarto.Categoria = *input.Categoria
	}
	if input.ValorDiaria != nil {
		quarto.ValorDiaria = *input.ValorDiaria
	}
	if input.Situacao != nil {
		quarto.Situacao = *input.Situacao
	}

	if err := s.quartoRepo.Update(ctx, quarto); err != nil {
		return nil, err
	}
	return quarto, nil
}

// DeleteQuarto remove um quarto
func (s *QuartoService) DeleteQuarto(ctx context.Context, id uint) error {
	if _, err := s.GetQuarto(ctx, id); err != nil {
		return err
	}
	return s.quartoRepo.Delete(ctx, id)
}

// ListQuartos lista quartos com filtros
func (s *QuartoService) ListQuartos(ctx context.Context, filters repositories.QuartoFilters) ([]*entities.Quarto, error) {
	return s.quartoRepo.List(ctx, filters)
}
