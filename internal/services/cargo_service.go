package services

import (
	"context"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// CargoService administra cargos e seus vínculos com telas e permissões.
// Conceder e revogar são idempotentes nas duas direções; a verificação
// de existência e a operação de vínculo rodam na mesma transação.
type CargoService struct {
	cargoRepo repositories.CargoRepository
	uow       ports.UnitOfWork
	logger    ports.Logger
}

// NewCargoService cria um novo CargoService
func NewCargoService(cargoRepo repositories.CargoRepository, uow ports.UnitOfWork, logger ports.Logger) *CargoService {
	return &CargoService{cargoRepo: cargoRepo, uow: uow, logger: logger}
}

// GetCargo retorna a árvore montada de um cargo
func (s *CargoService) GetCargo(ctx context.Context, id uint) (*entities.Cargo, error) {
	cargo, err := s.cargoRepo.AssembleTree(ctx, id)
	if err != nil {
		return nil, err
	}
	if cargo == nil {
		return nil, errors.ErrCargoNaoEncontrado
	}
	return cargo, nil
}

// ListCargos retorna todas as árvores de cargo montadas
func (s *CargoService) ListCargos(ctx context.Context) ([]*entities.Cargo, error) {
	return s.cargoRepo.List(ctx)
}

// GrantTela concede acesso a uma tela; re-conceder é no-op
func (s *CargoService) GrantTela(ctx context.Context, cargoID, telaID uint) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.GetCargo(txCtx, cargoID); err != nil {
			return err
		}
		return s.cargoRepo.GrantTela(txCtx, cargoID, telaID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("tela concedida", "cargo_id", cargoID, "tela_id", telaID)
	return nil
}

// RevokeTela revoga o acesso a uma tela; revogar vínculo inexistente é no-op
func (s *CargoService) RevokeTela(ctx context.Context, cargoID, telaID uint) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.GetCargo(txCtx, cargoID); err != nil {
			return err
		}
		return s.cargoRepo.RevokeTela(txCtx, cargoID, telaID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("tela revogada", "cargo_id", cargoID, "tela_id", telaID)
	return nil
}

// GrantPermissao concede uma permissão; re-conceder é no-op
func (s *CargoService) GrantPermissao(ctx context.Context, cargoID, permissaoID uint) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.GetCargo(txCtx, cargoID); err != nil {
			return err
		}
		return s.cargoRepo.GrantPermissao(txCtx, cargoID, permissaoID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("permissão concedida", "cargo_id", cargoID, "permissao_id", permissaoID)
	return nil
}

// RevokePermissao revoga uma permissão; revogar vínculo inexistente é no-op
func (s *CargoService) RevokePermissao(ctx context.Context, cargoID, permissaoID uint) error {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.GetCargo(txCtx, cargoID); err != nil {
			return err
		}
		return s.cargoRepo.RevokePermissao(txCtx, cargoID, permissaoID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("permissão revogada", "cargo_id", cargoID, "permissao_id", permissaoID)
	return nil
}
