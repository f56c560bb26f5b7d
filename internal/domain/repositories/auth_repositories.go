package repositories

import (
	"context"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
)

// ContaRepository define a persistência de contas de acesso
type ContaRepository interface {
	// FindByUsername retorna (nil, nil) quando a conta não existe
	FindByUsername(ctx context.Context, username string) (*entities.Conta, error)

	// Verify compara a senha candidata com o digest armazenado.
	// Falha fechada: retorna false para conta inexistente, senha errada
	// ou conta bloqueada — indistinguíveis para o chamador (evita
	// enumeração de usernames)
	Verify(ctx context.Context, username, senha string) (bool, error)
}

// FuncionarioRepository define a persistência de funcionários
type FuncionarioRepository interface {
	// FindByContaID retorna (nil, nil) quando a conta não tem funcionário vinculado
	FindByContaID(ctx context.Context, contaID uint) (*entities.Funcionario, error)
	FindByID(ctx context.Context, id uint) (*entities.Funcionario, error)
	List(ctx context.Context, filters FuncionarioFilters) ([]*entities.Funcionario, error)
}

// CargoRepository define a leitura e manutenção da árvore de cargos.
// As operações de vínculo são idempotentes: re-conceder é no-op,
// revogar vínculo inexistente é no-op.
type CargoRepository interface {
	// AssembleTree reconstrói a árvore do cargo a partir das tabelas de
	// vínculo. Retorna (nil, nil) quando o cargo não existe
	AssembleTree(ctx context.Context, cargoID uint) (*entities.Cargo, error)
	List(ctx context.Context) ([]*entities.Cargo, error)
	GrantTela(ctx context.Context, cargoID, telaID uint) error
	RevokeTela(ctx context.Context, cargoID, telaID uint) error
	GrantPermissao(ctx context.Context, cargoID, permissaoID uint) error
	RevokePermissao(ctx context.Context, cargoID, permissaoID uint) error
}

// FuncionarioFilters contém filtros para listagem de funcionários
type FuncionarioFilters struct {
	CargoID  *uint
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 20, max: 100)
}
