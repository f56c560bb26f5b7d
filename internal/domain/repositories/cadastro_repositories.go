package repositories

import (
	"context"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
)

// PessoaRepository define a persistência de pessoas
type PessoaRepository interface {
	Create(ctx context.Context, pessoa *entities.Pessoa) error
	FindByID(ctx context.Context, id uint) (*entities.Pessoa, error)
	Update(ctx context.Context, pessoa *entities.Pessoa) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters PessoaFilters) ([]*entities.Pessoa, error)
}

// QuartoRepository define a persistência de quartos
type QuartoRepository interface {
	Create(ctx context.Context, quarto *entities.Quarto) error
	FindByID(ctx context.Context, id uint) (*entities.Quarto, error)
	FindByNumero(ctx context.Context, numero string) (*entities.Quarto, error)
	Update(ctx context.Context, quarto *entities.Quarto) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters QuartoFilters) ([]*entities.Quarto, error)
}

// EmpresaRepository define a persistência de empresas conveniadas
type EmpresaRepository interface {
	Create(ctx context.Context, empresa *entities.Empresa) error
	FindByID(ctx context.Context, id uint) (*entities.Empresa, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*entities.Empresa, error)
	Update(ctx context.Context, empresa *entities.Empresa) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters EmpresaFilters) ([]*entities.Empresa, error)
}

// VeiculoRepository define a persistência de veículos
type VeiculoRepository interface {
	Create(ctx context.Context, veiculo *entities.Veiculo) error
	FindByID(ctx context.Context, id uint) (*entities.Veiculo, error)
	Update(ctx context.Context, veiculo *entities.Veiculo) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters VeiculoFilters) ([]*entities.Veiculo, error)
}

// LancamentoRepository define a leitura do livro financeiro
type LancamentoRepository interface {
	Create(ctx context.Context, lancamento *entities.Lancamento) error
	ResumoFinanceiro(ctx context.Context, filters PeriodoFilters) (*entities.ResumoFinanceiro, error)
}

// PessoaFilters contém filtros para listagem de pessoas
type PessoaFilters struct {
	Nome     string // busca parcial, case-insensitive
	Page     int
	PageSize int
}

// QuartoFilters contém filtros para listagem de quartos
type QuartoFilters struct {
	Situacao  *string
	Categoria *string
	Page      int
	PageSize  int
}

// EmpresaFilters contém filtros para listagem de empresas
type EmpresaFilters struct {
	RazaoSocial string // busca parcial
	Page        int
	PageSize    int
}

// VeiculoFilters contém filtros para listagem de veículos
type VeiculoFilters struct {
	Placa    string // busca parcial
	PessoaID *uint
	Page     int
	PageSize int
}

// PeriodoFilters delimita um intervalo de datas (inclusivo)
type PeriodoFilters struct {
	Inicio string // formato 2006-01-02
	Fim    string
}
