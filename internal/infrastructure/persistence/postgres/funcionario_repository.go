package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// FuncionarioRepository implementa repositories.FuncionarioRepository
type FuncionarioRepository struct {
	db *gorm.DB
}

// NewFuncionarioRepository cria um novo FuncionarioRepository
func NewFuncionarioRepository(db *gorm.DB) repositories.FuncionarioRepository {
	return &FuncionarioRepository{db: db}
}

// funcionarioRow carrega o funcionário com nome e email desnormalizados
// do cadastro de pessoas
type funcionarioRow struct {
	ID           uint
	ContaID      uint
	PessoaID     uint
	CargoID      *uint
	DataAdmissao time.Time
	CreatedAt    int64
	UpdatedAt    int64
	NomeCompleto string
	Email        string
}

const funcionarioSelect = `f.id, f.conta_id, f.pessoa_id, f.cargo_id, f.data_admissao,
	f.created_at, f.updated_at, p.nome AS nome_completo, p.email`

func (r *FuncionarioRepository) FindByContaID(ctx context.Context, contaID uint) (*entities.Funcionario, error) {
	var row funcionarioRow

	db := getDB(ctx, r.db)
	result := db.Table("funcionarios f").
		Select(funcionarioSelect).
		Joins("JOIN pessoas p ON p.id = f.pessoa_id").
		Where("f.conta_id = ?", contaID).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.toEntity(&row), nil
}

func (r *FuncionarioRepository) FindByID(ctx context.Context, id uint) (*entities.Funcionario, error) {
	var row funcionarioRow

	db := getDB(ctx, r.db)
	result := db.Table("funcionarios f").
		Select(funcionarioSelect).
		Joins("JOIN pessoas p ON p.id = f.pessoa_id").
		Where("f.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.toEntity(&row), nil
}

func (r *FuncionarioRepository) List(ctx context.Context, filters repositories.FuncionarioFilters) ([]*entities.Funcionario, error) {
	var rows []funcionarioRow

	db := getDB(ctx, r.db)
	query := db.Table("funcionarios f").
		Select(funcionarioSelect).
		Joins("JOIN pessoas p ON p.id = f.pessoa_id")

	if filters.CargoID != nil {
		query = query.Where("f.cargo_id = ?", *filters.CargoID)
	}

	page, pageSize := clampPagination(filters.Page, filters.PageSize)
	query = query.Order("p.nome").Limit(pageSize).Offset((page - 1) * pageSize)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	funcionarios := make([]*entities.Funcionario, 0, len(rows))
	for i := range rows {
		funcionarios = append(funcionarios, r.toEntity(&rows[i]))
	}
	return funcionarios, nil
}

func (r *FuncionarioRepository) toEntity(row *funcionarioRow) *entities.Funcionario {
	return &entities.Funcionario{
		ID:           row.ID,
		ContaID:      row.ContaID,
		PessoaID:     row.PessoaID,
		CargoID:      row.CargoID,
		NomeCompleto: row.NomeCompleto,
		Email:        row.Email,
		DataAdmissao: row.DataAdmissao,
		CreatedAt:    time.Unix(row.CreatedAt, 0),
		UpdatedAt:    time.Unix(row.UpdatedAt, 0),
	}
}
