package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// PessoaRepository implementa repositories.PessoaRepository
type PessoaRepository struct {
	db *gorm.DB
}

// NewPessoaRepository cria um novo PessoaRepository
func NewPessoaRepository(db *gorm.DB) repositories.PessoaRepository {
	return &PessoaRepository{db: db}
}

func (r *PessoaRepository) Create(ctx context.Context, pessoa *entities.Pessoa) error {
	model := r.toModel(pessoa)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	pessoa.ID = model.ID
	return nil
}

func (r *PessoaRepository) FindByID(ctx context.Context, id uint) (*entities.Pessoa, error) {
	var model PessoaModel

	db := getDB(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PessoaRepository) Update(ctx context.Context, pessoa *entities.Pessoa) error {
	db := getDB(ctx, r.db)
	return db.Save(r.toModel(pessoa)).Error
}

func (r *PessoaRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.Delete(&PessoaModel{}, id).Error
}

func (r *PessoaRepository) List(ctx context.Context, filters repositories.PessoaFilters) ([]*entities.Pessoa, error) {
	var models []*PessoaModel

	db := getDB(ctx, r.db)
	query := db.Model(&PessoaModel{})

	if filters.Nome != "" {
		query = query.Where("nome ILIKE ?", "%"+filters.Nome+"%")
	}

	page, pageSize := clampPagination(filters.Page, filters.PageSize)
	query = query.Order("nome").Limit(pageSize).Offset((page - 1) * pageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	pessoas := make([]*entities.Pessoa, 0, len(models))
	for _, model := range models {
		pessoas = append(pessoas, r.toEntity(model))
	}
	return pessoas, nil
}

// Conversores
func (r *PessoaRepository) toModel(pessoa *entities.Pessoa) *PessoaModel {
	return &PessoaModel{
		ID:        pessoa.ID,
		Nome:      pessoa.Nome,
		Email:     pessoa.Email,
		Documento: pessoa.Documento,
		Telefone:  pessoa.Telefone,
	}
}

func (r *PessoaRepository) toEntity(model *PessoaModel) *entities.Pessoa {
	return &entities.Pessoa{
		ID:        model.ID,
		Nome:      model.Nome,
		Email:     model.Email,
		Documento: model.Documento,
		Telefone:  model.Telefone,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
