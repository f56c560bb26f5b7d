package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// QuartoRepository implementa repositories.QuartoRepository
type QuartoRepository struct {
	db *gorm.DB
}

// NewQuartoRepository cria um novo QuartoRepository
func NewQuartoRepository(db *gorm.DB) repositories.QuartoRepository {
	return &QuartoRepository{db: db}
}

func (r *QuartoRepository) Create(ctx context.Context, quarto *entities.Quarto) error {
	model := r.toModel(quarto)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	quarto.ID = model.ID
	return nil
}

func (r *QuartoRepository) FindByID(ctx context.Context, id uint) (*entities.Quarto, error) {
	var model QuartoModel

	db := getDB(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *QuartoRepository) FindByNumero(ctx context.Context, numero string) (*entities.Quarto, error) {
	var model QuartoModel

	db := getDB(ctx, r.db)
	if err := db.Where("numero = ?", numero).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *QuartoRepository) Update(ctx context.Context, quarto *entities.Quarto) error {
	db := getDB(ctx, r.db)
	return db.Save(r.toModel(quarto)).Error
}

func (r *QuartoRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.Delete(&QuartoModel{}, id).Error
}

func (r *QuartoRepository) List(ctx context.Context, filters repositories.QuartoFilters) ([]*entities.Quarto, error) {
	var models []*QuartoModel

	db := getDB(ctx, r.db)
	query := db.Model(&QuartoModel{})

	if filters.Situacao != nil {
		query = query.Where("situacao = ?", *filters.Situacao)
	}
	if filters.Categoria != nil {
		query = query.Where("categoria = ?", *filters.Categoria)
	}

	page, pageSize := clampPagination(filters.Page, filters.PageSize)
	query = query.Order("numero").Limit(pageSize).Offset((page - 1) * pageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	quartos := make([]*entities.Quarto, 0, len(models))
	for _, model := range models {
		quartos = append(quartos, r.toEntity(model))
	}
	return quartos, nil
}

// Conversores
func (r *QuartoRepository) toModel(quarto *entities.Quarto) *QuartoModel {
	return &QuartoModel{
		ID:          quarto.ID,
		Numero:      quarto.Numero,
		Andar:       quarto.Andar,
		Categoria:   quarto.Categoria,
		ValorDiaria: quarto.ValorDiaria,
		Situacao:    quarto.Situacao,
	}
}

func (r *QuartoRepository) toEntity(model *QuartoModel) *entities.Quarto {
	return &entities.Quarto{
		ID:          model.ID,
		Numero:      model.Numero,
		Andar:       model.Andar,
		Categoria:   model.Categoria,
		ValorDiaria: model.ValorDiaria,
		Situacao:    model.Situacao,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}
