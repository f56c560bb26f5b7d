package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// VeiculoRepository implementa repositories.VeiculoRepository
type VeiculoRepository struct {
	db *gorm.DB
}

// NewVeiculoRepository cria um novo VeiculoRepository
func NewVeiculoRepository(db *gorm.DB) repositories.VeiculoRepository {
	return &VeiculoRepository{db: db}
}

func (r *VeiculoRepository) Create(ctx context.Context, veiculo *entities.Veiculo) error {
	model := r.toModel(veiculo)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	veiculo.ID = model.ID
	return nil
}

func (r *VeiculoRepository) FindByID(ctx context.Context, id uint) (*entities.Veiculo, error) {
	var model VeiculoModel

	db := getDB(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *VeiculoRepository) Update(ctx context.Context, veiculo *entities.Veiculo) error {
	db := getDB(ctx, r.db)
	return db.Save(r.toModel(veiculo)).Error
}

func (r *VeiculoRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.Delete(&VeiculoModel{}, id).Error
}

func (r *VeiculoRepository) List(ctx context.Context, filters repositories.VeiculoFilters) ([]*entities.Veiculo, error) {
	var models []*VeiculoModel

	db := getDB(ctx, r.db)
	query := db.Model(&VeiculoModel{})

	if filters.Placa != "" {
		query = query.Where("placa ILIKE ?", "%"+filters.Placa+"%")
	}
	if filters.PessoaID != nil {
		query = query.Where("pessoa_id = ?", *filters.PessoaID)
	}

	page, pageSize := clampPagination(filters.Page, filters.PageSize)
	query = query.Order("placa").Limit(pageSize).Offset((page - 1) * pageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	veiculos := make([]*entities.Veiculo, 0, len(models))
	for _, model := range models {
		veiculos = append(veiculos, r.toEntity(model))
	}
	return veiculos, nil
}

// Conversores
func (r *VeiculoRepository) toModel(veiculo *entities.Veiculo) *VeiculoModel {
	return &VeiculoModel{
		ID:       veiculo.ID,
		Placa:    veiculo.Placa,
		Modelo:   veiculo.Modelo,
		Cor:      veiculo.Cor,
		PessoaID: veiculo.PessoaID,
	}
}

func (r *VeiculoRepository) toEntity(model *VeiculoModel) *entities.Veiculo {
	return &entities.Veiculo{
		ID:        model.ID,
		Placa:     model.Placa,
		Modelo:    model.Modelo,
		Cor:       model.Cor,
		PessoaID:  model.PessoaID,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}
}
