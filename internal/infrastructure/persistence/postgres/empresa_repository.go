package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// EmpresaRepository implementa repositories.EmpresaRepository
type EmpresaRepository struct {
	db *gorm.DB
}

// NewEmpresaRepository cria um novo EmpresaRepository
func NewEmpresaRepository(db *gorm.DB) repositories.EmpresaRepository {
	return &EmpresaRepository{db: db}
}

func (r *EmpresaRepository) Create(ctx context.Context, empresa *entities.Empresa) error {
	model := r.toModel(empresa)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	empresa.ID = model.ID
	return nil
}

func (r *EmpresaRepository) FindByID(ctx context.Context, id uint) (*entities.Empresa, error) {
	var model EmpresaModel

	db := getDB(ctx, r.db)
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *EmpresaRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entities.Empresa, error) {
	var model EmpresaModel

	db := getDB(ctx, r.db)
	if err := db.Where("cnpj = ?", cnpj).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *EmpresaRepository) Update(ctx context.Context, empresa *entities.Empresa) error {
	db := getDB(ctx, r.db)
	return db.Save(r.toModel(empresa)).Error
}

func (r *EmpresaRepository) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	return db.Delete(&EmpresaModel{}, id).Error
}

func (r *EmpresaRepository) List(ctx context.Context, filters repositories.EmpresaFilters) ([]*entities.Empresa, error) {
	var models []*EmpresaModel

	db := getDB(ctx, r.db)
	query := db.Model(&EmpresaModel{})

	if filters.RazaoSocial != "" {
		query = query.Where("razao_social ILIKE ?", "%"+filters.RazaoSocial+"%")
	}

	page, pageSize := clampPagination(filters.Page, filters.PageSize)
	query = query.Order("razao_social").Limit(pageSize).Offset((page - 1) * pageSize)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	empresas := make([]*entities.Empresa, 0, len(models))
	for _, model := range models {
		empresas = append(empresas, r.toEntity(model))
	}
	return empresas, nil
}

// Conversores
func (r *EmpresaRepository) toModel(empresa *entities.Empresa) *EmpresaModel {
	return &EmpresaModel{
		ID:           empresa.ID,
		RazaoSocial:  empresa.RazaoSocial,
		NomeFantasia: empresa.NomeFantasia,
		CNPJ:         empresa.CNPJ,
		Telefone:     empresa.Telefone,
	}
}

func (r *EmpresaRepository) toEntity(model *EmpresaModel) *entities.Empresa {
	return &entities.Empresa{
		ID:           model.ID,
		RazaoSocial:  model.RazaoSocial,
		NomeFantasia: model.NomeFantasia,
		CNPJ:         model.CNPJ,
		Telefone:     model.Telefone,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}
