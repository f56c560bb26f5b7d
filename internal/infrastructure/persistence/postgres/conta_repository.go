package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// ContaRepository implementa repositories.ContaRepository
type ContaRepository struct {
	db *gorm.DB
}

// NewContaRepository cria um novo ContaRepository
func NewContaRepository(db *gorm.DB) repositories.ContaRepository {
	return &ContaRepository{db: db}
}

func (r *ContaRepository) FindByUsername(ctx context.Context, username string) (*entities.Conta, error) {
	var model ContaModel

	db := getDB(ctx, r.db)
	if err := db.Where("username = ?", username).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// Verify compara a senha candidata com o digest armazenado.
// Conta inexistente, senha errada e conta bloqueada resultam todos em
// false, sem distinção para o chamador
func (r *ContaRepository) Verify(ctx context.Context, username, senha string) (bool, error) {
	conta, err := r.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if conta == nil || conta.Bloqueado {
		return false, nil
	}
	return conta.VerificaSenha(senha), nil
}

func (r *ContaRepository) toEntity(model *ContaModel) *entities.Conta {
	return &entities.Conta{
		ID:          model.ID,
		Username:    model.Username,
		SenhaDigest: model.SenhaDigest,
		Bloqueado:   model.Bloqueado,
		PessoaID:    model.PessoaID,
	}
}
