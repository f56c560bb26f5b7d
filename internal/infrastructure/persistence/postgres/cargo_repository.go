package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/rbac"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// CargoRepository implementa repositories.CargoRepository.
// A árvore cargo → tela → permissão é reconstruída a cada leitura a
// partir das tabelas de vínculo (cargo_telas, cargo_permissoes).
type CargoRepository struct {
	db *gorm.DB
}

// NewCargoRepository cria um novo CargoRepository
func NewCargoRepository(db *gorm.DB) repositories.CargoRepository {
	return &CargoRepository{db: db}
}

// linkRowModel recebe as colunas do join achatado; ponteiros capturam
// os NULLs do LEFT JOIN
type linkRowModel struct {
	CargoID            uint
	CargoNome          string
	TelaID             *uint
	TelaNome           *string
	TelaDescricao      *string
	PermissaoID        *uint
	PermissaoCodigo    *string
	PermissaoDescricao *string
	PermissaoTelaID    *uint
}

// O join entre cargo_telas e cargo_permissoes é um produto cartesiano
// por cargo; o montador descarta as combinações em que a permissão não
// pertence à tela agrupada. A ordenação por código de permissão torna a
// ordem das permissões determinística.
const linkRowsQuery = `
SELECT c.id   AS cargo_id,
       c.nome AS cargo_nome,
       t.id   AS tela_id,
       t.nome AS tela_nome,
       t.descricao AS tela_descricao,
       p.id     AS permissao_id,
       p.codigo AS permissao_codigo,
       p.descricao AS permissao_descricao,
       p.tela_id   AS permissao_tela_id
FROM cargos c
LEFT JOIN cargo_telas ct ON ct.cargo_id = c.id
LEFT JOIN telas t ON t.id = ct.tela_id
LEFT JOIN cargo_permissoes cp ON cp.cargo_id = c.id
LEFT JOIN permissoes p ON p.id = cp.permissao_id
`

func (r *CargoRepository) AssembleTree(ctx context.Context, cargoID uint) (*entities.Cargo, error) {
	var rows []linkRowModel

	db := getDB(ctx, r.db)
	query := linkRowsQuery + "WHERE c.id = ? ORDER BY t.id, p.codigo"
	if err := db.Raw(query, cargoID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rbac.AssembleCargo(toLinkRows(rows)), nil
}

func (r *CargoRepository) List(ctx context.Context) ([]*entities.Cargo, error) {
	var rows []linkRowModel

	db := getDB(ctx, r.db)
	query := linkRowsQuery + "ORDER BY c.nome, c.id, t.id, p.codigo"
	if err := db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rbac.AssembleCargos(toLinkRows(rows)), nil
}

// GrantTela vincula uma tela ao cargo; re-conceder é no-op
func (r *CargoRepository) GrantTela(ctx context.Context, cargoID, telaID uint) error {
	db := getDB(ctx, r.db)
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&CargoTelaModel{CargoID: cargoID, TelaID: telaID}).Error
}

// RevokeTela remove o vínculo; revogar vínculo inexistente é no-op
func (r *CargoRepository) RevokeTela(ctx context.Context, cargoID, telaID uint) error {
	db := getDB(ctx, r.db)
	return db.Where("cargo_id = ? AND tela_id = ?", cargoID, telaID).
		Delete(&CargoTelaModel{}).Error
}

// GrantPermissao vincula uma permissão ao cargo; re-conceder é no-op
func (r *CargoRepository) GrantPermissao(ctx context.Context, cargoID, permissaoID uint) error {
	db := getDB(ctx, r.db)
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&CargoPermissaoModel{CargoID: cargoID, PermissaoID: permissaoID}).Error
}

// RevokePermissao remove o vínculo; revogar vínculo inexistente é no-op
func (r *CargoRepository) RevokePermissao(ctx context.Context, cargoID, permissaoID uint) error {
	db := getDB(ctx, r.db)
	return db.Where("cargo_id = ? AND permissao_id = ?", cargoID, permissaoID).
		Delete(&CargoPermissaoModel{}).Error
}

func toLinkRows(rows []linkRowModel) []rbac.LinkRow {
	out := make([]rbac.LinkRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, rbac.LinkRow{
			CargoID:            row.CargoID,
			CargoNome:          row.CargoNome,
			TelaID:             derefUint(row.TelaID),
			TelaNome:           derefString(row.TelaNome),
			TelaDescricao:      derefString(row.TelaDescricao),
			PermissaoID:        derefUint(row.PermissaoID),
			PermissaoCodigo:    derefString(row.PermissaoCodigo),
			PermissaoDescricao: derefString(row.PermissaoDescricao),
			PermissaoTelaID:    derefUint(row.PermissaoTelaID),
		})
	}
	return out
}

func derefUint(v *uint) uint {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
