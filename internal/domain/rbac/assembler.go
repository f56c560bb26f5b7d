// Package rbac monta a árvore cargo → tela → permissão a partir do
// resultado achatado do join entre as tabelas de vínculo
// (cargo_telas e cargo_permissoes).
package rbac

import "github.com/hotelges/hotelges-backend/internal/domain/entities"

// LinkRow é uma linha do join achatado, ordenada por cargo, tela, permissão.
// Campos zerados (ID == 0 / string vazia) representam colunas NULL do
// LEFT JOIN: um cargo sem telas produz linhas com TelaID == 0.
type LinkRow struct {
	CargoID            uint
	CargoNome          string
	TelaID             uint
	TelaNome           string
	TelaDescricao      string
	PermissaoID        uint
	PermissaoCodigo    string
	PermissaoDescricao string
	PermissaoTelaID    uint
}

// cargoAcc acumula um cargo durante a montagem, com índices de
// deduplicação por id preservando a ordem de primeira aparição
type cargoAcc struct {
	cargo     *entities.Cargo
	telaIdx   map[uint]int    // tela id -> posição em cargo.Telas
	permVisto map[uint]map[uint]bool // tela id -> permissão ids já anexados
}

// AssembleCargos converte as linhas achatadas em cargos aninhados,
// sem filhos duplicados, na ordem de primeira aparição.
//
// Regras:
//   - linhas com TelaID == 0 não geram tela (cargo sem telas fica com
//     lista vazia, nunca nil);
//   - uma permissão só é anexada à tela quando PermissaoID != 0 e
//     PermissaoTelaID == TelaID. O join entre cargo_telas e
//     cargo_permissoes é um produto cartesiano por cargo, então cada
//     permissão reaparece sob todas as telas do cargo — o filtro pelo
//     id da tela dona descarta essas combinações. Vínculos órfãos
//     (permissão cuja tela dona não está no cargo) são descartados em
//     silêncio, comportamento herdado do provisionamento original;
//   - telas e permissões repetidas (mesmo id) não geram filhos duplicados.
//
// A saída é estável para um mesmo conjunto de vínculos independente da
// ordem das linhas dentro de um grupo (cargo, tela); a ordem das
// permissões segue a ordem das linhas (o repositório pré-ordena por
// código de permissão).
func AssembleCargos(rows []LinkRow) []*entities.Cargo {
	ordem := make([]uint, 0)
	porID := make(map[uint]*cargoAcc)

	for _, row := range rows {
		if row.CargoID == 0 {
			continue
		}

		acc, ok := porID[row.CargoID]
		if !ok {
			acc = &cargoAcc{
				cargo: &entities.Cargo{
					ID:    row.CargoID,
					Nome:  row.CargoNome,
					Telas: []entities.Tela{},
				},
				telaIdx:   make(map[uint]int),
				permVisto: make(map[uint]map[uint]bool),
			}
			porID[row.CargoID] = acc
			ordem = append(ordem, row.CargoID)
		}

		if row.TelaID == 0 {
			continue
		}

		idx, ok := acc.telaIdx[row.TelaID]
		if !ok {
			acc.cargo.Telas = append(acc.cargo.Telas, entities.Tela{
				ID:         row.TelaID,
				Nome:       row.TelaNome,
				Descricao:  row.TelaDescricao,
				Permissoes: []entities.Permissao{},
			})
			idx = len(acc.cargo.Telas) - 1
			acc.telaIdx[row.TelaID] = idx
			acc.permVisto[row.TelaID] = make(map[uint]bool)
		}

		// Anexa a permissão apenas quando ela pertence à tela agrupada
		if row.PermissaoID == 0 || row.PermissaoTelaID != row.TelaID {
			continue
		}
		if acc.permVisto[row.TelaID][row.PermissaoID] {
			continue
		}
		acc.permVisto[row.TelaID][row.PermissaoID] = true

		tela := &acc.cargo.Telas[idx]
		tela.Permissoes = append(tela.Permissoes, entities.Permissao{
			ID:        row.PermissaoID,
			Codigo:    row.PermissaoCodigo,
			Descricao: row.PermissaoDescricao,
		})
	}

	cargos := make([]*entities.Cargo, 0, len(ordem))
	for _, id := range ordem {
		cargos = append(cargos, porID[id].cargo)
	}
	return cargos
}

// AssembleCargo monta um único cargo a partir das linhas. Retorna nil
// quando as linhas não contêm nenhum cargo.
func AssembleCargo(rows []LinkRow) *entities.Cargo {
	cargos := AssembleCargos(rows)
	if len(cargos) == 0 {
		return nil
	}
	return cargos[0]
}
