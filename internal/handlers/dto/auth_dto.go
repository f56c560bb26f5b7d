package dto

import (
	"time"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Senha    string `json:"senha" binding:"required,min=4,max=72"`
}

// LoginResponse carrega o token de sessão emitido
type LoginResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"` // sempre "Bearer"
}

// PermissaoResponse representa uma permissão na resposta
type PermissaoResponse struct {
	ID        uint   `json:"id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao,omitempty"`
}

// TelaResponse representa uma tela com suas permissões concedidas
type TelaResponse struct {
	ID         uint                `json:"id"`
	Nome       string              `json:"nome"`
	Descricao  string              `json:"descricao,omitempty"`
	Permissoes []PermissaoResponse `json:"permissoes"`
}

// CargoResponse representa a árvore de um cargo
type CargoResponse struct {
	ID    uint           `json:"id"`
	Nome  string         `json:"nome"`
	Telas []TelaResponse `json:"telas"`
}

// IdentidadeResponse representa a identidade do operador autenticado
type IdentidadeResponse struct {
	FuncionarioID uint          `json:"funcionario_id"`
	ContaID       uint          `json:"conta_id"`
	Username      string        `json:"username"`
	PessoaID      uint          `json:"pessoa_id"`
	NomeCompleto  string        `json:"nome_completo"`
	Email         string        `json:"email,omitempty"`
	DataAdmissao  time.Time     `json:"data_admissao"`
	Cargo         CargoResponse `json:"cargo"`
}

// ToCargoResponse converte uma entidade Cargo para CargoResponse
func ToCargoResponse(cargo *entities.Cargo) CargoResponse {
	telas := make([]TelaResponse, len(cargo.Telas))
	for i, tela := range cargo.Telas {
		permissoes := make([]PermissaoResponse, len(tela.Permissoes))
		for j, permissao := range tela.Permissoes {
			permissoes[j] = PermissaoResponse{
				ID:        permissao.ID,
				Codigo:    permissao.Codigo,
				Descricao: permissao.Descricao,
			}
		}
		telas[i] = TelaResponse{
			ID:         tela.ID,
			Nome:       tela.Nome,
			Descricao:  tela.Descricao,
			Permissoes: permissoes,
		}
	}
	return CargoResponse{
		ID:    cargo.ID,
		Nome:  cargo.Nome,
		Telas: telas,
	}
}

// ToCargoResponses converte uma lista de cargos
func ToCargoResponses(cargos []*entities.Cargo) []CargoResponse {
	responses := make([]CargoResponse, len(cargos))
	for i, cargo := range cargos {
		responses[i] = ToCargoResponse(cargo)
	}
	return responses
}

// ToIdentidadeResponse converte uma Identidade para IdentidadeResponse
func ToIdentidadeResponse(identidade *entities.Identidade) IdentidadeResponse {
	return IdentidadeResponse{
		FuncionarioID: identidade.FuncionarioID,
		ContaID:       identidade.ContaID,
		Username:      identidade.Username,
		PessoaID:      identidade.PessoaID,
		NomeCompleto:  identidade.NomeCompleto,
		Email:         identidade.Email,
		DataAdmissao:  identidade.DataAdmissao,
		Cargo:         ToCargoResponse(&identidade.Cargo),
	}
}
