package dto

import (
	"time"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
)

// --- Pessoas ---

// CreatePessoaRequest representa a requisição para criar uma pessoa
type CreatePessoaRequest struct {
	Nome      string `json:"nome" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"omitempty,email"`
	Documento string `json:"documento" binding:"omitempty,max=20"`
	Telefone  string `json:"telefone" binding:"omitempty,max=20"`
}

// PessoaResponse representa a resposta de uma pessoa
type PessoaResponse struct {
	ID        uint      `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Documento string    `json:"documento,omitempty"`
	Telefone  string    `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPessoaResponse converte uma entidade Pessoa para PessoaResponse
func ToPessoaResponse(pessoa *entities.Pessoa) PessoaResponse {
	return PessoaResponse{
		ID:        pessoa.ID,
		Nome:      pessoa.Nome,
		Email:     pessoa.Email,
		Documento: pessoa.Documento,
		Telefone:  pessoa.Telefone,
		CreatedAt: pessoa.CreatedAt,
	}
}

// ToPessoaResponses converte uma lista de pessoas
func ToPessoaResponses(pessoas []*entities.Pessoa) []PessoaResponse {
	responses := make([]PessoaResponse, len(pessoas))
	for i, pessoa := range pessoas {
		responses[i] = ToPessoaResponse(pessoa)
	}
	return responses
}

// --- Quartos ---

// CreateQuartoRequest representa a requisição para criar um quarto
type CreateQuartoRequest struct {
	Numero      string  `json:"numero" binding:"required,max=10"`
	Andar       int     `json:"andar" binding:"min=0"`
	Categoria   string  `json:"categoria" binding:"omitempty,max=50"`
	ValorDiaria float64 `json:"valor_diaria" binding:"required,gt=0"`
}

// UpdateQuartoRequest representa a requisição para atualizar um quarto
type UpdateQuartoRequest struct {
	Andar       *int     `json:"andar" binding:"omitempty,min=0"`
	Categoria   *string  `json:"categoria" binding:"omitempty,max=50"`
	ValorDiaria *float64 `json:"valor_diaria" binding:"omitempty,gt=0"`
	Situacao    *string  `json:"situacao" binding:"omitempty,oneof=LIVRE OCUPADO MANUTENCAO"`
}

// QuartoResponse representa a resposta de um quarto
type QuartoResponse struct {
	ID          uint    `json:"id"`
	Numero      string  `json:"numero"`
	Andar       int     `json:"andar"`
	Categoria   string  `json:"categoria,omitempty"`
	ValorDiaria float64 `json:"valor_diaria"`
	Situacao    string  `json:"situacao"`
}

// ToQuartoResponse converte uma entidade Quarto para QuartoResponse
func ToQuartoResponse(quarto *entities.Quarto) QuartoResponse {
	return QuartoResponse{
		ID:          quarto.ID,
		Numero:      quarto.Numero,
		Andar:       quarto.Andar,
		Categoria:   quarto.Categoria,
		ValorDiaria: quarto.ValorDiaria,
		Situacao:    quarto.Situacao,
	}
}

// ToQuartoResponses converte uma lista de quartos
func ToQuartoResponses(quartos []*entities.Quarto) []QuartoResponse {
	responses := make([]QuartoResponse, len(quartos))
	for i, quarto := range quartos {
		responses[i] = ToQuartoResponse(quarto)
	}
	return responses
}

// --- Empresas ---

// CreateEmpresaRequest representa a requisição para criar uma empresa
type CreateEmpresaRequest struct {
	RazaoSocial  string `json:"razao_social" binding:"required,min=2,max=255"`
	NomeFantasia string `json:"nome_fantasia" binding:"omitempty,max=255"`
	CNPJ         string `json:"cnpj" binding:"required,min=14,max=18"`
	Telefone     string `json:"telefone" binding:"omitempty,max=20"`
}

// EmpresaResponse representa a resposta de uma empresa
type EmpresaResponse struct {
	ID           uint   `json:"id"`
	RazaoSocial  string `json:"razao_social"`
	NomeFantasia string `json:"nome_fantasia,omitempty"`
	CNPJ         string `json:"cnpj"`
	Telefone     string `json:"telefone,omitempty"`
}

// ToEmpresaResponse converte uma entidade Empresa para EmpresaResponse
func ToEmpresaResponse(empresa *entities.Empresa) EmpresaResponse {
	return EmpresaResponse{
		ID:           empresa.ID,
		RazaoSocial:  empresa.RazaoSocial,
		NomeFantasia: empresa.NomeFantasia,
		CNPJ:         empresa.CNPJ,
		Telefone:     empresa.Telefone,
	}
}

// ToEmpresaResponses converte uma lista de empresas
func ToEmpresaResponses(empresas []*entities.Empresa) []EmpresaResponse {
	responses := make([]EmpresaResponse, len(empresas))
	for i, empresa := range empresas {
		responses[i] = ToEmpresaResponse(empresa)
	}
	return responses
}

// --- Veículos ---

// CreateVeiculoRequest representa a requisição para registrar um veículo
type CreateVeiculoRequest struct {
	Placa    string `json:"placa" binding:"required,min=7,max=10"`
	Modelo   string `json:"modelo" binding:"omitempty,max=100"`
	Cor      string `json:"cor" binding:"omitempty,max=30"`
	PessoaID uint   `json:"pessoa_id" binding:"required"`
}

// VeiculoResponse representa a resposta de um veículo
type VeiculoResponse struct {
	ID       uint   `json:"id"`
	Placa    string `json:"placa"`
	Modelo   string `json:"modelo,omitempty"`
	Cor      string `json:"cor,omitempty"`
	PessoaID uint   `json:"pessoa_id"`
}

// ToVeiculoResponse converte uma entidade Veiculo para VeiculoResponse
func ToVeiculoResponse(veiculo *entities.Veiculo) VeiculoResponse {
	return VeiculoResponse{
		ID:       veiculo.ID,
		Placa:    veiculo.Placa,
		Modelo:   veiculo.Modelo,
		Cor:      veiculo.Cor,
		PessoaID: veiculo.PessoaID,
	}
}

// ToVeiculoResponses converte uma lista de veículos
func ToVeiculoResponses(veiculos []*entities.Veiculo) []VeiculoResponse {
	responses := make([]VeiculoResponse, len(veiculos))
	for i, veiculo := range veiculos {
		responses[i] = ToVeiculoResponse(veiculo)
	}
	return responses
}

// --- Funcionários ---

// FuncionarioResponse representa a resposta de um funcionário
type FuncionarioResponse struct {
	ID           uint      `json:"id"`
	ContaID      uint      `json:"conta_id"`
	PessoaID     uint      `json:"pessoa_id"`
	CargoID      *uint     `json:"cargo_id,omitempty"`
	NomeCompleto string    `json:"nome_completo"`
	Email        string    `json:"email,omitempty"`
	DataAdmissao time.Time `json:"data_admissao"`
}

// ToFuncionarioResponse converte uma entidade Funcionario para FuncionarioResponse
func ToFuncionarioResponse(funcionario *entities.Funcionario) FuncionarioResponse {
	return FuncionarioResponse{
		ID:           funcionario.ID,
		ContaID:      funcionario.ContaID,
		PessoaID:     funcionario.PessoaID,
		CargoID:      funcionario.CargoID,
		NomeCompleto: funcionario.NomeCompleto,
		Email:        funcionario.Email,
		DataAdmissao: funcionario.DataAdmissao,
	}
}

// ToFuncionarioResponses converte uma lista de funcionários
func ToFuncionarioResponses(funcionarios []*entities.Funcionario) []FuncionarioResponse {
	responses := make([]FuncionarioResponse, len(funcionarios))
	for i, funcionario := range funcionarios {
		responses[i] = ToFuncionarioResponse(funcionario)
	}
	return responses
}

// --- Relatórios ---

// ResumoFinanceiroResponse representa o resumo financeiro de um período
type ResumoFinanceiroResponse struct {
	Inicio        string                   `json:"inicio"`
	Fim           string                   `json:"fim"`
	TotalReceitas float64                  `json:"total_receitas"`
	TotalDespesas float64                  `json:"total_despesas"`
	Saldo         float64                  `json:"saldo"`
	PorCategoria  []TotalCategoriaResponse `json:"por_categoria"`
}

// TotalCategoriaResponse representa o total de uma categoria no período
type TotalCategoriaResponse struct {
	Categoria string  `json:"categoria"`
	Tipo      string  `json:"tipo"`
	Total     float64 `json:"total"`
}

// ToResumoFinanceiroResponse converte um ResumoFinanceiro para resposta
func ToResumoFinanceiroResponse(resumo *entities.ResumoFinanceiro) ResumoFinanceiroResponse {
	porCategoria := make([]TotalCategoriaResponse, len(resumo.PorCategoria))
	for i, total := range resumo.PorCategoria {
		porCategoria[i] = TotalCategoriaResponse{
			Categoria: total.Categoria,
			Tipo:      total.Tipo,
			Total:     total.Total,
		}
	}
	return ResumoFinanceiroResponse{
		Inicio:        resumo.Inicio.Format("2006-01-02"),
		Fim:           resumo.Fim.Format("2006-01-02"),
		TotalReceitas: resumo.TotalReceitas,
		TotalDespesas: resumo.TotalDespesas,
		Saldo:         resumo.Saldo,
		PorCategoria:  porCategoria,
	}
}
