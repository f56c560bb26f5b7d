package postgres

import "time"

// Models GORM do sistema. IDs inteiros seriais; timestamps de auditoria
// em unix epoch (autoCreateTime/autoUpdateTime); datas de negócio como date.

// ContaModel é o model GORM para contas de acesso
type ContaModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Username    string `gorm:"type:varchar(100);uniqueIndex;not null"`
	SenhaDigest string `gorm:"type:char(64);not null"` // SHA-256 hex
	Bloqueado   bool   `gorm:"not null;default:false"`
	PessoaID    uint   `gorm:"index;not null"`
}

func (ContaModel) TableName() string {
	return "contas"
}

// FuncionarioModel é o model GORM para funcionários
type FuncionarioModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	ContaID      uint      `gorm:"uniqueIndex;not null"`
	PessoaID     uint      `gorm:"index;not null"`
	CargoID      *uint     `gorm:"index"`
	DataAdmissao time.Time `gorm:"type:date;not null"`
	CreatedAt    int64     `gorm:"autoCreateTime"`
	UpdatedAt    int64     `gorm:"autoUpdateTime"`
}

func (FuncionarioModel) TableName() string {
	return "funcionarios"
}

// CargoModel é o model GORM para cargos
type CargoModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Nome string `gorm:"type:varchar(100);uniqueIndex;not null"`
}

func (CargoModel) TableName() string {
	return "cargos"
}

// TelaModel é o model GORM para telas
type TelaModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Descricao string `gorm:"type:varchar(255)"`
}

func (TelaModel) TableName() string {
	return "telas"
}

// PermissaoModel é o model GORM para permissões; cada permissão
// pertence a exatamente uma tela
type PermissaoModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	TelaID    uint   `gorm:"not null;uniqueIndex:idx_permissao_tela_codigo"`
	Codigo    string `gorm:"type:varchar(100);not null;uniqueIndex:idx_permissao_tela_codigo"`
	Descricao string `gorm:"type:varchar(255)"`
}

func (PermissaoModel) TableName() string {
	return "permissoes"
}

// CargoTelaModel é a tabela de vínculo cargo↔tela
type CargoTelaModel struct {
	CargoID uint `gorm:"primaryKey"`
	TelaID  uint `gorm:"primaryKey"`
}

func (CargoTelaModel) TableName() string {
	return "cargo_telas"
}

// CargoPermissaoModel é a tabela de vínculo cargo↔permissão
type CargoPermissaoModel struct {
	CargoID     uint `gorm:"primaryKey"`
	PermissaoID uint `gorm:"primaryKey"`
}

func (CargoPermissaoModel) TableName() string {
	return "cargo_permissoes"
}

// PessoaModel é o model GORM para pessoas
type PessoaModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Nome      string `gorm:"type:varchar(255);not null;index"`
	Email     string `gorm:"type:varchar(255)"`
	Documento string `gorm:"type:varchar(20);index"`
	Telefone  string `gorm:"type:varchar(20)"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (PessoaModel) TableName() string {
	return "pessoas"
}

// QuartoModel é o model GORM para quartos
type QuartoModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Numero      string  `gorm:"type:varchar(10);uniqueIndex;not null"`
	Andar       int     `gorm:"not null"`
	Categoria   string  `gorm:"type:varchar(50);index"`
	ValorDiaria float64 `gorm:"type:numeric(10,2);not null"`
	Situacao    string  `gorm:"type:varchar(20);not null;index"`
	CreatedAt   int64   `gorm:"autoCreateTime"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (QuartoModel) TableName() string {
	return "quartos"
}

// EmpresaModel é o model GORM para empresas conveniadas
type EmpresaModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	RazaoSocial  string `gorm:"type:varchar(255);not null"`
	NomeFantasia string `gorm:"type:varchar(255)"`
	CNPJ         string `gorm:"type:varchar(18);uniqueIndex;not null"`
	Telefone     string `gorm:"type:varchar(20)"`
	CreatedAt    int64  `gorm:"autoCreateTime"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
}

func (EmpresaModel) TableName() string {
	return "empresas"
}

// VeiculoModel é o model GORM para veículos
type VeiculoModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Placa     string `gorm:"type:varchar(10);index;not null"`
	Modelo    string `gorm:"type:varchar(100)"`
	Cor       string `gorm:"type:varchar(30)"`
	PessoaID  uint   `gorm:"index;not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (VeiculoModel) TableName() string {
	return "veiculos"
}

// LancamentoModel é o model GORM para lançamentos financeiros
type LancamentoModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Descricao string    `gorm:"type:varchar(255);not null"`
	Categoria string    `gorm:"type:varchar(100);index;not null"`
	Tipo      string    `gorm:"type:varchar(10);index;not null"` // RECEITA | DESPESA
	Valor     float64   `gorm:"type:numeric(12,2);not null"`
	Data      time.Time `gorm:"type:date;index;not null"`
	CreatedAt int64     `gorm:"autoCreateTime"`
}

func (LancamentoModel) TableName() string {
	return "lancamentos"
}
