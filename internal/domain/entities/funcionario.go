package entities

import "time"

// Funcionario representa o vínculo operacional entre uma conta de acesso
// e uma pessoa. NomeCompleto e Email são desnormalizados do cadastro de
// pessoas na leitura.
type Funcionario struct {
	ID           uint
	ContaID      uint
	PessoaID     uint
	CargoID      *uint // nil quando o funcionário ainda não tem cargo atribuído
	NomeCompleto string
	Email        string
	DataAdmissao time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
