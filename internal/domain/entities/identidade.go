package entities

import "time"

// Identidade é o retrato imutável de um operador autenticado, montado uma
// única vez no login/validação. Nunca é construída parcialmente: se a conta
// não tiver funcionário vinculado, a construção falha antes de chegar aqui.
// O Cargo nunca é nil — um funcionário sem cargo carrega um Cargo vazio
// (coleções vazias, nunca null).
type Identidade struct {
	FuncionarioID uint      `json:"funcionarioId"`
	ContaID       uint      `json:"contaId"`
	Username      string    `json:"username"`
	PessoaID      uint      `json:"pessoaId"`
	NomeCompleto  string    `json:"nomeCompleto"`
	Email         string    `json:"email,omitempty"`
	DataAdmissao  time.Time `json:"dataAdmissao"`
	Cargo         Cargo     `json:"cargo"`
}

// PodeAcessar verifica se a identidade tem acesso à tela informada
func (i *Identidade) PodeAcessar(tela string) bool {
	return i.Cargo.TemTela(tela)
}
