package entities

// Permissao representa uma capacidade granular vinculada a uma tela
// (ex: "EXPORTAR_RELATORIO" dentro da tela FINANCEIRO)
type Permissao struct {
	ID        uint   `json:"id"`
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao,omitempty"`
}

// Tela representa uma área funcional do sistema, usada como unidade
// de autorização de granularidade grossa (ex: CADASTRO, FINANCEIRO)
type Tela struct {
	ID         uint        `json:"id"`
	Nome       string      `json:"nome"`
	Descricao  string      `json:"descricao,omitempty"`
	Permissoes []Permissao `json:"permissoes"`
}

// TemPermissao verifica se a tela possui a permissão com o código informado
func (t *Tela) TemPermissao(codigo string) bool {
	for _, p := range t.Permissoes {
		if p.Codigo == codigo {
			return true
		}
	}
	return false
}

// Cargo representa o papel de um operador: um conjunto nomeado de telas,
// cada tela carregando apenas as permissões concedidas a este cargo
type Cargo struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Telas []Tela `json:"telas"`
}

// TemTela verifica se o cargo possui acesso à tela informada
// Comparação exata, case-sensitive
func (c *Cargo) TemTela(nome string) bool {
	for _, t := range c.Telas {
		if t.Nome == nome {
			return true
		}
	}
	return false
}

// Tela retorna a tela com o nome informado, ou nil se o cargo não a possui
func (c *Cargo) Tela(nome string) *Tela {
	for i := range c.Telas {
		if c.Telas[i].Nome == nome {
			return &c.Telas[i]
		}
	}
	return nil
}
