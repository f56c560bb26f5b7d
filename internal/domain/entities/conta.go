package entities

import (
	"crypto/sha256"
	"encoding/hex"
)

// Conta representa as credenciais de acesso de um operador
type Conta struct {
	ID          uint
	Username    string
	SenhaDigest string
	Bloqueado   bool
	PessoaID    uint
}

// DigestSenha calcula o digest SHA-256 (hex) de uma senha.
// O mesmo algoritmo é usado na criação da conta e na verificação:
// os digests são comparados por igualdade exata. Não há garantia de
// comparação em tempo constante (fraqueza conhecida e documentada).
func DigestSenha(senha string) string {
	sum := sha256.Sum256([]byte(senha))
	return hex.EncodeToString(sum[:])
}

// VerificaSenha compara o digest da senha candidata com o armazenado
func (c *Conta) VerificaSenha(senha string) bool {
	return c.SenhaDigest == DigestSenha(senha)
}
