package entities

import "time"

// Veiculo representa um veículo registrado no estacionamento,
// vinculado a uma pessoa do cadastro
type Veiculo struct {
	ID        uint
	Placa     string
	Modelo    string
	Cor       string
	PessoaID  uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
