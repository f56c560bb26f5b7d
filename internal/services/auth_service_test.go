package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
	"github.com/hotelges/hotelges-backend/internal/infrastructure/token"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger {
	return l
}

// fakeContaRepo emula o comportamento fail-closed do repositório real:
// conta inexistente, senha errada e conta bloqueada retornam todos false
type fakeContaRepo struct {
	contas map[string]*entities.Conta
}

func (f *fakeContaRepo) FindByUsername(ctx context.Context, username string) (*entities.Conta, error) {
	return f.contas[username], nil
}

func (f *fakeContaRepo) Verify(ctx context.Context, username, senha string) (bool, error) {
	conta := f.contas[username]
	if conta == nil || conta.Bloqueado {
		return false, nil
	}
	return conta.VerificaSenha(senha), nil
}

type fakeFuncionarioRepo struct {
	porConta map[uint]*entities.Funcionario
}

func (f *fakeFuncionarioRepo) FindByContaID(ctx context.Context, contaID uint) (*entities.Funcionario, error) {
	return f.porConta[contaID], nil
}

func (f *fakeFuncionarioRepo) FindByID(ctx context.Context, id uint) (*entities.Funcionario, error) {
	for _, funcionario := range f.porConta {
		if funcionario.ID == id {
			return funcionario, nil
		}
	}
	return nil, nil
}

func (f *fakeFuncionarioRepo) List(ctx context.Context, filters repositories.FuncionarioFilters) ([]*entities.Funcionario, error) {
	return nil, nil
}

type fakeCargoRepo struct {
	cargos map[uint]*entities.Cargo
}

func (f *fakeCargoRepo) AssembleTree(ctx context.Context, cargoID uint) (*entities.Cargo, error) {
	return f.cargos[cargoID], nil
}

func (f *fakeCargoRepo) List(ctx context.Context) ([]*entities.Cargo, error) {
	return nil, nil
}

func (f *fakeCargoRepo) GrantTela(ctx context.Context, cargoID, telaID uint) error    { return nil }
func (f *fakeCargoRepo) RevokeTela(ctx context.Context, cargoID, telaID uint) error   { return nil }
func (f *fakeCargoRepo) GrantPermissao(ctx context.Context, cargoID, pID uint) error  { return nil }
func (f *fakeCargoRepo) RevokePermissao(ctx context.Context, cargoID, pID uint) error { return nil }

func novoAuthServiceTeste() (*AuthService, ports.TokenCodec) {
	cargoID := uint(5)

	contas := &fakeContaRepo{contas: map[string]*entities.Conta{
		"maria": {
			ID:          1,
			Username:    "maria",
			SenhaDigest: entities.DigestSenha("segredo123"),
			PessoaID:    7,
		},
		"bloqueado": {
			ID:          2,
			Username:    "bloqueado",
			SenhaDigest: entities.DigestSenha("segredo123"),
			Bloqueado:   true,
			PessoaID:    8,
		},
		"fantasma": {
			ID:          3,
			Username:    "fantasma",
			SenhaDigest: entities.DigestSenha("segredo123"),
			PessoaID:    9,
		},
	}}

	funcionarios := &fakeFuncionarioRepo{porConta: map[uint]*entities.Funcionario{
		1: {
			ID:           10,
			ContaID:      1,
			PessoaID:     7,
			CargoID:      &cargoID,
			NomeCompleto: "Maria Souza",
			Email:        "maria@hotel.example",
			DataAdmissao: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		// conta 3 (fantasma) fica sem funcionário vinculado
	}}

	cargos := &fakeCargoRepo{cargos: map[uint]*entities.Cargo{
		5: {
			ID:   5,
			Nome: "Recepcionista",
			Telas: []entities.Tela{
				{ID: 10, Nome: "CADASTRO", Permissoes: []entities.Permissao{{ID: 100, Codigo: "INCLUIR"}}},
			},
		},
	}}

	codec := token.NewJWTCodec("segredo-de-teste", time.Hour)
	return NewAuthService(contas, funcionarios, cargos, codec, nil, nopLogger{}), codec
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("emite token com a identidade completa embutida", func(t *testing.T) {
		svc, codec := novoAuthServiceTeste()

		tokenString, identidade, err := svc.Login(ctx, "maria", "segredo123")
		require.NoError(t, err)
		require.NotEmpty(t, tokenString)
		require.NotNil(t, identidade)

		assert.Equal(t, "maria", identidade.Username)
		assert.Equal(t, uint(10), identidade.FuncionarioID)
		assert.Equal(t, "Recepcionista", identidade.Cargo.Nome)
		assert.True(t, identidade.PodeAcessar("CADASTRO"))

		decodificada, err := codec.Decode(tokenString)
		require.NoError(t, err)
		assert.Equal(t, identidade, decodificada)
	})

	t.Run("usuário inexistente recebe o erro genérico de credenciais", func(t *testing.T) {
		svc, _ := novoAuthServiceTeste()

		_, _, err := svc.Login(ctx, "ninguem", "qualquer")
		assert.ErrorIs(t, err, errors.ErrCredenciaisInvalidas)
	})

	t.Run("senha errada recebe o mesmo erro genérico", func(t *testing.T) {
		svc, _ := novoAuthServiceTeste()

		_, _, err := svc.Login(ctx, "maria", "errada")
		assert.ErrorIs(t, err, errors.ErrCredenciaisInvalidas)
	})

	t.Run("conta bloqueada é indistinguível de senha errada", func(t *testing.T) {
		svc, _ := novoAuthServiceTeste()

		_, _, errBloqueado := svc.Login(ctx, "bloqueado", "segredo123")
		_, _, errSenha := svc.Login(ctx, "maria", "errada")

		assert.ErrorIs(t, errBloqueado, errors.ErrCredenciaisInvalidas)
		assert.Equal(t, errSenha, errBloqueado)
	})

	t.Run("conta sem funcionário vinculado falha com erro de provisionamento", func(t *testing.T) {
		svc, _ := novoAuthServiceTeste()

		_, _, err := svc.Login(ctx, "fantasma", "segredo123")
		assert.ErrorIs(t, err, errors.ErrContaSemFuncionario)
	})
}

func TestAuthService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("monta a identidade com a árvore do cargo", func(t *testing.T) {
		svc, _ := novoAuthServiceTeste()

		identidade, err := svc.Resolve(ctx, "maria")
		require.NoError(t, err)

		assert.Equal(t, uint(1), identidade.ContaID)
		assert.Equal(t, uint(7), identidade.PessoaID)
		assert.Equal(t, "Maria Souza", identidade.NomeCompleto)
		require.Len(t, identidade.Cargo.Telas, 1)
		assert.Equal(t, "CADASTRO", identidade.Cargo.Telas[0].Nome)
	})

	t.Run("conta inexistente retorna erro específico", func(t *testing.T) {
		svc, _ := novoAuthServiceTeste()

		_, err := svc.Resolve(ctx, "ninguem")
		assert.ErrorIs(t, err, errors.ErrContaNaoEncontrada)
	})

	t.Run("funcionário sem cargo carrega cargo vazio, nunca nil", func(t *testing.T) {
		svc, _ := novoAuthServiceTeste()
		// Remove o cargo do funcionário da Maria
		repo := svc.funcionarios.(*fakeFuncionarioRepo)
		repo.porConta[1].CargoID = nil

		identidade, err := svc.Resolve(ctx, "maria")
		require.NoError(t, err)

		assert.NotNil(t, identidade.Cargo.Telas)
		assert.Empty(t, identidade.Cargo.Telas)
		assert.False(t, identidade.PodeAcessar("CADASTRO"))
	})
}
