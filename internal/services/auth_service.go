package services

import (
	"context"
	errs "errors"
	"time"

	"github.com/hotelges/hotelges-backend/internal/domain/entities"
	"github.com/hotelges/hotelges-backend/internal/domain/errors"
	"github.com/hotelges/hotelges-backend/internal/domain/ports"
	"github.com/hotelges/hotelges-backend/internal/domain/repositories"
)

// AuthService orquestra autenticação: verificação de credenciais,
// resolução da identidade do operador e emissão do token de sessão
type AuthService struct {
	contas       repositories.ContaRepository
	funcionarios repositories.FuncionarioRepository
	cargos       repositories.CargoRepository
	codec        ports.TokenCodec
	notifier     ports.Notifier
	logger       ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	contas repositories.ContaRepository,
	funcionarios repositories.FuncionarioRepository,
	cargos repositories.CargoRepository,
	codec ports.TokenCodec,
	notifier ports.Notifier,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		contas:       contas,
		funcionarios: funcionarios,
		cargos:       cargos,
		codec:        codec,
		notifier:     notifier,
		logger:       logger,
	}
}

// Login verifica as credenciais e, em caso de sucesso, resolve a
// identidade e emite o token de sessão. Toda falha de credencial
// (usuário inexistente, senha errada, conta bloqueada) resulta no
// mesmo erro genérico — o cliente não consegue enumerar usernames.
func (s *AuthService) Login(ctx context.Context, username, senha string) (string, *entities.Identidade, error) {
	ok, err := s.contas.Verify(ctx, username, senha)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		s.logger.Info("login recusado", "username", username)
		return "", nil, errors.ErrCredenciaisInvalidas
	}

	identidade, err := s.Resolve(ctx, username)
	if err != nil {
		// No caminho do login a conta ausente também vira a resposta
		// genérica de credenciais
		if errs.Is(err, errors.ErrContaNaoEncontrada) {
			return "", nil, errors.ErrCredenciaisInvalidas
		}
		return "", nil, err
	}

	token, err := s.codec.Encode(identidade)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("login efetuado",
		"username", username,
		"funcionario_id", identidade.FuncionarioID,
		"cargo", identidade.Cargo.Nome,
	)
	if s.notifier != nil {
		s.notifier.Publish(ports.Evento{
			Tipo:     "LOGIN",
			Mensagem: identidade.NomeCompleto + " entrou no sistema",
			Autor:    username,
			Quando:   time.Now(),
		})
	}

	return token, identidade, nil
}

// Resolve monta a identidade imutável do operador a partir do username.
// Pré-condição: as credenciais já foram verificadas nesta requisição.
// Operação somente-leitura, sem efeitos colaterais.
func (s *AuthService) Resolve(ctx context.Context, username string) (*entities.Identidade, error) {
	conta, err := s.contas.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if conta == nil {
		return nil, errors.ErrContaNaoEncontrada
	}

	funcionario, err := s.funcionarios.FindByContaID(ctx, conta.ID)
	if err != nil {
		return nil, err
	}
	if funcionario == nil {
		// Conta sem funcionário vinculado é inconsistência de
		// provisionamento: não produz Identidade parcial
		s.logger.Warn("conta sem funcionário vinculado",
			"username", username,
			"conta_id", conta.ID,
		)
		return nil, errors.ErrContaSemFuncionario
	}

	// Cargo nunca nil: funcionário sem cargo carrega um cargo vazio
	cargo := entities.Cargo{Telas: []entities.Tela{}}
	if funcionario.CargoID != nil {
		montado, err := s.cargos.AssembleTree(ctx, *funcionario.CargoID)
		if err != nil {
			return nil, err
		}
		if montado != nil {
			cargo = *montado
		}
	}

	return &entities.Identidade{
		FuncionarioID: funcionario.ID,
		ContaID:       conta.ID,
		Username:      conta.Username,
		PessoaID:      funcionario.PessoaID,
		NomeCompleto:  funcionario.NomeCompleto,
		Email:         funcionario.Email,
		DataAdmissao:  funcionario.DataAdmissao,
		Cargo:         cargo,
	}, nil
}
