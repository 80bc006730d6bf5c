package org

import (
	"context"
	"errors"
	"strconv"

	"github.com/techsolutions/treinamentos/internal/auditoria"
	"github.com/techsolutions/treinamentos/internal/auth"
	"github.com/techsolutions/treinamentos/internal/util"
)

// Sequencer aloca IDs sequenciais por coleção.
type Sequencer interface {
	Next(ctx context.Context, colecao string) (int64, error)
}

// OrgRepository é o acesso a dados consumido pelo serviço.
type OrgRepository interface {
	InsertCargo(ctx context.Context, c Cargo) error
	ListCargos(ctx context.Context) ([]Cargo, error)
	DeleteCargo(ctx context.Context, id int64) error
	InsertArea(ctx context.Context, a Area) error
	ListAreas(ctx context.Context) ([]Area, error)
	DeleteArea(ctx context.Context, id int64) error
	InsertPerfil(ctx context.Context, p Perfil) error
	ListPerfis(ctx context.Context) ([]Perfil, error)
	InsertColaborador(ctx context.Context, c Colaborador, senhaHash string) error
	GetColaboradorByEmail(ctx context.Context, email string) (Colaborador, string, error)
	GetColaborador(ctx context.Context, id int64) (Colaborador, error)
	ListColaboradores(ctx context.Context, ativo *bool) ([]Colaborador, error)
	UpdateColaborador(ctx context.Context, id int64, in UpdateColaboradorInput, senhaHash string) (Colaborador, error)
}

// Service contém as regras de cadastro organizacional e autenticação.
type Service struct {
	repo  OrgRepository
	seq   Sequencer
	jwt   *auth.JWTManager
	audit auditoria.Recorder
}

func NewService(repo OrgRepository, seq Sequencer, jwt *auth.JWTManager, audit auditoria.Recorder) *Service {
	return &Service{repo: repo, seq: seq, jwt: jwt, audit: audit}
}

// CreateCargo registra um novo cargo.
func (s *Service) CreateCargo(ctx context.Context, in CreateCargoInput) (Cargo, error) {
	if err := util.RequireString(in.Nome, "nome"); err != nil {
		return Cargo{}, err
	}

	id, err := s.seq.Next(ctx, "cargos")
	if err != nil {
		return Cargo{}, err
	}

	cargo := Cargo{IDCargo: id, Nome: in.Nome, Descricao: in.Descricao, RequerNR31: in.RequerNR31}
	if err := s.repo.InsertCargo(ctx, cargo); err != nil {
		return Cargo{}, err
	}
	return cargo, nil
}

func (s *Service) ListCargos(ctx context.Context) ([]Cargo, error) {
	return s.repo.ListCargos(ctx)
}

func (s *Service) DeleteCargo(ctx context.Context, id int64) error {
	return s.repo.DeleteCargo(ctx, id)
}

// CreateArea registra uma nova área.
func (s *Service) CreateArea(ctx context.Context, in CreateAreaInput) (Area, error) {
	if err := util.RequireString(in.Nome, "nome"); err != nil {
		return Area{}, err
	}

	id, err := s.seq.Next(ctx, "areas")
	if err != nil {
		return Area{}, err
	}

	area := Area{IDArea: id, Nome: in.Nome, Departamento: in.Departamento, Localizacao: in.Localizacao}
	if err := s.repo.InsertArea(ctx, area); err != nil {
		return Area{}, err
	}
	return area, nil
}

func (s *Service) ListAreas(ctx context.Context) ([]Area, error) {
	return s.repo.ListAreas(ctx)
}

func (s *Service) DeleteArea(ctx context.Context, id int64) error {
	return s.repo.DeleteArea(ctx, id)
}

// CreatePerfil registra um perfil de acesso. Permissões duplicadas são aceitas.
func (s *Service) CreatePerfil(ctx context.Context, in CreatePerfilInput) (Perfil, error) {
	if err := util.RequireString(in.Nome, "nome"); err != nil {
		return Perfil{}, err
	}

	id, err := s.seq.Next(ctx, "perfis")
	if err != nil {
		return Perfil{}, err
	}

	permissoes := in.Permissoes
	if permissoes == nil {
		permissoes = []string{}
	}

	perfil := Perfil{IDPerfil: id, Nome: in.Nome, Permissoes: permissoes}
	if err := s.repo.InsertPerfil(ctx, perfil); err != nil {
		return Perfil{}, err
	}
	return perfil, nil
}

func (s *Service) ListPerfis(ctx context.Context) ([]Perfil, error) {
	return s.repo.ListPerfis(ctx)
}

// Register cadastra um colaborador com senha hasheada e e-mail único.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Colaborador, error) {
	if err := util.RequireString(in.Nome, "nome"); err != nil {
		return Colaborador{}, err
	}
	if err := util.ValidateEmail(in.Email); err != nil {
		return Colaborador{}, err
	}
	if err := util.ValidatePassword(in.Senha); err != nil {
		return Colaborador{}, err
	}

	senhaHash, err := auth.Hash(in.Senha)
	if err != nil {
		return Colaborador{}, err
	}

	id, err := s.seq.Next(ctx, "colaboradores")
	if err != nil {
		return Colaborador{}, err
	}

	colaborador := Colaborador{
		IDColaborador: id,
		Nome:          in.Nome,
		Email:         in.Email,
		CPF:           in.CPF,
		IDCargo:       in.IDCargo,
		IDArea:        in.IDArea,
		IDPerfil:      in.IDPerfil,
		IDGestor:      in.IDGestor,
		DataAdmissao:  in.DataAdmissao,
		Ativo:         true,
	}

	if err := s.repo.InsertColaborador(ctx, colaborador, senhaHash); err != nil {
		return Colaborador{}, err
	}
	return colaborador, nil
}

// Login valida as credenciais e emite o token de acesso. O acesso bem-sucedido
// é gravado na trilha de auditoria.
func (s *Service) Login(ctx context.Context, cred Credenciais, ip string) (Token, error) {
	colaborador, hash, err := s.repo.GetColaboradorByEmail(ctx, cred.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Token{}, ErrCredenciais
		}
		return Token{}, err
	}

	ok, err := auth.Verify(cred.Senha, hash)
	if err != nil || !ok {
		return Token{}, ErrCredenciais
	}

	if !colaborador.Ativo {
		return Token{}, ErrInativo
	}

	token, err := s.jwt.GenerateAccessToken(strconv.FormatInt(colaborador.IDColaborador, 10), colaborador.Email)
	if err != nil {
		return Token{}, err
	}

	entrada := auditoria.NovaEntrada{
		IDColaboradorAcao: colaborador.IDColaborador,
		Acao:              auditoria.AcaoLogin,
		NomeTabela:        "colaboradores",
	}
	if ip != "" {
		entrada.IPOrigem = &ip
	}
	if err := s.audit.Registrar(ctx, entrada); err != nil {
		return Token{}, err
	}

	return Token{AccessToken: token, TokenType: "bearer", Colaborador: colaborador}, nil
}

func (s *Service) GetColaborador(ctx context.Context, id int64) (Colaborador, error) {
	return s.repo.GetColaborador(ctx, id)
}

func (s *Service) ListColaboradores(ctx context.Context, ativo *bool) ([]Colaborador, error) {
	return s.repo.ListColaboradores(ctx, ativo)
}

// UpdateColaborador aplica atualização parcial; senha presente é rehasheada.
func (s *Service) UpdateColaborador(ctx context.Context, id int64, in UpdateColaboradorInput) (Colaborador, error) {
	if in.Email != nil {
		if err := util.ValidateEmail(*in.Email); err != nil {
			return Colaborador{}, err
		}
	}

	senhaHash := ""
	if in.Senha != nil {
		if err := util.ValidatePassword(*in.Senha); err != nil {
			return Colaborador{}, err
		}
		hash, err := auth.Hash(*in.Senha)
		if err != nil {
			return Colaborador{}, err
		}
		senhaHash = hash
	}

	return s.repo.UpdateColaborador(ctx, id, in, senhaHash)
}
