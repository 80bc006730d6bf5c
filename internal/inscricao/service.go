package inscricao

import (
	"context"
	"fmt"
	"time"

	"github.com/techsolutions/treinamentos/internal/util"
)

// Sequencer aloca IDs sequenciais por coleção.
type Sequencer interface {
	Next(ctx context.Context, colecao string) (int64, error)
}

// EnrollmentRepository é o acesso a dados consumido pelo serviço.
type EnrollmentRepository interface {
	CursoExiste(ctx context.Context, idCurso int64) (bool, error)
	CreateInscricaoComProgresso(ctx context.Context, i Inscricao, p Progresso) error
	GetInscricao(ctx context.Context, id int64) (Inscricao, error)
	ListInscricoes(ctx context.Context, filtro ListFilter) ([]Inscricao, error)
	UpdateInscricao(ctx context.Context, id int64, campos map[string]any) error
	GetProgresso(ctx context.Context, id int64) (Progresso, error)
	UpdateProgresso(ctx context.Context, id int64, campos map[string]any) error
	InscricaoExiste(ctx context.Context, id int64) (bool, error)
	InsertEvidencia(ctx context.Context, e Evidencia) error
	ListEvidencias(ctx context.Context, idInscricao *int64) ([]Evidencia, error)
}

// Service gerencia o ciclo de vida das inscrições.
type Service struct {
	repo EnrollmentRepository
	seq  Sequencer
}

func NewService(repo EnrollmentRepository, seq Sequencer) *Service {
	return &Service{repo: repo, seq: seq}
}

// CreateInscricao matricula um colaborador em um curso existente. A inscrição
// nasce pendente com um progresso zerado; o par é gravado atomicamente.
func (s *Service) CreateInscricao(ctx context.Context, in CreateInscricaoInput) (Inscricao, Progresso, error) {
	if in.IDColaborador == 0 || in.IDCurso == 0 {
		return Inscricao{}, Progresso{}, util.Invalid("id_colaborador e id_curso são obrigatórios")
	}
	tipo := in.TipoInscricao
	if tipo == "" {
		tipo = TipoManual
	}
	if !tipo.Valid() {
		return Inscricao{}, Progresso{}, util.Invalid("tipo_inscricao inválido")
	}

	existe, err := s.repo.CursoExiste(ctx, in.IDCurso)
	if err != nil {
		return Inscricao{}, Progresso{}, err
	}
	if !existe {
		return Inscricao{}, Progresso{}, ErrCursoNaoEncontrado
	}

	// Os dois IDs são alocados antes da transação; ficam consumidos mesmo que
	// a gravação falhe adiante.
	idInscricao, err := s.seq.Next(ctx, "inscricoes")
	if err != nil {
		return Inscricao{}, Progresso{}, err
	}
	idProgresso, err := s.seq.Next(ctx, "progressos")
	if err != nil {
		return Inscricao{}, Progresso{}, err
	}

	inscricao := Inscricao{
		IDInscricao:   idInscricao,
		IDColaborador: in.IDColaborador,
		IDCurso:       in.IDCurso,
		DataInscricao: time.Now().UTC(),
		DataPrevista:  in.DataPrevista,
		Status:        StatusPendente,
		TipoInscricao: tipo,
	}
	progresso := Progresso{
		IDProgresso: idProgresso,
		IDInscricao: idInscricao,
		Percentual:  0,
		Status:      StatusPendente,
	}

	if err := s.repo.CreateInscricaoComProgresso(ctx, inscricao, progresso); err != nil {
		return Inscricao{}, Progresso{}, err
	}
	return inscricao, progresso, nil
}

func (s *Service) GetInscricao(ctx context.Context, id int64) (Inscricao, error) {
	return s.repo.GetInscricao(ctx, id)
}

func (s *Service) ListInscricoes(ctx context.Context, filtro ListFilter) ([]Inscricao, error) {
	if filtro.Status != nil && !filtro.Status.Valid() {
		return nil, util.Invalid("status inválido")
	}
	return s.repo.ListInscricoes(ctx, filtro)
}

// UpdateInscricao aplica atualização parcial. A data de inscrição nunca muda;
// transições de status não são restringidas aqui.
func (s *Service) UpdateInscricao(ctx context.Context, id int64, in UpdateInscricaoInput) (Inscricao, error) {
	campos := map[string]any{}

	if in.Status != nil {
		if !in.Status.Valid() {
			return Inscricao{}, util.Invalid(fmt.Sprintf("status inválido: %s", *in.Status))
		}
		campos["status"] = string(*in.Status)
	}
	if in.DataConclusao != nil {
		campos["data_conclusao"] = *in.DataConclusao
	}
	if in.DataPrevista != nil {
		campos["data_prevista"] = *in.DataPrevista
	}
	if in.Nota != nil {
		campos["nota"] = *in.Nota
	}
	if in.Aprovado != nil {
		campos["aprovado"] = *in.Aprovado
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateInscricao(ctx, id, campos); err != nil {
			return Inscricao{}, err
		}
	}
	return s.repo.GetInscricao(ctx, id)
}

// UpdateProgresso aplica atualização parcial do progresso. Percentual fora de
// [0, 100] é rejeitado; o status da inscrição não é sincronizado.
func (s *Service) UpdateProgresso(ctx context.Context, id int64, in UpdateProgressoInput) (Progresso, error) {
	campos := map[string]any{}

	if in.Percentual != nil {
		if *in.Percentual < 0 || *in.Percentual > 100 {
			return Progresso{}, util.Invalid("percentual deve estar entre 0 e 100")
		}
		campos["percentual"] = *in.Percentual
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return Progresso{}, util.Invalid(fmt.Sprintf("status inválido: %s", *in.Status))
		}
		campos["status"] = string(*in.Status)
	}
	if in.DataConclusao != nil {
		campos["data_conclusao"] = *in.DataConclusao
	}
	if in.Observacoes != nil {
		campos["observacoes"] = *in.Observacoes
	}

	if len(campos) > 0 {
		if err := s.repo.UpdateProgresso(ctx, id, campos); err != nil {
			return Progresso{}, err
		}
	}
	return s.repo.GetProgresso(ctx, id)
}

// CreateEvidencia registra uma evidência para uma inscrição existente.
func (s *Service) CreateEvidencia(ctx context.Context, in CreateEvidenciaInput) (Evidencia, error) {
	if in.IDInscricao == 0 {
		return Evidencia{}, util.Invalid("id_inscricao é obrigatório")
	}
	if !in.TipoEvidencia.Valid() {
		return Evidencia{}, util.Invalid("tipo_evidencia inválido")
	}

	existe, err := s.repo.InscricaoExiste(ctx, in.IDInscricao)
	if err != nil {
		return Evidencia{}, err
	}
	if !existe {
		return Evidencia{}, ErrNotFound
	}

	id, err := s.seq.Next(ctx, "evidencias")
	if err != nil {
		return Evidencia{}, err
	}

	evidencia := Evidencia{
		IDEvidencia:   id,
		IDInscricao:   in.IDInscricao,
		TipoEvidencia: in.TipoEvidencia,
		URLArquivo:    in.URLArquivo,
		DataRegistro:  time.Now().UTC(),
		Descricao:     in.Descricao,
	}

	if err := s.repo.InsertEvidencia(ctx, evidencia); err != nil {
		return Evidencia{}, err
	}
	return evidencia, nil
}

func (s *Service) ListEvidencias(ctx context.Context, idInscricao *int64) ([]Evidencia, error) {
	return s.repo.ListEvidencias(ctx, idInscricao)
}
