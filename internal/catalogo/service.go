package catalogo

import (
	"context"
	"fmt"
	"math"

	"github.com/techsolutions/treinamentos/internal/slug"
	"github.com/techsolutions/treinamentos/internal/util"
)

// Cursos com o mesmo título em modalidades diferentes são quase-duplicados
// quando as cargas horárias distam até este valor (em horas, inclusivo).
const margemCargaHoraria = 2

// Sequencer aloca IDs sequenciais por coleção.
type Sequencer interface {
	Next(ctx context.Context, colecao string) (int64, error)
}

// CatalogRepository é o acesso a dados consumido pelo serviço.
type CatalogRepository interface {
	InsertCurso(ctx context.Context, c Curso) error
	ListCargasSimilares(ctx context.Context, slug string, modalidade Modalidade, ignorarID int64) ([]int, error)
	GetCurso(ctx context.Context, id int64) (Curso, error)
	ListCursos(ctx context.Context, tipo *TipoTreinamento) ([]Curso, error)
	UpdateCurso(ctx context.Context, id int64, campos map[string]any) error
	DeleteCurso(ctx context.Context, id int64) error
	InsertTrilha(ctx context.Context, t Trilha) error
	ListTrilhas(ctx context.Context, obrigatoria *bool) ([]Trilha, error)
	DeleteTrilha(ctx context.Context, id int64) error
	ListTrilhasDoCurso(ctx context.Context, idCurso int64) ([]Trilha, error)
	InsertTag(ctx context.Context, t Tag) error
	ListTags(ctx context.Context) ([]Tag, error)
	InsertCursoTrilha(ctx context.Context, ct CursoTrilha) error
}

// Service aplica as regras do catálogo de treinamentos.
type Service struct {
	repo CatalogRepository
	seq  Sequencer
}

func NewService(repo CatalogRepository, seq Sequencer) *Service {
	return &Service{repo: repo, seq: seq}
}

// checarQuaseDuplicado rejeita cursos com o mesmo título em outra modalidade
// cuja carga horária fique dentro da margem.
func (s *Service) checarQuaseDuplicado(ctx context.Context, titulo, chave string, modalidade Modalidade, carga int, ignorarID int64) error {
	cargas, err := s.repo.ListCargasSimilares(ctx, chave, modalidade, ignorarID)
	if err != nil {
		return err
	}

	for _, existente := range cargas {
		delta := existente - carga
		if delta < 0 {
			delta = -delta
		}
		if delta <= margemCargaHoraria {
			return fmt.Errorf("%w: já existe um curso com título similar ('%s') em outra modalidade com carga horária muito próxima (%dh vs %dh)",
				ErrConflito, titulo, existente, carga)
		}
	}
	return nil
}

// CreateCurso registra um curso novo, rejeitando duplicidade exata de
// (título normalizado, modalidade) e quase-duplicidade entre modalidades.
func (s *Service) CreateCurso(ctx context.Context, in CreateCursoInput) (Curso, error) {
	if err := util.RequireString(in.Titulo, "titulo"); err != nil {
		return Curso{}, err
	}
	if !in.Modalidade.Valid() {
		return Curso{}, util.Invalid("modalidade inválida")
	}
	if !in.TipoTreinamento.Valid() {
		return Curso{}, util.Invalid("tipo_treinamento inválido")
	}

	id, err := s.seq.Next(ctx, "cursos")
	if err != nil {
		return Curso{}, err
	}

	// O ID já foi consumido mesmo que a criação seja rejeitada adiante;
	// IDs sequenciais nunca são devolvidos ao contador.
	chave := slug.Normalize(in.Titulo)
	if err := s.checarQuaseDuplicado(ctx, in.Titulo, chave, in.Modalidade, in.CargaHoraria, 0); err != nil {
		return Curso{}, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []int64{}
	}

	curso := Curso{
		IDCurso:              id,
		Titulo:               in.Titulo,
		Descricao:            in.Descricao,
		CargaHoraria:         in.CargaHoraria,
		Modalidade:           in.Modalidade,
		TipoTreinamento:      in.TipoTreinamento,
		NormaReferencia:      in.NormaReferencia,
		PublicoAlvo:          in.PublicoAlvo,
		Instrutores:          in.Instrutores,
		PermiteAutoInscricao: in.PermiteAutoInscricao,
		Tags:                 tags,
		ConteudoProgramatico: in.ConteudoProgramatico,
		Slug:                 chave,
	}

	if err := s.repo.InsertCurso(ctx, curso); err != nil {
		if err == errDuplicado {
			return Curso{}, fmt.Errorf("%w: já existe um curso com este título nesta modalidade", ErrConflito)
		}
		return Curso{}, err
	}
	return curso, nil
}

func (s *Service) GetCurso(ctx context.Context, id int64) (Curso, error) {
	return s.repo.GetCurso(ctx, id)
}

func (s *Service) ListCursos(ctx context.Context, tipo *TipoTreinamento) ([]Curso, error) {
	if tipo != nil && !tipo.Valid() {
		return nil, util.Invalid("tipo inválido")
	}
	return s.repo.ListCursos(ctx, tipo)
}

// UpdateCurso aplica atualização parcial. Mudança de título recalcula a chave
// normalizada (com backfill para registros legados sem slug); mudança em
// título, modalidade ou carga horária repete a checagem de quase-duplicidade
// excluindo o próprio curso.
func (s *Service) UpdateCurso(ctx context.Context, id int64, in UpdateCursoInput) (Curso, error) {
	existente, err := s.repo.GetCurso(ctx, id)
	if err != nil {
		return Curso{}, err
	}

	campos := map[string]any{}

	if in.Titulo != nil {
		campos["titulo"] = *in.Titulo
		campos["slug"] = slug.Normalize(*in.Titulo)
	} else if existente.Slug == "" && existente.Titulo != "" {
		campos["slug"] = slug.Normalize(existente.Titulo)
	}
	if in.Descricao != nil {
		campos["descricao"] = *in.Descricao
	}
	if in.CargaHoraria != nil {
		carga := *in.CargaHoraria
		if math.Trunc(carga) != carga || math.IsNaN(carga) || math.IsInf(carga, 0) {
			return Curso{}, util.Invalid("carga_horaria inválida")
		}
		campos["carga_horaria"] = int(carga)
	}
	if in.Modalidade != nil {
		if !in.Modalidade.Valid() {
			return Curso{}, util.Invalid("modalidade inválida")
		}
		campos["modalidade"] = string(*in.Modalidade)
	}
	if in.TipoTreinamento != nil {
		if !in.TipoTreinamento.Valid() {
			return Curso{}, util.Invalid("tipo_treinamento inválido")
		}
		campos["tipo_treinamento"] = string(*in.TipoTreinamento)
	}
	if in.NormaReferencia != nil {
		campos["norma_referencia"] = *in.NormaReferencia
	}
	if in.PublicoAlvo != nil {
		campos["publico_alvo"] = *in.PublicoAlvo
	}
	if in.Instrutores != nil {
		campos["instrutores"] = *in.Instrutores
	}
	if in.PermiteAutoInscricao != nil {
		campos["permite_auto_inscricao"] = *in.PermiteAutoInscricao
	}
	if in.Tags != nil {
		campos["tags"] = in.Tags
	}
	if in.ConteudoProgramatico != nil {
		campos["conteudo_programatico"] = *in.ConteudoProgramatico
	}

	_, tituloMudou := campos["slug"]
	_, modalidadeMudou := campos["modalidade"]
	_, cargaMudou := campos["carga_horaria"]

	if tituloMudou || modalidadeMudou || cargaMudou {
		chave := existente.Slug
		if v, ok := campos["slug"]; ok {
			chave = v.(string)
		}
		modalidade := existente.Modalidade
		if v, ok := campos["modalidade"]; ok {
			modalidade = Modalidade(v.(string))
		}
		carga := existente.CargaHoraria
		if v, ok := campos["carga_horaria"]; ok {
			carga = v.(int)
		}
		titulo := existente.Titulo
		if v, ok := campos["titulo"]; ok {
			titulo = v.(string)
		}

		if err := s.checarQuaseDuplicado(ctx, titulo, chave, modalidade, carga, id); err != nil {
			return Curso{}, err
		}
	}

	if len(campos) == 0 {
		return existente, nil
	}

	if err := s.repo.UpdateCurso(ctx, id, campos); err != nil {
		if err == errDuplicado {
			return Curso{}, fmt.Errorf("%w: já existe curso com este título nesta modalidade", ErrConflito)
		}
		return Curso{}, err
	}

	return s.repo.GetCurso(ctx, id)
}

// DeleteCurso remove fisicamente o curso. Inscrições e vínculos que o
// referenciam não são tocados; leitores toleram as referências penduradas.
func (s *Service) DeleteCurso(ctx context.Context, id int64) error {
	return s.repo.DeleteCurso(ctx, id)
}

// VincularCursoTrilha cria o vínculo curso-trilha. Não há verificação de
// duplicidade do par nem de ciclo de pré-requisitos.
func (s *Service) VincularCursoTrilha(ctx context.Context, in VincularCursoTrilhaInput) (CursoTrilha, error) {
	if in.IDCurso == 0 || in.IDTrilha == 0 {
		return CursoTrilha{}, util.Invalid("id_curso e id_trilha são obrigatórios")
	}

	id, err := s.seq.Next(ctx, "curso_trilha")
	if err != nil {
		return CursoTrilha{}, err
	}

	ordem := 1
	if in.Ordem != nil {
		ordem = *in.Ordem
	}
	obrigatorio := true
	if in.Obrigatorio != nil {
		obrigatorio = *in.Obrigatorio
	}

	vinculo := CursoTrilha{
		IDCursoTrilha:  id,
		IDCurso:        in.IDCurso,
		IDTrilha:       in.IDTrilha,
		Ordem:          ordem,
		Obrigatorio:    obrigatorio,
		IDPrerequisito: in.IDPrerequisito,
	}

	if err := s.repo.InsertCursoTrilha(ctx, vinculo); err != nil {
		return CursoTrilha{}, err
	}
	return vinculo, nil
}

// CreateTrilha registra uma trilha nova.
func (s *Service) CreateTrilha(ctx context.Context, in CreateTrilhaInput) (Trilha, error) {
	if err := util.RequireString(in.Titulo, "titulo"); err != nil {
		return Trilha{}, err
	}

	id, err := s.seq.Next(ctx, "trilhas")
	if err != nil {
		return Trilha{}, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []int64{}
	}

	trilha := Trilha{IDTrilha: id, Titulo: in.Titulo, Descricao: in.Descricao, Tags: tags, Obrigatoria: in.Obrigatoria}
	if err := s.repo.InsertTrilha(ctx, trilha); err != nil {
		return Trilha{}, err
	}
	return trilha, nil
}

func (s *Service) ListTrilhas(ctx context.Context, obrigatoria *bool) ([]Trilha, error) {
	return s.repo.ListTrilhas(ctx, obrigatoria)
}

func (s *Service) DeleteTrilha(ctx context.Context, id int64) error {
	return s.repo.DeleteTrilha(ctx, id)
}

func (s *Service) ListTrilhasDoCurso(ctx context.Context, idCurso int64) ([]Trilha, error) {
	return s.repo.ListTrilhasDoCurso(ctx, idCurso)
}

// CreateTag registra uma tag nova.
func (s *Service) CreateTag(ctx context.Context, in CreateTagInput) (Tag, error) {
	if err := util.RequireString(in.Nome, "nome"); err != nil {
		return Tag{}, err
	}

	id, err := s.seq.Next(ctx, "tags")
	if err != nil {
		return Tag{}, err
	}

	tag := Tag{IDTag: id, Nome: in.Nome, Cor: in.Cor}
	if err := s.repo.InsertTag(ctx, tag); err != nil {
		return Tag{}, err
	}
	return tag, nil
}

func (s *Service) ListTags(ctx context.Context) ([]Tag, error) {
	return s.repo.ListTags(ctx)
}
