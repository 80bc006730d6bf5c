package catalogo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/techsolutions/treinamentos/internal/util"
)

type stubSeq struct {
	contador map[string]int64
}

func (s *stubSeq) Next(ctx context.Context, colecao string) (int64, error) {
	if s.contador == nil {
		s.contador = map[string]int64{}
	}
	s.contador[colecao]++
	return s.contador[colecao], nil
}

// stubCatalogRepo guarda cursos em memória reproduzindo o índice único
// (slug, modalidade).
type stubCatalogRepo struct {
	cursos   []Curso
	trilhas  []Trilha
	tags     []Tag
	vinculos []CursoTrilha
}

func (s *stubCatalogRepo) InsertCurso(ctx context.Context, c Curso) error {
	for _, existente := range s.cursos {
		if existente.Slug != "" && existente.Slug == c.Slug && existente.Modalidade == c.Modalidade {
			return errDuplicado
		}
	}
	s.cursos = append(s.cursos, c)
	return nil
}

func (s *stubCatalogRepo) ListCargasSimilares(ctx context.Context, slug string, modalidade Modalidade, ignorarID int64) ([]int, error) {
	cargas := []int{}
	for _, c := range s.cursos {
		if c.Slug == slug && c.Modalidade != modalidade && c.IDCurso != ignorarID {
			cargas = append(cargas, c.CargaHoraria)
		}
	}
	return cargas, nil
}

func (s *stubCatalogRepo) GetCurso(ctx context.Context, id int64) (Curso, error) {
	for _, c := range s.cursos {
		if c.IDCurso == id {
			return c, nil
		}
	}
	return Curso{}, ErrNotFound
}

func (s *stubCatalogRepo) ListCursos(ctx context.Context, tipo *TipoTreinamento) ([]Curso, error) {
	if tipo == nil {
		return s.cursos, nil
	}
	filtrados := []Curso{}
	for _, c := range s.cursos {
		if c.TipoTreinamento == *tipo {
			filtrados = append(filtrados, c)
		}
	}
	return filtrados, nil
}

func (s *stubCatalogRepo) UpdateCurso(ctx context.Context, id int64, campos map[string]any) error {
	for i := range s.cursos {
		if s.cursos[i].IDCurso != id {
			continue
		}
		if v, ok := campos["titulo"]; ok {
			s.cursos[i].Titulo = v.(string)
		}
		if v, ok := campos["slug"]; ok {
			s.cursos[i].Slug = v.(string)
		}
		if v, ok := campos["carga_horaria"]; ok {
			s.cursos[i].CargaHoraria = v.(int)
		}
		if v, ok := campos["modalidade"]; ok {
			s.cursos[i].Modalidade = Modalidade(v.(string))
		}
		return nil
	}
	return ErrNotFound
}

func (s *stubCatalogRepo) DeleteCurso(ctx context.Context, id int64) error {
	for i, c := range s.cursos {
		if c.IDCurso == id {
			s.cursos = append(s.cursos[:i], s.cursos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *stubCatalogRepo) InsertTrilha(ctx context.Context, t Trilha) error {
	s.trilhas = append(s.trilhas, t)
	return nil
}

func (s *stubCatalogRepo) ListTrilhas(ctx context.Context, obrigatoria *bool) ([]Trilha, error) {
	return s.trilhas, nil
}

func (s *stubCatalogRepo) DeleteTrilha(ctx context.Context, id int64) error {
	for i, t := range s.trilhas {
		if t.IDTrilha == id {
			s.trilhas = append(s.trilhas[:i], s.trilhas[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *stubCatalogRepo) ListTrilhasDoCurso(ctx context.Context, idCurso int64) ([]Trilha, error) {
	return nil, nil
}

func (s *stubCatalogRepo) InsertTag(ctx context.Context, t Tag) error {
	s.tags = append(s.tags, t)
	return nil
}

func (s *stubCatalogRepo) ListTags(ctx context.Context) ([]Tag, error) {
	return s.tags, nil
}

func (s *stubCatalogRepo) InsertCursoTrilha(ctx context.Context, ct CursoTrilha) error {
	s.vinculos = append(s.vinculos, ct)
	return nil
}

func novoCursoInput(titulo string, carga int, modalidade Modalidade) CreateCursoInput {
	return CreateCursoInput{
		Titulo:          titulo,
		CargaHoraria:    carga,
		Modalidade:      modalidade,
		TipoTreinamento: TipoNR31,
	}
}

func TestCreateCursoQuaseDuplicadoEntreModalidades(t *testing.T) {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})
	ctx := context.Background()

	_, err := svc.CreateCurso(ctx, novoCursoInput("Segurança Rural", 8, ModalidadePresencial))
	require.NoError(t, err)

	// Delta de 1h fica dentro da margem de 2h: conflito.
	_, err = svc.CreateCurso(ctx, novoCursoInput("segurança rural", 9, ModalidadeOnlineSincrono))
	require.ErrorIs(t, err, ErrConflito)
	require.Contains(t, err.Error(), "8h")
	require.Contains(t, err.Error(), "9h")

	// Delta de 4h passa.
	curso, err := svc.CreateCurso(ctx, novoCursoInput("segurança rural", 12, ModalidadeOnlineSincrono))
	require.NoError(t, err)
	require.Equal(t, 12, curso.CargaHoraria)
}

func TestCreateCursoDuplicadoExato(t *testing.T) {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})
	ctx := context.Background()

	_, err := svc.CreateCurso(ctx, novoCursoInput("Uso Seguro de Agrotóxicos", 16, ModalidadePresencial))
	require.NoError(t, err)

	// Mesma chave e modalidade é rejeitada independente da carga horária.
	_, err = svc.CreateCurso(ctx, novoCursoInput("uso seguro de agrotóxicos", 40, ModalidadePresencial))
	require.ErrorIs(t, err, ErrConflito)
}

func TestCreateCursoValidacoes(t *testing.T) {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})
	ctx := context.Background()

	_, err := svc.CreateCurso(ctx, novoCursoInput("", 8, ModalidadePresencial))
	require.True(t, util.IsValidation(err))

	_, err = svc.CreateCurso(ctx, novoCursoInput("Curso", 8, Modalidade("hibrido")))
	require.True(t, util.IsValidation(err))
}

func TestCreateCursoConsomeIDMesmoRejeitado(t *testing.T) {
	seq := &stubSeq{}
	svc := NewService(&stubCatalogRepo{}, seq)
	ctx := context.Background()

	_, err := svc.CreateCurso(ctx, novoCursoInput("Segurança Rural", 8, ModalidadePresencial))
	require.NoError(t, err)

	_, err = svc.CreateCurso(ctx, novoCursoInput("Segurança Rural", 9, ModalidadeOnlineSincrono))
	require.ErrorIs(t, err, ErrConflito)

	// O contador avançou na tentativa rejeitada; o próximo curso pula o valor.
	curso, err := svc.CreateCurso(ctx, novoCursoInput("Outro Curso", 4, ModalidadePresencial))
	require.NoError(t, err)
	require.Equal(t, int64(3), curso.IDCurso)
}

func TestUpdateCursoCargaNaoInteira(t *testing.T) {
	repo := &stubCatalogRepo{}
	svc := NewService(repo, &stubSeq{})
	ctx := context.Background()

	curso, err := svc.CreateCurso(ctx, novoCursoInput("Primeiros Socorros", 8, ModalidadePresencial))
	require.NoError(t, err)

	carga := 8.5
	_, err = svc.UpdateCurso(ctx, curso.IDCurso, UpdateCursoInput{CargaHoraria: &carga})
	require.True(t, util.IsValidation(err))

	inteira := 10.0
	atualizado, err := svc.UpdateCurso(ctx, curso.IDCurso, UpdateCursoInput{CargaHoraria: &inteira})
	require.NoError(t, err)
	require.Equal(t, 10, atualizado.CargaHoraria)
}

func TestUpdateCursoIgnoraOProprioRegistro(t *testing.T) {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})
	ctx := context.Background()

	curso, err := svc.CreateCurso(ctx, novoCursoInput("Operação de Tratores", 8, ModalidadePresencial))
	require.NoError(t, err)

	// Mudar a carga do próprio curso não conflita com ele mesmo.
	carga := 9.0
	atualizado, err := svc.UpdateCurso(ctx, curso.IDCurso, UpdateCursoInput{CargaHoraria: &carga})
	require.NoError(t, err)
	require.Equal(t, 9, atualizado.CargaHoraria)
}

func TestUpdateCursoNaoEncontrado(t *testing.T) {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})

	_, err := svc.UpdateCurso(context.Background(), 99, UpdateCursoInput{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVincularCursoTrilhaValidacao(t *testing.T) {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})
	ctx := context.Background()

	_, err := svc.VincularCursoTrilha(ctx, VincularCursoTrilhaInput{IDCurso: 1})
	require.True(t, util.IsValidation(err))

	_, err = svc.VincularCursoTrilha(ctx, VincularCursoTrilhaInput{IDTrilha: 1})
	require.True(t, util.IsValidation(err))

	vinculo, err := svc.VincularCursoTrilha(ctx, VincularCursoTrilhaInput{IDCurso: 1, IDTrilha: 2})
	require.NoError(t, err)
	require.Equal(t, 1, vinculo.Ordem)
	require.True(t, vinculo.Obrigatorio)
}

func TestListCursosFiltroInvalido(t *testing.T) {
	svc := NewService(&stubCatalogRepo{}, &stubSeq{})

	tipo := TipoTreinamento("inexistente")
	_, err := svc.ListCursos(context.Background(), &tipo)
	require.True(t, util.IsValidation(err))
	require.False(t, errors.Is(err, ErrConflito))
}
