package inscricao

import (
	"context"
	"testing"
	"time"

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

type stubEnrollmentRepo struct {
	cursos     map[int64]bool
	inscricoes map[int64]Inscricao
	progressos map[int64]Progresso
	evidencias []Evidencia
}

func novoStubEnrollmentRepo(cursos ...int64) *stubEnrollmentRepo {
	s := &stubEnrollmentRepo{
		cursos:     map[int64]bool{},
		inscricoes: map[int64]Inscricao{},
		progressos: map[int64]Progresso{},
	}
	for _, id := range cursos {
		s.cursos[id] = true
	}
	return s
}

func (s *stubEnrollmentRepo) CursoExiste(ctx context.Context, idCurso int64) (bool, error) {
	return s.cursos[idCurso], nil
}

func (s *stubEnrollmentRepo) CreateInscricaoComProgresso(ctx context.Context, i Inscricao, p Progresso) error {
	s.inscricoes[i.IDInscricao] = i
	s.progressos[p.IDProgresso] = p
	return nil
}

func (s *stubEnrollmentRepo) GetInscricao(ctx context.Context, id int64) (Inscricao, error) {
	i, ok := s.inscricoes[id]
	if !ok {
		return Inscricao{}, ErrNotFound
	}
	return i, nil
}

func (s *stubEnrollmentRepo) ListInscricoes(ctx context.Context, filtro ListFilter) ([]Inscricao, error) {
	lista := []Inscricao{}
	for _, i := range s.inscricoes {
		if filtro.IDColaborador != nil && i.IDColaborador != *filtro.IDColaborador {
			continue
		}
		if filtro.IDCurso != nil && i.IDCurso != *filtro.IDCurso {
			continue
		}
		if filtro.Status != nil && i.Status != *filtro.Status {
			continue
		}
		lista = append(lista, i)
	}
	return lista, nil
}

func (s *stubEnrollmentRepo) UpdateInscricao(ctx context.Context, id int64, campos map[string]any) error {
	i, ok := s.inscricoes[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := campos["status"]; ok {
		i.Status = Status(v.(string))
	}
	if v, ok := campos["nota"]; ok {
		nota := v.(float64)
		i.Nota = &nota
	}
	if v, ok := campos["aprovado"]; ok {
		i.Aprovado = v.(bool)
	}
	if v, ok := campos["data_conclusao"]; ok {
		data := v.(time.Time)
		i.DataConclusao = &data
	}
	s.inscricoes[id] = i
	return nil
}

func (s *stubEnrollmentRepo) GetProgresso(ctx context.Context, id int64) (Progresso, error) {
	p, ok := s.progressos[id]
	if !ok {
		return Progresso{}, ErrNotFound
	}
	return p, nil
}

func (s *stubEnrollmentRepo) UpdateProgresso(ctx context.Context, id int64, campos map[string]any) error {
	p, ok := s.progressos[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := campos["percentual"]; ok {
		p.Percentual = v.(float64)
	}
	if v, ok := campos["status"]; ok {
		p.Status = Status(v.(string))
	}
	s.progressos[id] = p
	return nil
}

func (s *stubEnrollmentRepo) InscricaoExiste(ctx context.Context, id int64) (bool, error) {
	_, ok := s.inscricoes[id]
	return ok, nil
}

func (s *stubEnrollmentRepo) InsertEvidencia(ctx context.Context, e Evidencia) error {
	s.evidencias = append(s.evidencias, e)
	return nil
}

func (s *stubEnrollmentRepo) ListEvidencias(ctx context.Context, idInscricao *int64) ([]Evidencia, error) {
	return s.evidencias, nil
}

func TestCreateInscricaoCriaParComProgressoZerado(t *testing.T) {
	repo := novoStubEnrollmentRepo(1)
	svc := NewService(repo, &stubSeq{})
	ctx := context.Background()

	inscricao, progresso, err := svc.CreateInscricao(ctx, CreateInscricaoInput{IDColaborador: 1, IDCurso: 1})
	require.NoError(t, err)

	require.Equal(t, StatusPendente, inscricao.Status)
	require.Equal(t, TipoManual, inscricao.TipoInscricao)
	require.False(t, inscricao.DataInscricao.IsZero())

	require.Equal(t, inscricao.IDInscricao, progresso.IDInscricao)
	require.Equal(t, float64(0), progresso.Percentual)
	require.Equal(t, StatusPendente, progresso.Status)

	require.Len(t, repo.inscricoes, 1)
	require.Len(t, repo.progressos, 1)

	colaborador := int64(1)
	lista, err := svc.ListInscricoes(ctx, ListFilter{IDColaborador: &colaborador})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	require.Equal(t, StatusPendente, lista[0].Status)
}

func TestCreateInscricaoCursoInexistente(t *testing.T) {
	svc := NewService(novoStubEnrollmentRepo(), &stubSeq{})

	_, _, err := svc.CreateInscricao(context.Background(), CreateInscricaoInput{IDColaborador: 1, IDCurso: 7})
	require.ErrorIs(t, err, ErrCursoNaoEncontrado)
}

func TestCreateInscricaoValidacoes(t *testing.T) {
	svc := NewService(novoStubEnrollmentRepo(1), &stubSeq{})
	ctx := context.Background()

	_, _, err := svc.CreateInscricao(ctx, CreateInscricaoInput{IDCurso: 1})
	require.True(t, util.IsValidation(err))

	_, _, err = svc.CreateInscricao(ctx, CreateInscricaoInput{IDColaborador: 1, IDCurso: 1, TipoInscricao: Tipo("importada")})
	require.True(t, util.IsValidation(err))
}

func TestUpdateInscricaoParcial(t *testing.T) {
	repo := novoStubEnrollmentRepo(1)
	svc := NewService(repo, &stubSeq{})
	ctx := context.Background()

	criada, _, err := svc.CreateInscricao(ctx, CreateInscricaoInput{IDColaborador: 1, IDCurso: 1})
	require.NoError(t, err)

	status := StatusConcluido
	nota := 9.5
	aprovado := true
	atualizada, err := svc.UpdateInscricao(ctx, criada.IDInscricao, UpdateInscricaoInput{
		Status:   &status,
		Nota:     &nota,
		Aprovado: &aprovado,
	})
	require.NoError(t, err)
	require.Equal(t, StatusConcluido, atualizada.Status)
	require.Equal(t, 9.5, *atualizada.Nota)
	require.True(t, atualizada.Aprovado)

	invalido := Status("arquivado")
	_, err = svc.UpdateInscricao(ctx, criada.IDInscricao, UpdateInscricaoInput{Status: &invalido})
	require.True(t, util.IsValidation(err))
}

func TestUpdateProgressoLimitesDePercentual(t *testing.T) {
	repo := novoStubEnrollmentRepo(1)
	svc := NewService(repo, &stubSeq{})
	ctx := context.Background()

	_, progresso, err := svc.CreateInscricao(ctx, CreateInscricaoInput{IDColaborador: 1, IDCurso: 1})
	require.NoError(t, err)

	demais := 120.0
	_, err = svc.UpdateProgresso(ctx, progresso.IDProgresso, UpdateProgressoInput{Percentual: &demais})
	require.True(t, util.IsValidation(err))

	valido := 45.0
	atualizado, err := svc.UpdateProgresso(ctx, progresso.IDProgresso, UpdateProgressoInput{Percentual: &valido})
	require.NoError(t, err)
	require.Equal(t, 45.0, atualizado.Percentual)
}

func TestCreateEvidencia(t *testing.T) {
	repo := novoStubEnrollmentRepo(1)
	svc := NewService(repo, &stubSeq{})
	ctx := context.Background()

	_, err := svc.CreateEvidencia(ctx, CreateEvidenciaInput{IDInscricao: 9, TipoEvidencia: EvidenciaQRCode})
	require.ErrorIs(t, err, ErrNotFound)

	inscricao, _, err := svc.CreateInscricao(ctx, CreateInscricaoInput{IDColaborador: 1, IDCurso: 1})
	require.NoError(t, err)

	evidencia, err := svc.CreateEvidencia(ctx, CreateEvidenciaInput{
		IDInscricao:   inscricao.IDInscricao,
		TipoEvidencia: EvidenciaListaPresenca,
	})
	require.NoError(t, err)
	require.Equal(t, EvidenciaListaPresenca, evidencia.TipoEvidencia)
	require.False(t, evidencia.DataRegistro.IsZero())

	_, err = svc.CreateEvidencia(ctx, CreateEvidenciaInput{
		IDInscricao:   inscricao.IDInscricao,
		TipoEvidencia: TipoEvidencia("print"),
	})
	require.True(t, util.IsValidation(err))
}
