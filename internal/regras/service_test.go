package regras

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/techsolutions/treinamentos/internal/util"
)

type stubSeq struct {
	contador int64
}

func (s *stubSeq) Next(ctx context.Context, colecao string) (int64, error) {
	s.contador++
	return s.contador, nil
}

type stubRuleRepo struct {
	regras        []Regra
	colaboradores []ColaboradorEscopo
	conclusoes    []Conclusao
	vinculos      []VinculoTrilha
}

func (s *stubRuleRepo) Insert(ctx context.Context, regra Regra) error {
	s.regras = append(s.regras, regra)
	return nil
}

func (s *stubRuleRepo) List(ctx context.Context) ([]Regra, error) {
	return s.regras, nil
}

func (s *stubRuleRepo) Delete(ctx context.Context, id int64) error {
	for i, regra := range s.regras {
		if regra.IDRegra == id {
			s.regras = append(s.regras[:i], s.regras[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *stubRuleRepo) ListColaboradoresAtivos(ctx context.Context) ([]ColaboradorEscopo, error) {
	return s.colaboradores, nil
}

func (s *stubRuleRepo) ListConclusoes(ctx context.Context) ([]Conclusao, error) {
	return s.conclusoes, nil
}

func (s *stubRuleRepo) ListVinculosTrilha(ctx context.Context) ([]VinculoTrilha, error) {
	return s.vinculos, nil
}

func ptr[T any](v T) *T { return &v }

func TestCreateRegraExigeCursoOuTrilha(t *testing.T) {
	svc := NewService(&stubRuleRepo{}, &stubSeq{})
	ctx := context.Background()

	_, err := svc.CreateRegra(ctx, CreateRegraInput{ValidadeCertificadoMeses: 12})
	require.True(t, util.IsValidation(err))

	_, err = svc.CreateRegra(ctx, CreateRegraInput{IDCurso: ptr(int64(1))})
	require.True(t, util.IsValidation(err))

	regra, err := svc.CreateRegra(ctx, CreateRegraInput{IDCurso: ptr(int64(1)), ValidadeCertificadoMeses: 12})
	require.NoError(t, err)
	require.Equal(t, alertaPadraoDias, regra.AlertaVencimentoDias)
}

func TestDeleteRegraInexistente(t *testing.T) {
	svc := NewService(&stubRuleRepo{}, &stubSeq{})

	err := svc.DeleteRegra(context.Background(), 5)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPendenciasEscopoEValidade(t *testing.T) {
	agora := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	repo := &stubRuleRepo{
		regras: []Regra{
			{IDRegra: 1, IDCurso: ptr(int64(10)), IDCargo: ptr(int64(1)), ValidadeCertificadoMeses: 12},
		},
		colaboradores: []ColaboradorEscopo{
			{IDColaborador: 1, Nome: "Maria", IDCargo: ptr(int64(1)), IDArea: ptr(int64(1))},
			{IDColaborador: 2, Nome: "João", IDCargo: ptr(int64(2)), IDArea: ptr(int64(1))},
			{IDColaborador: 3, Nome: "Ana", IDCargo: ptr(int64(1)), IDArea: ptr(int64(2))},
		},
		conclusoes: []Conclusao{
			// Ana concluiu há 2 meses: coberta.
			{IDColaborador: 3, IDCurso: 10, DataConclusao: ptr(agora.AddDate(0, -2, 0))},
		},
	}

	svc := NewService(repo, &stubSeq{})
	svc.agora = func() time.Time { return agora }

	pendencias, err := svc.Pendencias(context.Background())
	require.NoError(t, err)

	// Só Maria está descoberta: João tem outro cargo, Ana concluiu dentro da
	// validade.
	require.Len(t, pendencias, 1)
	require.Equal(t, int64(1), pendencias[0].IDColaborador)
	require.Equal(t, MotivoSemConclusao, pendencias[0].Motivo)
}

func TestPendenciasConclusaoVencida(t *testing.T) {
	agora := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	repo := &stubRuleRepo{
		regras: []Regra{
			{IDRegra: 1, IDCurso: ptr(int64(10)), ValidadeCertificadoMeses: 12},
		},
		colaboradores: []ColaboradorEscopo{
			{IDColaborador: 1, Nome: "Maria", IDCargo: ptr(int64(1))},
		},
		conclusoes: []Conclusao{
			// Concluído há 13 meses com validade de 12: vencido.
			{IDColaborador: 1, IDCurso: 10, DataConclusao: ptr(agora.AddDate(0, -13, 0))},
		},
	}

	svc := NewService(repo, &stubSeq{})
	svc.agora = func() time.Time { return agora }

	pendencias, err := svc.Pendencias(context.Background())
	require.NoError(t, err)
	require.Len(t, pendencias, 1)
	require.Equal(t, MotivoCertificadoVencido, pendencias[0].Motivo)
}

func TestPendenciasCobertasPorTrilha(t *testing.T) {
	agora := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	repo := &stubRuleRepo{
		regras: []Regra{
			{IDRegra: 1, IDTrilha: ptr(int64(3)), ValidadeCertificadoMeses: 24},
		},
		colaboradores: []ColaboradorEscopo{
			{IDColaborador: 1, Nome: "Maria"},
			{IDColaborador: 2, Nome: "João"},
		},
		vinculos: []VinculoTrilha{
			{IDTrilha: 3, IDCurso: 10},
			{IDTrilha: 3, IDCurso: 11},
		},
		conclusoes: []Conclusao{
			// Qualquer curso da trilha cobre a regra.
			{IDColaborador: 1, IDCurso: 11, DataConclusao: ptr(agora.AddDate(0, -1, 0))},
		},
	}

	svc := NewService(repo, &stubSeq{})
	svc.agora = func() time.Time { return agora }

	pendencias, err := svc.Pendencias(context.Background())
	require.NoError(t, err)
	require.Len(t, pendencias, 1)
	require.Equal(t, int64(2), pendencias[0].IDColaborador)
}

func TestPendenciasRegraSemEscopoAlcancaTodos(t *testing.T) {
	repo := &stubRuleRepo{
		regras: []Regra{
			{IDRegra: 1, IDCurso: ptr(int64(10)), ValidadeCertificadoMeses: 12},
		},
		colaboradores: []ColaboradorEscopo{
			{IDColaborador: 1, Nome: "Maria", IDCargo: ptr(int64(1))},
			{IDColaborador: 2, Nome: "João"},
		},
	}

	svc := NewService(repo, &stubSeq{})

	pendencias, err := svc.Pendencias(context.Background())
	require.NoError(t, err)
	require.Len(t, pendencias, 2)
}
