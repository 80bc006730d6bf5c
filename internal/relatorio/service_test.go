package relatorio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubStatsRepo struct {
	contagens Contagens
	chamadas  int
}

func (s *stubStatsRepo) Contar(ctx context.Context) (Contagens, error) {
	s.chamadas++
	return s.contagens, nil
}

func TestDashboardStatsSemInscricoes(t *testing.T) {
	repo := &stubStatsRepo{contagens: Contagens{TotalCursos: 2}}
	svc := NewService(repo, nil)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.TotalCursos)
	require.Equal(t, float64(0), stats.TaxaConclusao)
}

func TestDashboardStatsTaxaArredondada(t *testing.T) {
	repo := &stubStatsRepo{contagens: Contagens{
		TotalCursos:          5,
		TotalColaboradores:   10,
		TotalInscricoes:      3,
		InscricoesConcluidas: 1,
		InscricoesPendentes:  2,
	}}
	svc := NewService(repo, nil)

	stats, err := svc.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 33.33, stats.TaxaConclusao)
	require.Equal(t, int64(1), stats.InscricoesConcluidas)
	require.Equal(t, int64(2), stats.InscricoesPendentes)
}

func TestTaxaConclusao(t *testing.T) {
	require.Equal(t, float64(0), taxaConclusao(0, 0))
	require.Equal(t, float64(50), taxaConclusao(1, 2))
	require.Equal(t, 66.67, taxaConclusao(2, 3))
	require.Equal(t, float64(100), taxaConclusao(4, 4))
}
