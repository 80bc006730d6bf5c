package certificado

import (
	"context"
	"strings"
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

type stubCertRepo struct {
	inscricoes   map[int64]bool
	certificados []Certificado
}

func (s *stubCertRepo) InscricaoExiste(ctx context.Context, idInscricao int64) (bool, error) {
	return s.inscricoes[idInscricao], nil
}

func (s *stubCertRepo) Insert(ctx context.Context, c Certificado) error {
	s.certificados = append(s.certificados, c)
	return nil
}

func (s *stubCertRepo) List(ctx context.Context, filtro ListFilter) ([]Certificado, error) {
	lista := []Certificado{}
	for _, c := range s.certificados {
		if filtro.IDInscricao != nil && c.IDInscricao != *filtro.IDInscricao {
			continue
		}
		if filtro.Status != nil && c.Status != *filtro.Status {
			continue
		}
		lista = append(lista, c)
	}
	return lista, nil
}

func TestEmitirInscricaoInexistente(t *testing.T) {
	svc := NewService(&stubCertRepo{inscricoes: map[int64]bool{}}, &stubSeq{})

	_, err := svc.Emitir(context.Background(), EmitirInput{IDInscricao: 42})
	require.ErrorIs(t, err, ErrInscricaoNaoEncontrada)
}

func TestEmitirGeraCodigoCurtoAtivo(t *testing.T) {
	repo := &stubCertRepo{inscricoes: map[int64]bool{1: true}}
	svc := NewService(repo, &stubSeq{})

	validade := time.Now().AddDate(2, 0, 0)
	certificado, err := svc.Emitir(context.Background(), EmitirInput{IDInscricao: 1, DataValidade: &validade})
	require.NoError(t, err)

	require.Len(t, certificado.CodigoCertificado, 8)
	require.Equal(t, strings.ToUpper(certificado.CodigoCertificado), certificado.CodigoCertificado)
	require.Equal(t, StatusAtivo, certificado.Status)
	require.False(t, certificado.DataEmissao.IsZero())
	require.Equal(t, validade.Unix(), certificado.DataValidade.Unix())
}

func TestEmitirValidacao(t *testing.T) {
	svc := NewService(&stubCertRepo{inscricoes: map[int64]bool{}}, &stubSeq{})

	_, err := svc.Emitir(context.Background(), EmitirInput{})
	require.True(t, util.IsValidation(err))
}

func TestListFiltros(t *testing.T) {
	repo := &stubCertRepo{inscricoes: map[int64]bool{1: true, 2: true}}
	svc := NewService(repo, &stubSeq{})
	ctx := context.Background()

	_, err := svc.Emitir(ctx, EmitirInput{IDInscricao: 1})
	require.NoError(t, err)
	_, err = svc.Emitir(ctx, EmitirInput{IDInscricao: 2})
	require.NoError(t, err)

	inscricao := int64(1)
	lista, err := svc.List(ctx, ListFilter{IDInscricao: &inscricao})
	require.NoError(t, err)
	require.Len(t, lista, 1)

	invalido := Status("suspenso")
	_, err = svc.List(ctx, ListFilter{Status: &invalido})
	require.True(t, util.IsValidation(err))
}
