package auditoria

import (
	"context"
	"time"
)

// Sequencer aloca IDs sequenciais por coleção.
type Sequencer interface {
	Next(ctx context.Context, colecao string) (int64, error)
}

// Recorder é a interface consumida pelos módulos que geram auditoria.
type Recorder interface {
	Registrar(ctx context.Context, nova NovaEntrada) error
}

// AuditRepository persiste entradas da trilha.
type AuditRepository interface {
	Insert(ctx context.Context, e Entrada) error
}

// Service atribui identidade e timestamp às entradas e as grava.
type Service struct {
	repo AuditRepository
	seq  Sequencer
}

func NewService(repo AuditRepository, seq Sequencer) *Service {
	return &Service{repo: repo, seq: seq}
}

// Registrar grava uma entrada na trilha de auditoria.
func (s *Service) Registrar(ctx context.Context, nova NovaEntrada) error {
	id, err := s.seq.Next(ctx, "auditoria")
	if err != nil {
		return err
	}

	return s.repo.Insert(ctx, Entrada{
		IDAuditoria:       id,
		IDColaboradorAcao: nova.IDColaboradorAcao,
		Acao:              nova.Acao,
		NomeTabela:        nova.NomeTabela,
		IDRegistroAfetado: nova.IDRegistroAfetado,
		IPOrigem:          nova.IPOrigem,
		DadosAntigos:      nova.DadosAntigos,
		DadosNovos:        nova.DadosNovos,
		DataHora:          time.Now().UTC(),
	})
}
