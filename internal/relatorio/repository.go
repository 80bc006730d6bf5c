package relatorio

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Contagens são os totais brutos consultados no banco.
type Contagens struct {
	TotalCursos          int64
	TotalColaboradores   int64
	TotalInscricoes      int64
	InscricoesConcluidas int64
	InscricoesPendentes  int64
	CertificadosVencidos int64
}

// Repository consulta os totais do painel.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Contar levanta todos os totais em uma única consulta.
func (r *Repository) Contar(ctx context.Context) (Contagens, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM cursos),
            (SELECT COUNT(*) FROM colaboradores),
            (SELECT COUNT(*) FROM inscricoes),
            (SELECT COUNT(*) FROM inscricoes WHERE status = 'concluido'),
            (SELECT COUNT(*) FROM inscricoes WHERE status = 'pendente'),
            (SELECT COUNT(*) FROM certificados WHERE status = 'vencido' OR (data_validade IS NOT NULL AND data_validade < NOW()))
    `

	var c Contagens
	err := r.pool.QueryRow(ctx, query).Scan(&c.TotalCursos, &c.TotalColaboradores,
		&c.TotalInscricoes, &c.InscricoesConcluidas, &c.InscricoesPendentes, &c.CertificadosVencidos)
	return c, err
}
