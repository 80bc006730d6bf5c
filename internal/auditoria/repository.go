package auditoria

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository grava entradas de auditoria. Só há escrita: a trilha é append-only.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, e Entrada) error {
	const query = `
        INSERT INTO auditoria (id_auditoria, id_colaborador_acao, acao, nome_tabela, id_registro_afetado, ip_origem, dados_antigos, dados_novos, data_hora)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := r.pool.Exec(ctx, query,
		e.IDAuditoria, e.IDColaboradorAcao, string(e.Acao), e.NomeTabela,
		e.IDRegistroAfetado, e.IPOrigem, e.DadosAntigos, e.DadosNovos, e.DataHora,
	)
	return err
}
