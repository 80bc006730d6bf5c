package seq

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier é o subconjunto de pgxpool.Pool/pgx.Tx usado pelo alocador, o que
// permite alocar IDs tanto fora quanto dentro de uma transação.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Allocator gera IDs inteiros sequenciais por coleção. Cada coleção tem uma
// linha própria na tabela counters; o incremento acontece em um único statement
// no servidor, então chamadas concorrentes nunca recebem o mesmo valor. IDs
// alocados não são reaproveitados, mesmo que o registro dono seja removido.
type Allocator struct {
	q Querier
}

func New(q Querier) *Allocator {
	return &Allocator{q: q}
}

const nextQuery = `
        INSERT INTO counters (nome, seq)
        VALUES ($1, 1)
        ON CONFLICT (nome) DO UPDATE SET seq = counters.seq + 1
        RETURNING seq
`

// Next devolve o próximo ID da coleção, criando o contador em 1 no primeiro uso.
// Falha de I/O contra o banco é propagada sem retry.
func (a *Allocator) Next(ctx context.Context, colecao string) (int64, error) {
	var id int64
	if err := a.q.QueryRow(ctx, nextQuery, colecao).Scan(&id); err != nil {
		return 0, fmt.Errorf("seq %s: %w", colecao, err)
	}
	return id, nil
}
