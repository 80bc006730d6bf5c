package seq

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// stubQuerier emula a semântica upsert-incremento da tabela counters.
type stubQuerier struct {
	mu       sync.Mutex
	contador map[string]int64
	falha    error
}

type stubRow struct {
	valor int64
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.valor
	return nil
}

func (q *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if q.falha != nil {
		return stubRow{err: q.falha}
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.contador == nil {
		q.contador = map[string]int64{}
	}
	nome := args[0].(string)
	q.contador[nome]++
	return stubRow{valor: q.contador[nome]}
}

func TestNextComecaEmUm(t *testing.T) {
	alocador := New(&stubQuerier{})

	id, err := alocador.Next(context.Background(), "cursos")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestNextEstritamenteCrescentePorColecao(t *testing.T) {
	alocador := New(&stubQuerier{})
	ctx := context.Background()

	anterior := int64(0)
	for i := 0; i < 10; i++ {
		id, err := alocador.Next(ctx, "inscricoes")
		require.NoError(t, err)
		require.Greater(t, id, anterior)
		anterior = id
	}

	// Coleções são contadas de forma independente.
	id, err := alocador.Next(ctx, "cursos")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestNextConcorrenteSemDuplicata(t *testing.T) {
	alocador := New(&stubQuerier{})
	ctx := context.Background()

	const chamadas = 50
	ids := make(chan int64, chamadas)

	var wg sync.WaitGroup
	for i := 0; i < chamadas; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := alocador.Next(ctx, "evidencias")
			require.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	vistos := map[int64]bool{}
	for id := range ids {
		require.False(t, vistos[id], "id repetido: %d", id)
		vistos[id] = true
	}
	require.Len(t, vistos, chamadas)
}

func TestNextPropagaFalha(t *testing.T) {
	alocador := New(&stubQuerier{falha: errors.New("conexão recusada")})

	_, err := alocador.Next(context.Background(), "cursos")
	require.Error(t, err)
	require.Contains(t, err.Error(), "cursos")
}
