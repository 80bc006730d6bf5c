package inscricao

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techsolutions/treinamentos/internal/db"
)

// Repository provê acesso às tabelas de inscrições, progressos e evidências.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const inscricaoColumns = `id_inscricao, id_colaborador, id_curso, data_inscricao, data_prevista, status, tipo_inscricao, data_conclusao, nota, aprovado`

func scanInscricao(row pgx.Row) (Inscricao, error) {
	var i Inscricao
	var status, tipo string
	err := row.Scan(&i.IDInscricao, &i.IDColaborador, &i.IDCurso, &i.DataInscricao,
		&i.DataPrevista, &status, &tipo, &i.DataConclusao, &i.Nota, &i.Aprovado)
	if err != nil {
		return Inscricao{}, err
	}
	i.Status = Status(status)
	i.TipoInscricao = Tipo(tipo)
	return i, nil
}

// CursoExiste verifica se o curso referenciado está no catálogo.
func (r *Repository) CursoExiste(ctx context.Context, idCurso int64) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cursos WHERE id_curso = $1)`, idCurso).Scan(&existe)
	return existe, err
}

// CreateInscricaoComProgresso grava a inscrição e o progresso inicial na mesma
// transação; nenhum dos dois existe sem o outro.
func (r *Repository) CreateInscricaoComProgresso(ctx context.Context, i Inscricao, p Progresso) error {
	return db.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO inscricoes (id_inscricao, id_colaborador, id_curso, data_inscricao, data_prevista, status, tipo_inscricao, data_conclusao, nota, aprovado)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        `, i.IDInscricao, i.IDColaborador, i.IDCurso, i.DataInscricao, i.DataPrevista,
			string(i.Status), string(i.TipoInscricao), i.DataConclusao, i.Nota, i.Aprovado)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO progressos (id_progresso, id_inscricao, percentual, status, data_conclusao, observacoes)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, p.IDProgresso, p.IDInscricao, p.Percentual, string(p.Status), p.DataConclusao, p.Observacoes)
		return err
	})
}

func (r *Repository) GetInscricao(ctx context.Context, id int64) (Inscricao, error) {
	query := fmt.Sprintf(`SELECT %s FROM inscricoes WHERE id_inscricao = $1`, inscricaoColumns)

	i, err := scanInscricao(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Inscricao{}, ErrNotFound
		}
		return Inscricao{}, err
	}
	return i, nil
}

func (r *Repository) ListInscricoes(ctx context.Context, filtro ListFilter) ([]Inscricao, error) {
	query := fmt.Sprintf(`SELECT %s FROM inscricoes`, inscricaoColumns)
	where := []string{}
	args := []any{}

	if filtro.IDColaborador != nil {
		args = append(args, *filtro.IDColaborador)
		where = append(where, fmt.Sprintf("id_colaborador = $%d", len(args)))
	}
	if filtro.IDCurso != nil {
		args = append(args, *filtro.IDCurso)
		where = append(where, fmt.Sprintf("id_curso = $%d", len(args)))
	}
	if filtro.Status != nil {
		args = append(args, string(*filtro.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id_inscricao`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inscricoes := []Inscricao{}
	for rows.Next() {
		i, err := scanInscricao(rows)
		if err != nil {
			return nil, err
		}
		inscricoes = append(inscricoes, i)
	}
	return inscricoes, rows.Err()
}

// UpdateInscricao aplica os campos informados; chaves do mapa são nomes de coluna.
func (r *Repository) UpdateInscricao(ctx context.Context, id int64, campos map[string]any) error {
	if len(campos) == 0 {
		return nil
	}

	sets := make([]string, 0, len(campos))
	args := make([]any, 0, len(campos)+1)
	for _, coluna := range []string{"status", "data_conclusao", "data_prevista", "nota", "aprovado"} {
		valor, ok := campos[coluna]
		if !ok {
			continue
		}
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", coluna, len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE inscricoes SET %s WHERE id_inscricao = $%d`, strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) GetProgresso(ctx context.Context, id int64) (Progresso, error) {
	const query = `
        SELECT id_progresso, id_inscricao, percentual, status, data_conclusao, observacoes
        FROM progressos WHERE id_progresso = $1
    `

	var p Progresso
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.IDProgresso, &p.IDInscricao,
		&p.Percentual, &status, &p.DataConclusao, &p.Observacoes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Progresso{}, ErrNotFound
		}
		return Progresso{}, err
	}
	p.Status = Status(status)
	return p, nil
}

// UpdateProgresso aplica os campos informados; chaves do mapa são nomes de coluna.
func (r *Repository) UpdateProgresso(ctx context.Context, id int64, campos map[string]any) error {
	if len(campos) == 0 {
		return nil
	}

	sets := make([]string, 0, len(campos))
	args := make([]any, 0, len(campos)+1)
	for _, coluna := range []string{"percentual", "status", "data_conclusao", "observacoes"} {
		valor, ok := campos[coluna]
		if !ok {
			continue
		}
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", coluna, len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE progressos SET %s WHERE id_progresso = $%d`, strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) InscricaoExiste(ctx context.Context, id int64) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM inscricoes WHERE id_inscricao = $1)`, id).Scan(&existe)
	return existe, err
}

func (r *Repository) InsertEvidencia(ctx context.Context, e Evidencia) error {
	const query = `
        INSERT INTO evidencias (id_evidencia, id_inscricao, tipo_evidencia, url_arquivo, data_registro, descricao)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.pool.Exec(ctx, query, e.IDEvidencia, e.IDInscricao,
		string(e.TipoEvidencia), e.URLArquivo, e.DataRegistro, e.Descricao)
	return err
}

func (r *Repository) ListEvidencias(ctx context.Context, idInscricao *int64) ([]Evidencia, error) {
	query := `SELECT id_evidencia, id_inscricao, tipo_evidencia, url_arquivo, data_registro, descricao FROM evidencias`
	args := []any{}
	if idInscricao != nil {
		query += ` WHERE id_inscricao = $1`
		args = append(args, *idInscricao)
	}
	query += ` ORDER BY id_evidencia`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evidencias := []Evidencia{}
	for rows.Next() {
		var e Evidencia
		var tipo string
		if err := rows.Scan(&e.IDEvidencia, &e.IDInscricao, &tipo, &e.URLArquivo,
			&e.DataRegistro, &e.Descricao); err != nil {
			return nil, err
		}
		e.TipoEvidencia = TipoEvidencia(tipo)
		evidencias = append(evidencias, e)
	}
	return evidencias, rows.Err()
}
