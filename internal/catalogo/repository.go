package catalogo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso às tabelas do catálogo.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const cursoColumns = `id_curso, titulo, descricao, carga_horaria, modalidade, tipo_treinamento, norma_referencia, publico_alvo, instrutores, permite_auto_inscricao, tags, conteudo_programatico, slug`

func scanCurso(row pgx.Row) (Curso, error) {
	var c Curso
	var modalidade, tipo string
	var slug *string
	err := row.Scan(&c.IDCurso, &c.Titulo, &c.Descricao, &c.CargaHoraria, &modalidade, &tipo,
		&c.NormaReferencia, &c.PublicoAlvo, &c.Instrutores, &c.PermiteAutoInscricao,
		&c.Tags, &c.ConteudoProgramatico, &slug)
	if err != nil {
		return Curso{}, err
	}
	c.Modalidade = Modalidade(modalidade)
	c.TipoTreinamento = TipoTreinamento(tipo)
	if slug != nil {
		c.Slug = *slug
	}
	if c.Tags == nil {
		c.Tags = []int64{}
	}
	return c, nil
}

// InsertCurso grava o curso; a violação do índice único (slug, modalidade)
// vira errDuplicado.
func (r *Repository) InsertCurso(ctx context.Context, c Curso) error {
	const query = `
        INSERT INTO cursos (id_curso, titulo, descricao, carga_horaria, modalidade, tipo_treinamento, norma_referencia, publico_alvo, instrutores, permite_auto_inscricao, tags, conteudo_programatico, slug)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err := r.pool.Exec(ctx, query, c.IDCurso, c.Titulo, c.Descricao, c.CargaHoraria,
		string(c.Modalidade), string(c.TipoTreinamento), c.NormaReferencia, c.PublicoAlvo,
		c.Instrutores, c.PermiteAutoInscricao, c.Tags, c.ConteudoProgramatico, c.Slug)
	if err != nil {
		if isUniqueViolation(err) {
			return errDuplicado
		}
		return err
	}
	return nil
}

// ListCargasSimilares devolve as cargas horárias dos cursos com o mesmo slug em
// modalidades diferentes da informada. ignorarID exclui o próprio curso durante
// updates (0 = nenhum).
func (r *Repository) ListCargasSimilares(ctx context.Context, slug string, modalidade Modalidade, ignorarID int64) ([]int, error) {
	const query = `
        SELECT carga_horaria FROM cursos
        WHERE slug = $1 AND modalidade <> $2 AND id_curso <> $3
    `

	rows, err := r.pool.Query(ctx, query, slug, string(modalidade), ignorarID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cargas := []int{}
	for rows.Next() {
		var carga int
		if err := rows.Scan(&carga); err != nil {
			return nil, err
		}
		cargas = append(cargas, carga)
	}
	return cargas, rows.Err()
}

func (r *Repository) GetCurso(ctx context.Context, id int64) (Curso, error) {
	query := fmt.Sprintf(`SELECT %s FROM cursos WHERE id_curso = $1`, cursoColumns)

	c, err := scanCurso(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Curso{}, ErrNotFound
		}
		return Curso{}, err
	}
	return c, nil
}

func (r *Repository) ListCursos(ctx context.Context, tipo *TipoTreinamento) ([]Curso, error) {
	query := fmt.Sprintf(`SELECT %s FROM cursos`, cursoColumns)
	args := []any{}
	if tipo != nil {
		query += ` WHERE tipo_treinamento = $1`
		args = append(args, string(*tipo))
	}
	query += ` ORDER BY id_curso`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cursos := []Curso{}
	for rows.Next() {
		c, err := scanCurso(rows)
		if err != nil {
			return nil, err
		}
		cursos = append(cursos, c)
	}
	return cursos, rows.Err()
}

// UpdateCurso aplica os campos informados; chaves do mapa são nomes de coluna.
func (r *Repository) UpdateCurso(ctx context.Context, id int64, campos map[string]any) error {
	if len(campos) == 0 {
		return nil
	}

	sets := make([]string, 0, len(campos))
	args := make([]any, 0, len(campos)+1)
	for _, coluna := range []string{"titulo", "descricao", "carga_horaria", "modalidade",
		"tipo_treinamento", "norma_referencia", "publico_alvo", "instrutores",
		"permite_auto_inscricao", "tags", "conteudo_programatico", "slug"} {
		valor, ok := campos[coluna]
		if !ok {
			continue
		}
		args = append(args, valor)
		sets = append(sets, fmt.Sprintf("%s = $%d", coluna, len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE cursos SET %s WHERE id_curso = $%d`, strings.Join(sets, ", "), len(args))

	_, err := r.pool.Exec(ctx, query, args...)
	if err != nil && isUniqueViolation(err) {
		return errDuplicado
	}
	return err
}

func (r *Repository) DeleteCurso(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cursos WHERE id_curso = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) InsertTrilha(ctx context.Context, t Trilha) error {
	const query = `
        INSERT INTO trilhas (id_trilha, titulo, descricao, tags, obrigatoria)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pool.Exec(ctx, query, t.IDTrilha, t.Titulo, t.Descricao, t.Tags, t.Obrigatoria)
	return err
}

func (r *Repository) ListTrilhas(ctx context.Context, obrigatoria *bool) ([]Trilha, error) {
	query := `SELECT id_trilha, titulo, descricao, tags, obrigatoria FROM trilhas`
	args := []any{}
	if obrigatoria != nil {
		query += ` WHERE obrigatoria = $1`
		args = append(args, *obrigatoria)
	}
	query += ` ORDER BY id_trilha`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trilhas := []Trilha{}
	for rows.Next() {
		var t Trilha
		if err := rows.Scan(&t.IDTrilha, &t.Titulo, &t.Descricao, &t.Tags, &t.Obrigatoria); err != nil {
			return nil, err
		}
		if t.Tags == nil {
			t.Tags = []int64{}
		}
		trilhas = append(trilhas, t)
	}
	return trilhas, rows.Err()
}

func (r *Repository) DeleteTrilha(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trilhas WHERE id_trilha = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTrilhasDoCurso resolve os vínculos curso-trilha do curso informado.
func (r *Repository) ListTrilhasDoCurso(ctx context.Context, idCurso int64) ([]Trilha, error) {
	const query = `
        SELECT DISTINCT t.id_trilha, t.titulo, t.descricao, t.tags, t.obrigatoria
        FROM trilhas t
        JOIN curso_trilha ct ON ct.id_trilha = t.id_trilha
        WHERE ct.id_curso = $1
        ORDER BY t.id_trilha
    `

	rows, err := r.pool.Query(ctx, query, idCurso)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trilhas := []Trilha{}
	for rows.Next() {
		var t Trilha
		if err := rows.Scan(&t.IDTrilha, &t.Titulo, &t.Descricao, &t.Tags, &t.Obrigatoria); err != nil {
			return nil, err
		}
		if t.Tags == nil {
			t.Tags = []int64{}
		}
		trilhas = append(trilhas, t)
	}
	return trilhas, rows.Err()
}

func (r *Repository) InsertTag(ctx context.Context, t Tag) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO tags (id_tag, nome, cor) VALUES ($1, $2, $3)`,
		t.IDTag, t.Nome, t.Cor)
	return err
}

func (r *Repository) ListTags(ctx context.Context) ([]Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT id_tag, nome, cor FROM tags ORDER BY id_tag`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.IDTag, &t.Nome, &t.Cor); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// InsertCursoTrilha grava o vínculo; pares repetidos são aceitos.
func (r *Repository) InsertCursoTrilha(ctx context.Context, ct CursoTrilha) error {
	const query = `
        INSERT INTO curso_trilha (id_curso_trilha, id_curso, id_trilha, ordem, obrigatorio, id_prerequisito)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.pool.Exec(ctx, query, ct.IDCursoTrilha, ct.IDCurso, ct.IDTrilha,
		ct.Ordem, ct.Obrigatorio, ct.IDPrerequisito)
	return err
}

// isUniqueViolation identifica violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
