package regras

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ColaboradorEscopo é a projeção de colaborador usada no cálculo de pendências.
type ColaboradorEscopo struct {
	IDColaborador int64
	Nome          string
	IDCargo       *int64
	IDArea        *int64
}

// Conclusao é uma inscrição concluída, projetada para o cálculo de pendências.
type Conclusao struct {
	IDColaborador int64
	IDCurso       int64
	DataConclusao *time.Time
}

// VinculoTrilha é o par trilha-curso vindo de curso_trilha.
type VinculoTrilha struct {
	IDTrilha int64
	IDCurso  int64
}

// Repository provê acesso à tabela de regras e às projeções de conformidade.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, regra Regra) error {
	const query = `
        INSERT INTO regras_obrigatorias (id_regra, id_curso, id_trilha, id_cargo, id_area, validade_certificado_meses, alerta_vencimento_dias, descricao)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.pool.Exec(ctx, query, regra.IDRegra, regra.IDCurso, regra.IDTrilha,
		regra.IDCargo, regra.IDArea, regra.ValidadeCertificadoMeses, regra.AlertaVencimentoDias, regra.Descricao)
	return err
}

func (r *Repository) List(ctx context.Context) ([]Regra, error) {
	const query = `
        SELECT id_regra, id_curso, id_trilha, id_cargo, id_area, validade_certificado_meses, alerta_vencimento_dias, descricao
        FROM regras_obrigatorias ORDER BY id_regra
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regras := []Regra{}
	for rows.Next() {
		var regra Regra
		if err := rows.Scan(&regra.IDRegra, &regra.IDCurso, &regra.IDTrilha, &regra.IDCargo,
			&regra.IDArea, &regra.ValidadeCertificadoMeses, &regra.AlertaVencimentoDias, &regra.Descricao); err != nil {
			return nil, err
		}
		regras = append(regras, regra)
	}
	return regras, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM regras_obrigatorias WHERE id_regra = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListColaboradoresAtivos(ctx context.Context) ([]ColaboradorEscopo, error) {
	const query = `
        SELECT id_colaborador, nome, id_cargo, id_area FROM colaboradores WHERE ativo = TRUE
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colaboradores := []ColaboradorEscopo{}
	for rows.Next() {
		var c ColaboradorEscopo
		if err := rows.Scan(&c.IDColaborador, &c.Nome, &c.IDCargo, &c.IDArea); err != nil {
			return nil, err
		}
		colaboradores = append(colaboradores, c)
	}
	return colaboradores, rows.Err()
}

func (r *Repository) ListConclusoes(ctx context.Context) ([]Conclusao, error) {
	const query = `
        SELECT id_colaborador, id_curso, data_conclusao FROM inscricoes WHERE status = 'concluido'
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conclusoes := []Conclusao{}
	for rows.Next() {
		var c Conclusao
		if err := rows.Scan(&c.IDColaborador, &c.IDCurso, &c.DataConclusao); err != nil {
			return nil, err
		}
		conclusoes = append(conclusoes, c)
	}
	return conclusoes, rows.Err()
}

func (r *Repository) ListVinculosTrilha(ctx context.Context) ([]VinculoTrilha, error) {
	rows, err := r.pool.Query(ctx, `SELECT id_trilha, id_curso FROM curso_trilha`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vinculos := []VinculoTrilha{}
	for rows.Next() {
		var v VinculoTrilha
		if err := rows.Scan(&v.IDTrilha, &v.IDCurso); err != nil {
			return nil, err
		}
		vinculos = append(vinculos, v)
	}
	return vinculos, rows.Err()
}
