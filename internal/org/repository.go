package org

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso às tabelas organizacionais.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) InsertCargo(ctx context.Context, c Cargo) error {
	const query = `
        INSERT INTO cargos (id_cargo, nome, descricao, requer_nr31)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.pool.Exec(ctx, query, c.IDCargo, c.Nome, c.Descricao, c.RequerNR31)
	return err
}

func (r *Repository) ListCargos(ctx context.Context) ([]Cargo, error) {
	const query = `SELECT id_cargo, nome, descricao, requer_nr31 FROM cargos ORDER BY id_cargo`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cargos := []Cargo{}
	for rows.Next() {
		var c Cargo
		if err := rows.Scan(&c.IDCargo, &c.Nome, &c.Descricao, &c.RequerNR31); err != nil {
			return nil, err
		}
		cargos = append(cargos, c)
	}
	return cargos, rows.Err()
}

func (r *Repository) DeleteCargo(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cargos WHERE id_cargo = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) InsertArea(ctx context.Context, a Area) error {
	const query = `
        INSERT INTO areas (id_area, nome, departamento, localizacao)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.pool.Exec(ctx, query, a.IDArea, a.Nome, a.Departamento, a.Localizacao)
	return err
}

func (r *Repository) ListAreas(ctx context.Context) ([]Area, error) {
	const query = `SELECT id_area, nome, departamento, localizacao FROM areas ORDER BY id_area`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := []Area{}
	for rows.Next() {
		var a Area
		if err := rows.Scan(&a.IDArea, &a.Nome, &a.Departamento, &a.Localizacao); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

func (r *Repository) DeleteArea(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM areas WHERE id_area = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) InsertPerfil(ctx context.Context, p Perfil) error {
	const query = `
        INSERT INTO perfis (id_perfil, nome, permissoes)
        VALUES ($1, $2, $3)
    `
	_, err := r.pool.Exec(ctx, query, p.IDPerfil, p.Nome, p.Permissoes)
	return err
}

func (r *Repository) ListPerfis(ctx context.Context) ([]Perfil, error) {
	const query = `SELECT id_perfil, nome, permissoes FROM perfis ORDER BY id_perfil`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perfis := []Perfil{}
	for rows.Next() {
		var p Perfil
		if err := rows.Scan(&p.IDPerfil, &p.Nome, &p.Permissoes); err != nil {
			return nil, err
		}
		if p.Permissoes == nil {
			p.Permissoes = []string{}
		}
		perfis = append(perfis, p)
	}
	return perfis, rows.Err()
}

const colaboradorColumns = `id_colaborador, nome, email, cpf, id_cargo, id_area, id_perfil, id_gestor, data_admissao, ativo`

func scanColaborador(row pgx.Row) (Colaborador, error) {
	var c Colaborador
	err := row.Scan(&c.IDColaborador, &c.Nome, &c.Email, &c.CPF, &c.IDCargo,
		&c.IDArea, &c.IDPerfil, &c.IDGestor, &c.DataAdmissao, &c.Ativo)
	return c, err
}

// InsertColaborador grava o colaborador com o hash de senha. E-mail duplicado
// vira ErrEmailEmUso pela constraint única.
func (r *Repository) InsertColaborador(ctx context.Context, c Colaborador, senhaHash string) error {
	const query = `
        INSERT INTO colaboradores (id_colaborador, nome, email, cpf, senha_hash, id_cargo, id_area, id_perfil, id_gestor, data_admissao, ativo)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.pool.Exec(ctx, query, c.IDColaborador, c.Nome, c.Email, c.CPF, senhaHash,
		c.IDCargo, c.IDArea, c.IDPerfil, c.IDGestor, c.DataAdmissao, c.Ativo)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailEmUso
		}
		return err
	}
	return nil
}

// GetColaboradorByEmail devolve o colaborador e o hash de senha para login.
func (r *Repository) GetColaboradorByEmail(ctx context.Context, email string) (Colaborador, string, error) {
	query := fmt.Sprintf(`SELECT %s, senha_hash FROM colaboradores WHERE email = $1`, colaboradorColumns)

	var c Colaborador
	var hash string
	err := r.pool.QueryRow(ctx, query, email).Scan(&c.IDColaborador, &c.Nome, &c.Email, &c.CPF,
		&c.IDCargo, &c.IDArea, &c.IDPerfil, &c.IDGestor, &c.DataAdmissao, &c.Ativo, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Colaborador{}, "", ErrNotFound
		}
		return Colaborador{}, "", err
	}
	return c, hash, nil
}

func (r *Repository) GetColaborador(ctx context.Context, id int64) (Colaborador, error) {
	query := fmt.Sprintf(`SELECT %s FROM colaboradores WHERE id_colaborador = $1`, colaboradorColumns)

	c, err := scanColaborador(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Colaborador{}, ErrNotFound
		}
		return Colaborador{}, err
	}
	return c, nil
}

func (r *Repository) ListColaboradores(ctx context.Context, ativo *bool) ([]Colaborador, error) {
	query := fmt.Sprintf(`SELECT %s FROM colaboradores`, colaboradorColumns)
	args := []any{}
	if ativo != nil {
		query += ` WHERE ativo = $1`
		args = append(args, *ativo)
	}
	query += ` ORDER BY id_colaborador`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	colaboradores := []Colaborador{}
	for rows.Next() {
		c, err := scanColaborador(rows)
		if err != nil {
			return nil, err
		}
		colaboradores = append(colaboradores, c)
	}
	return colaboradores, rows.Err()
}

// UpdateColaborador aplica atualização parcial; senhaHash vazio preserva a senha.
func (r *Repository) UpdateColaborador(ctx context.Context, id int64, in UpdateColaboradorInput, senhaHash string) (Colaborador, error) {
	sets := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Nome != nil {
		add("nome", *in.Nome)
	}
	if in.Email != nil {
		add("email", *in.Email)
	}
	if in.CPF != nil {
		add("cpf", *in.CPF)
	}
	if in.IDCargo != nil {
		add("id_cargo", *in.IDCargo)
	}
	if in.IDArea != nil {
		add("id_area", *in.IDArea)
	}
	if in.IDPerfil != nil {
		add("id_perfil", *in.IDPerfil)
	}
	if in.IDGestor != nil {
		add("id_gestor", *in.IDGestor)
	}
	if senhaHash != "" {
		add("senha_hash", senhaHash)
	}
	if in.Ativo != nil {
		add("ativo", *in.Ativo)
	}

	if len(sets) == 0 {
		return r.GetColaborador(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE colaboradores SET %s WHERE id_colaborador = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return Colaborador{}, ErrEmailEmUso
		}
		return Colaborador{}, err
	}
	if tag.RowsAffected() == 0 {
		return Colaborador{}, ErrNotFound
	}
	return r.GetColaborador(ctx, id)
}

// isUniqueViolation identifica violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
