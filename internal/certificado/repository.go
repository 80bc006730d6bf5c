package certificado

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela de certificados.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InscricaoExiste verifica se a inscrição referenciada existe.
func (r *Repository) InscricaoExiste(ctx context.Context, idInscricao int64) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM inscricoes WHERE id_inscricao = $1)`, idInscricao).Scan(&existe)
	return existe, err
}

func (r *Repository) Insert(ctx context.Context, c Certificado) error {
	const query = `
        INSERT INTO certificados (id_certificado, id_inscricao, codigo_certificado, data_emissao, data_validade, url_pdf, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.pool.Exec(ctx, query, c.IDCertificado, c.IDInscricao, c.CodigoCertificado,
		c.DataEmissao, c.DataValidade, c.URLPdf, string(c.Status))
	return err
}

func (r *Repository) List(ctx context.Context, filtro ListFilter) ([]Certificado, error) {
	query := `SELECT id_certificado, id_inscricao, codigo_certificado, data_emissao, data_validade, url_pdf, status FROM certificados`
	where := []string{}
	args := []any{}

	if filtro.IDInscricao != nil {
		args = append(args, *filtro.IDInscricao)
		where = append(where, fmt.Sprintf("id_inscricao = $%d", len(args)))
	}
	if filtro.Status != nil {
		args = append(args, string(*filtro.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id_certificado`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certificados := []Certificado{}
	for rows.Next() {
		var c Certificado
		var status string
		if err := rows.Scan(&c.IDCertificado, &c.IDInscricao, &c.CodigoCertificado,
			&c.DataEmissao, &c.DataValidade, &c.URLPdf, &status); err != nil {
			return nil, err
		}
		c.Status = Status(status)
		certificados = append(certificados, c)
	}
	return certificados, rows.Err()
}
