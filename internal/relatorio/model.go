package relatorio

// Stats é o resumo do painel de conformidade.
type Stats struct {
	TotalCursos          int64   `json:"total_cursos"`
	TotalColaboradores   int64   `json:"total_colaboradores"`
	TotalInscricoes      int64   `json:"total_inscricoes"`
	InscricoesConcluidas int64   `json:"inscricoes_concluidas"`
	InscricoesPendentes  int64   `json:"inscricoes_pendentes"`
	CertificadosVencidos int64   `json:"certificados_vencidos"`
	TaxaConclusao        float64 `json:"taxa_conclusao"`
}
