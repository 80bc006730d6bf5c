package regras

import "errors"

// ErrNotFound é retornado quando a regra não existe.
var ErrNotFound = errors.New("regra não encontrada")

// Regra vincula um curso ou trilha obrigatória a um escopo organizacional.
// Pelo menos um de IDCurso/IDTrilha é exigido; cargo e área são filtros
// opcionais, ausentes significa aplicável a toda a empresa.
type Regra struct {
	IDRegra                  int64   `json:"id_regra"`
	IDCurso                  *int64  `json:"id_curso,omitempty"`
	IDTrilha                 *int64  `json:"id_trilha,omitempty"`
	IDCargo                  *int64  `json:"id_cargo,omitempty"`
	IDArea                   *int64  `json:"id_area,omitempty"`
	ValidadeCertificadoMeses int     `json:"validade_certificado_meses"`
	AlertaVencimentoDias     int     `json:"alerta_vencimento_dias"`
	Descricao                *string `json:"descricao,omitempty"`
}

// CreateRegraInput são os campos aceitos na criação.
type CreateRegraInput struct {
	IDCurso                  *int64  `json:"id_curso"`
	IDTrilha                 *int64  `json:"id_trilha"`
	IDCargo                  *int64  `json:"id_cargo"`
	IDArea                   *int64  `json:"id_area"`
	ValidadeCertificadoMeses int     `json:"validade_certificado_meses"`
	AlertaVencimentoDias     *int    `json:"alerta_vencimento_dias"`
	Descricao                *string `json:"descricao"`
}

// Pendencia aponta um colaborador sem cobertura válida para uma regra.
type Pendencia struct {
	IDColaborador   int64  `json:"id_colaborador"`
	NomeColaborador string `json:"nome_colaborador"`
	IDRegra         int64  `json:"id_regra"`
	IDCurso         *int64 `json:"id_curso,omitempty"`
	IDTrilha        *int64 `json:"id_trilha,omitempty"`
	Motivo          string `json:"motivo"`
}

// Motivos de pendência.
const (
	MotivoSemConclusao       = "sem_conclusao"
	MotivoCertificadoVencido = "certificado_vencido"
)
