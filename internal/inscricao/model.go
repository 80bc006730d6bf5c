package inscricao

import (
	"errors"
	"time"
)

var (
	// ErrNotFound é retornado quando a inscrição/progresso não existe.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrCursoNaoEncontrado indica inscrição em curso inexistente.
	ErrCursoNaoEncontrado = errors.New("curso não encontrado")
)

// Status é a situação da inscrição. pendente → em_andamento → concluido é o
// caminho normal; vencido e cancelado são alcançáveis de qualquer estado não
// terminal. concluido, vencido e cancelado são terminais.
type Status string

const (
	StatusPendente    Status = "pendente"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluido   Status = "concluido"
	StatusVencido     Status = "vencido"
	StatusCancelado   Status = "cancelado"
)

// Valid informa se o valor é um status conhecido.
func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusConcluido, StatusVencido, StatusCancelado:
		return true
	}
	return false
}

// Tipo indica como a inscrição foi criada.
type Tipo string

const (
	TipoManual        Tipo = "manual"
	TipoAutoInscricao Tipo = "auto_inscricao"
	TipoAutomatica    Tipo = "automatica"
)

// Valid informa se o valor é um tipo de inscrição conhecido.
func (t Tipo) Valid() bool {
	switch t {
	case TipoManual, TipoAutoInscricao, TipoAutomatica:
		return true
	}
	return false
}

// TipoEvidencia classifica a evidência de participação.
type TipoEvidencia string

const (
	EvidenciaAssinaturaDigital TipoEvidencia = "assinatura_digital"
	EvidenciaQRCode            TipoEvidencia = "qr_code"
	EvidenciaLogAcesso         TipoEvidencia = "log_acesso"
	EvidenciaCertificado       TipoEvidencia = "certificado"
	EvidenciaListaPresenca     TipoEvidencia = "lista_presenca"
)

// Valid informa se o valor é um tipo de evidência conhecido.
func (t TipoEvidencia) Valid() bool {
	switch t {
	case EvidenciaAssinaturaDigital, EvidenciaQRCode, EvidenciaLogAcesso,
		EvidenciaCertificado, EvidenciaListaPresenca:
		return true
	}
	return false
}

// Inscricao registra a participação de um colaborador em um curso. A data de
// inscrição é definida na criação e nunca muda.
type Inscricao struct {
	IDInscricao   int64      `json:"id_inscricao"`
	IDColaborador int64      `json:"id_colaborador"`
	IDCurso       int64      `json:"id_curso"`
	DataInscricao time.Time  `json:"data_inscricao"`
	DataPrevista  *time.Time `json:"data_prevista,omitempty"`
	Status        Status     `json:"status"`
	TipoInscricao Tipo       `json:"tipo_inscricao"`
	DataConclusao *time.Time `json:"data_conclusao,omitempty"`
	Nota          *float64   `json:"nota,omitempty"`
	Aprovado      bool       `json:"aprovado"`
}

// Progresso acompanha a fração concluída de uma inscrição (relação 1:1).
// Status e data de conclusão são espelhos mantidos pelo chamador; este módulo
// não os sincroniza automaticamente com a inscrição.
type Progresso struct {
	IDProgresso   int64      `json:"id_progresso"`
	IDInscricao   int64      `json:"id_inscricao"`
	Percentual    float64    `json:"percentual"`
	Status        Status     `json:"status"`
	DataConclusao *time.Time `json:"data_conclusao,omitempty"`
	Observacoes   *string    `json:"observacoes,omitempty"`
}

// Evidencia comprova participação; registros são append-only.
type Evidencia struct {
	IDEvidencia   int64         `json:"id_evidencia"`
	IDInscricao   int64         `json:"id_inscricao"`
	TipoEvidencia TipoEvidencia `json:"tipo_evidencia"`
	URLArquivo    *string       `json:"url_arquivo,omitempty"`
	DataRegistro  time.Time     `json:"data_registro"`
	Descricao     *string       `json:"descricao,omitempty"`
}

// CreateInscricaoInput são os campos aceitos na criação.
type CreateInscricaoInput struct {
	IDColaborador int64      `json:"id_colaborador"`
	IDCurso       int64      `json:"id_curso"`
	DataPrevista  *time.Time `json:"data_prevista"`
	TipoInscricao Tipo       `json:"tipo_inscricao"`
}

// UpdateInscricaoInput permite atualização parcial da inscrição.
type UpdateInscricaoInput struct {
	Status        *Status    `json:"status"`
	DataConclusao *time.Time `json:"data_conclusao"`
	DataPrevista  *time.Time `json:"data_prevista"`
	Nota          *float64   `json:"nota"`
	Aprovado      *bool      `json:"aprovado"`
}

// UpdateProgressoInput permite atualização parcial do progresso.
type UpdateProgressoInput struct {
	Percentual    *float64   `json:"percentual"`
	Status        *Status    `json:"status"`
	DataConclusao *time.Time `json:"data_conclusao"`
	Observacoes   *string    `json:"observacoes"`
}

// CreateEvidenciaInput são os campos aceitos no registro de evidência.
type CreateEvidenciaInput struct {
	IDInscricao   int64         `json:"id_inscricao"`
	TipoEvidencia TipoEvidencia `json:"tipo_evidencia"`
	URLArquivo    *string       `json:"url_arquivo"`
	Descricao     *string       `json:"descricao"`
}

// ListFilter restringe a listagem de inscrições.
type ListFilter struct {
	IDColaborador *int64
	IDCurso       *int64
	Status        *Status
}
