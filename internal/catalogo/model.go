package catalogo

import "errors"

var (
	// ErrNotFound é retornado quando o curso/trilha não existe.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrConflito marca duplicidade de curso por título+modalidade ou
	// quase-duplicidade entre modalidades.
	ErrConflito = errors.New("conflito de curso")
	// errDuplicado é o sinal interno do repositório para violação do índice
	// único (slug, modalidade).
	errDuplicado = errors.New("curso duplicado")
)

// Modalidade é a forma de entrega do treinamento.
type Modalidade string

const (
	ModalidadePresencial       Modalidade = "presencial"
	ModalidadeOnlineSincrono   Modalidade = "online_sincrono"
	ModalidadeOnlineAssincrono Modalidade = "online_assincrono"
)

// Valid informa se o valor é uma modalidade conhecida.
func (m Modalidade) Valid() bool {
	switch m {
	case ModalidadePresencial, ModalidadeOnlineSincrono, ModalidadeOnlineAssincrono:
		return true
	}
	return false
}

// TipoTreinamento categoriza o treinamento; nr31 é a categoria de segurança
// rural que motiva o sistema.
type TipoTreinamento string

const (
	TipoNR31               TipoTreinamento = "nr31"
	TipoOperacaoMaquinas   TipoTreinamento = "operacao_maquinas"
	TipoAgrotoxicos        TipoTreinamento = "agrotoxicos"
	TipoPrimeirosSocorros  TipoTreinamento = "primeiros_socorros"
	TipoPrevencaoAcidentes TipoTreinamento = "prevencao_acidentes"
	TipoOutros             TipoTreinamento = "outros"
)

// Valid informa se o valor é um tipo de treinamento conhecido.
func (t TipoTreinamento) Valid() bool {
	switch t {
	case TipoNR31, TipoOperacaoMaquinas, TipoAgrotoxicos, TipoPrimeirosSocorros,
		TipoPrevencaoAcidentes, TipoOutros:
		return true
	}
	return false
}

// Curso é a unidade treinável. O slug é derivado do título e serve apenas como
// chave de unicidade; nunca aparece nas respostas.
type Curso struct {
	IDCurso              int64           `json:"id_curso"`
	Titulo               string          `json:"titulo"`
	Descricao            *string         `json:"descricao,omitempty"`
	CargaHoraria         int             `json:"carga_horaria"`
	Modalidade           Modalidade      `json:"modalidade"`
	TipoTreinamento      TipoTreinamento `json:"tipo_treinamento"`
	NormaReferencia      *string         `json:"norma_referencia,omitempty"`
	PublicoAlvo          *string         `json:"publico_alvo,omitempty"`
	Instrutores          *string         `json:"instrutores,omitempty"`
	PermiteAutoInscricao bool            `json:"permite_auto_inscricao"`
	Tags                 []int64         `json:"tags"`
	ConteudoProgramatico *string         `json:"conteudo_programatico,omitempty"`
	Slug                 string          `json:"-"`
}

// Trilha agrupa cursos em uma sequência de aprendizagem.
type Trilha struct {
	IDTrilha    int64   `json:"id_trilha"`
	Titulo      string  `json:"titulo"`
	Descricao   *string `json:"descricao,omitempty"`
	Tags        []int64 `json:"tags"`
	Obrigatoria bool    `json:"obrigatoria"`
}

// Tag categoriza cursos e trilhas. Referências por ID, sem integridade
// referencial: tags removidas deixam IDs pendurados que os leitores toleram.
type Tag struct {
	IDTag int64   `json:"id_tag"`
	Nome  string  `json:"nome"`
	Cor   *string `json:"cor,omitempty"`
}

// CursoTrilha vincula um curso a uma trilha com ordem e pré-requisito. Vínculos
// repetidos para o mesmo par são permitidos; a ordem desambigua.
type CursoTrilha struct {
	IDCursoTrilha  int64  `json:"id_curso_trilha"`
	IDCurso        int64  `json:"id_curso"`
	IDTrilha       int64  `json:"id_trilha"`
	Ordem          int    `json:"ordem"`
	Obrigatorio    bool   `json:"obrigatorio"`
	IDPrerequisito *int64 `json:"id_prerequisito,omitempty"`
}

// CreateCursoInput são os campos aceitos na criação de curso.
type CreateCursoInput struct {
	Titulo               string          `json:"titulo"`
	Descricao            *string         `json:"descricao"`
	CargaHoraria         int             `json:"carga_horaria"`
	Modalidade           Modalidade      `json:"modalidade"`
	TipoTreinamento      TipoTreinamento `json:"tipo_treinamento"`
	NormaReferencia      *string         `json:"norma_referencia"`
	PublicoAlvo          *string         `json:"publico_alvo"`
	Instrutores          *string         `json:"instrutores"`
	PermiteAutoInscricao bool            `json:"permite_auto_inscricao"`
	Tags                 []int64         `json:"tags"`
	ConteudoProgramatico *string         `json:"conteudo_programatico"`
}

// UpdateCursoInput permite atualização parcial. CargaHoraria chega como número
// JSON cru e é coagida para inteiro; valor não coercível é erro de validação.
type UpdateCursoInput struct {
	Titulo               *string          `json:"titulo"`
	Descricao            *string          `json:"descricao"`
	CargaHoraria         *float64         `json:"carga_horaria"`
	Modalidade           *Modalidade      `json:"modalidade"`
	TipoTreinamento      *TipoTreinamento `json:"tipo_treinamento"`
	NormaReferencia      *string          `json:"norma_referencia"`
	PublicoAlvo          *string          `json:"publico_alvo"`
	Instrutores          *string          `json:"instrutores"`
	PermiteAutoInscricao *bool            `json:"permite_auto_inscricao"`
	Tags                 []int64          `json:"tags"`
	ConteudoProgramatico *string          `json:"conteudo_programatico"`
}

// CreateTrilhaInput são os campos aceitos na criação de trilha.
type CreateTrilhaInput struct {
	Titulo      string  `json:"titulo"`
	Descricao   *string `json:"descricao"`
	Tags        []int64 `json:"tags"`
	Obrigatoria bool    `json:"obrigatoria"`
}

// CreateTagInput são os campos aceitos na criação de tag.
type CreateTagInput struct {
	Nome string  `json:"nome"`
	Cor  *string `json:"cor"`
}

// VincularCursoTrilhaInput é o payload do vínculo curso-trilha. Ordem e
// obrigatório assumem os defaults da origem quando omitidos.
type VincularCursoTrilhaInput struct {
	IDCurso        int64  `json:"id_curso"`
	IDTrilha       int64  `json:"id_trilha"`
	Ordem          *int   `json:"ordem"`
	Obrigatorio    *bool  `json:"obrigatorio"`
	IDPrerequisito *int64 `json:"id_prerequisito"`
}
