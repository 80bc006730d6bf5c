package auditoria

import "time"

// Acao identifica o tipo de operação auditada.
type Acao string

const (
	AcaoCreate        Acao = "CREATE"
	AcaoUpdate        Acao = "UPDATE"
	AcaoDelete        Acao = "DELETE"
	AcaoLogin         Acao = "LOGIN"
	AcaoLogout        Acao = "LOGOUT"
	AcaoSincronizacao Acao = "SINCRONIZACAO"
)

// Entrada é um registro imutável da trilha de auditoria. Nunca é alterada nem
// removida depois de gravada.
type Entrada struct {
	IDAuditoria       int64     `json:"id_auditoria"`
	IDColaboradorAcao int64     `json:"id_colaborador_acao"`
	Acao              Acao      `json:"acao"`
	NomeTabela        string    `json:"nome_tabela"`
	IDRegistroAfetado *int64    `json:"id_registro_afetado,omitempty"`
	IPOrigem          *string   `json:"ip_origem,omitempty"`
	DadosAntigos      *string   `json:"dados_antigos,omitempty"`
	DadosNovos        *string   `json:"dados_novos,omitempty"`
	DataHora          time.Time `json:"data_hora"`
}

// NovaEntrada são os campos fornecidos pelo chamador; id e data são atribuídos
// no registro.
type NovaEntrada struct {
	IDColaboradorAcao int64
	Acao              Acao
	NomeTabela        string
	IDRegistroAfetado *int64
	IPOrigem          *string
	DadosAntigos      *string
	DadosNovos        *string
}
