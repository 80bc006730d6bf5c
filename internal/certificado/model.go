package certificado

import (
	"errors"
	"time"
)

// ErrInscricaoNaoEncontrada indica emissão para inscrição inexistente.
var ErrInscricaoNaoEncontrada = errors.New("inscrição não encontrada")

// Status é a situação do certificado.
type Status string

const (
	StatusAtivo     Status = "ativo"
	StatusVencido   Status = "vencido"
	StatusCancelado Status = "cancelado"
)

// Valid informa se o valor é um status conhecido.
func (s Status) Valid() bool {
	switch s {
	case StatusAtivo, StatusVencido, StatusCancelado:
		return true
	}
	return false
}

// Certificado comprova a conclusão de um treinamento. O código é um
// identificador curto para verificação manual; não há garantia formal de
// unicidade, a chave primária continua sendo o ID.
type Certificado struct {
	IDCertificado     int64      `json:"id_certificado"`
	IDInscricao       int64      `json:"id_inscricao"`
	CodigoCertificado string     `json:"codigo_certificado"`
	DataEmissao       time.Time  `json:"data_emissao"`
	DataValidade      *time.Time `json:"data_validade,omitempty"`
	URLPdf            *string    `json:"url_pdf,omitempty"`
	Status            Status     `json:"status"`
}

// EmitirInput são os campos aceitos na emissão.
type EmitirInput struct {
	IDInscricao  int64      `json:"id_inscricao"`
	DataValidade *time.Time `json:"data_validade"`
	URLPdf       *string    `json:"url_pdf"`
}

// ListFilter restringe a listagem de certificados.
type ListFilter struct {
	IDInscricao *int64
	Status      *Status
}
