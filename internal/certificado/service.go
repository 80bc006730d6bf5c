package certificado

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techsolutions/treinamentos/internal/util"
)

// Sequencer aloca IDs sequenciais por coleção.
type Sequencer interface {
	Next(ctx context.Context, colecao string) (int64, error)
}

// CertificateRepository é o acesso a dados consumido pelo serviço.
type CertificateRepository interface {
	InscricaoExiste(ctx context.Context, idInscricao int64) (bool, error)
	Insert(ctx context.Context, c Certificado) error
	List(ctx context.Context, filtro ListFilter) ([]Certificado, error)
}

// Service emite e lista certificados.
type Service struct {
	repo CertificateRepository
	seq  Sequencer
}

func NewService(repo CertificateRepository, seq Sequencer) *Service {
	return &Service{repo: repo, seq: seq}
}

// novoCodigo gera o código curto de verificação, 8 caracteres maiúsculos.
func novoCodigo() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Emitir cria um certificado ativo para uma inscrição existente. A inscrição
// não precisa estar concluída; cabe ao chamador decidir quando emitir, e
// emissões repetidas para a mesma inscrição são permitidas.
func (s *Service) Emitir(ctx context.Context, in EmitirInput) (Certificado, error) {
	if in.IDInscricao == 0 {
		return Certificado{}, util.Invalid("id_inscricao é obrigatório")
	}

	existe, err := s.repo.InscricaoExiste(ctx, in.IDInscricao)
	if err != nil {
		return Certificado{}, err
	}
	if !existe {
		return Certificado{}, ErrInscricaoNaoEncontrada
	}

	id, err := s.seq.Next(ctx, "certificados")
	if err != nil {
		return Certificado{}, err
	}

	certificado := Certificado{
		IDCertificado:     id,
		IDInscricao:       in.IDInscricao,
		CodigoCertificado: novoCodigo(),
		DataEmissao:       time.Now().UTC(),
		DataValidade:      in.DataValidade,
		URLPdf:            in.URLPdf,
		Status:            StatusAtivo,
	}

	if err := s.repo.Insert(ctx, certificado); err != nil {
		return Certificado{}, err
	}
	return certificado, nil
}

func (s *Service) List(ctx context.Context, filtro ListFilter) ([]Certificado, error) {
	if filtro.Status != nil && !filtro.Status.Valid() {
		return nil, util.Invalid("status inválido")
	}
	return s.repo.List(ctx, filtro)
}
