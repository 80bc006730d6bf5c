package regras

import (
	"context"
	"time"

	"github.com/techsolutions/treinamentos/internal/util"
)

// Prazo padrão de alerta antes do vencimento do certificado, em dias.
const alertaPadraoDias = 30

// Sequencer aloca IDs sequenciais por coleção.
type Sequencer interface {
	Next(ctx context.Context, colecao string) (int64, error)
}

// RuleRepository é o acesso a dados consumido pelo serviço.
type RuleRepository interface {
	Insert(ctx context.Context, regra Regra) error
	List(ctx context.Context) ([]Regra, error)
	Delete(ctx context.Context, id int64) error
	ListColaboradoresAtivos(ctx context.Context) ([]ColaboradorEscopo, error)
	ListConclusoes(ctx context.Context) ([]Conclusao, error)
	ListVinculosTrilha(ctx context.Context) ([]VinculoTrilha, error)
}

// Service mantém as regras de treinamento obrigatório e deriva pendências.
type Service struct {
	repo  RuleRepository
	seq   Sequencer
	agora func() time.Time
}

func NewService(repo RuleRepository, seq Sequencer) *Service {
	return &Service{repo: repo, seq: seq, agora: time.Now}
}

// CreateRegra registra uma regra nova; curso ou trilha é obrigatório.
func (s *Service) CreateRegra(ctx context.Context, in CreateRegraInput) (Regra, error) {
	if in.IDCurso == nil && in.IDTrilha == nil {
		return Regra{}, util.Invalid("Deve especificar id_curso ou id_trilha")
	}
	if in.ValidadeCertificadoMeses <= 0 {
		return Regra{}, util.Invalid("validade_certificado_meses deve ser positiva")
	}

	id, err := s.seq.Next(ctx, "regras_obrigatorias")
	if err != nil {
		return Regra{}, err
	}

	alerta := alertaPadraoDias
	if in.AlertaVencimentoDias != nil {
		alerta = *in.AlertaVencimentoDias
	}

	regra := Regra{
		IDRegra:                  id,
		IDCurso:                  in.IDCurso,
		IDTrilha:                 in.IDTrilha,
		IDCargo:                  in.IDCargo,
		IDArea:                   in.IDArea,
		ValidadeCertificadoMeses: in.ValidadeCertificadoMeses,
		AlertaVencimentoDias:     alerta,
		Descricao:                in.Descricao,
	}

	if err := s.repo.Insert(ctx, regra); err != nil {
		return Regra{}, err
	}
	return regra, nil
}

func (s *Service) ListRegras(ctx context.Context) ([]Regra, error) {
	return s.repo.List(ctx)
}

func (s *Service) DeleteRegra(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Pendencias cruza regras, colaboradores ativos e inscrições concluídas e
// devolve quem está descoberto. Um colaborador cobre uma regra quando tem
// conclusão no curso da regra, ou em algum curso da trilha, cuja data de
// conclusão mais a validade em meses ainda não passou.
func (s *Service) Pendencias(ctx context.Context) ([]Pendencia, error) {
	regras, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	colaboradores, err := s.repo.ListColaboradoresAtivos(ctx)
	if err != nil {
		return nil, err
	}
	conclusoes, err := s.repo.ListConclusoes(ctx)
	if err != nil {
		return nil, err
	}
	vinculos, err := s.repo.ListVinculosTrilha(ctx)
	if err != nil {
		return nil, err
	}

	cursosPorTrilha := map[int64][]int64{}
	for _, v := range vinculos {
		cursosPorTrilha[v.IDTrilha] = append(cursosPorTrilha[v.IDTrilha], v.IDCurso)
	}

	type chave struct {
		colaborador int64
		curso       int64
	}
	conclusoesPorChave := map[chave][]Conclusao{}
	for _, c := range conclusoes {
		k := chave{colaborador: c.IDColaborador, curso: c.IDCurso}
		conclusoesPorChave[k] = append(conclusoesPorChave[k], c)
	}

	agora := s.agora().UTC()
	pendencias := []Pendencia{}

	for _, regra := range regras {
		cursos := cursosDaRegra(regra, cursosPorTrilha)

		for _, colaborador := range colaboradores {
			if !regraAplica(regra, colaborador) {
				continue
			}

			motivo := MotivoSemConclusao
			coberto := false
			for _, idCurso := range cursos {
				for _, conclusao := range conclusoesPorChave[chave{colaborador: colaborador.IDColaborador, curso: idCurso}] {
					if conclusao.DataConclusao == nil {
						continue
					}
					motivo = MotivoCertificadoVencido
					validade := conclusao.DataConclusao.AddDate(0, regra.ValidadeCertificadoMeses, 0)
					if validade.After(agora) {
						coberto = true
						break
					}
				}
				if coberto {
					break
				}
			}

			if !coberto {
				pendencias = append(pendencias, Pendencia{
					IDColaborador:   colaborador.IDColaborador,
					NomeColaborador: colaborador.Nome,
					IDRegra:         regra.IDRegra,
					IDCurso:         regra.IDCurso,
					IDTrilha:        regra.IDTrilha,
					Motivo:          motivo,
				})
			}
		}
	}

	return pendencias, nil
}

// cursosDaRegra resolve os cursos que satisfazem a regra: o curso direto e/ou
// os cursos vinculados à trilha.
func cursosDaRegra(regra Regra, cursosPorTrilha map[int64][]int64) []int64 {
	cursos := []int64{}
	if regra.IDCurso != nil {
		cursos = append(cursos, *regra.IDCurso)
	}
	if regra.IDTrilha != nil {
		cursos = append(cursos, cursosPorTrilha[*regra.IDTrilha]...)
	}
	return cursos
}

// regraAplica decide se a regra alcança o colaborador. Filtro ausente casa com
// qualquer valor; filtro presente exige igualdade exata.
func regraAplica(regra Regra, colaborador ColaboradorEscopo) bool {
	if regra.IDCargo != nil {
		if colaborador.IDCargo == nil || *colaborador.IDCargo != *regra.IDCargo {
			return false
		}
	}
	if regra.IDArea != nil {
		if colaborador.IDArea == nil || *colaborador.IDArea != *regra.IDArea {
			return false
		}
	}
	return true
}
