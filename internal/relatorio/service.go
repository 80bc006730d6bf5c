package relatorio

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "relatorio:dashboard"

// StatsRepository é o acesso a dados consumido pelo serviço.
type StatsRepository interface {
	Contar(ctx context.Context) (Contagens, error)
}

// Service deriva as estatísticas do painel, com cache curto em Redis.
type Service struct {
	repo  StatsRepository
	cache *redis.Client
}

func NewService(repo StatsRepository, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

// DashboardStats calcula os totais e a taxa de conclusão. A taxa é
// concluídas/total em percentual, arredondada a duas casas, e zero quando não
// há inscrições.
func (s *Service) DashboardStats(ctx context.Context) (Stats, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var stats Stats
			if json.Unmarshal(data, &stats) == nil {
				return stats, nil
			}
		}
	}

	contagens, err := s.repo.Contar(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		TotalCursos:          contagens.TotalCursos,
		TotalColaboradores:   contagens.TotalColaboradores,
		TotalInscricoes:      contagens.TotalInscricoes,
		InscricoesConcluidas: contagens.InscricoesConcluidas,
		InscricoesPendentes:  contagens.InscricoesPendentes,
		CertificadosVencidos: contagens.CertificadosVencidos,
		TaxaConclusao:        taxaConclusao(contagens.InscricoesConcluidas, contagens.TotalInscricoes),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			_ = s.cache.Set(ctx, cacheKey, payload, 30*time.Second).Err()
		}
	}

	return stats, nil
}

// taxaConclusao devolve concluidas/total como percentual com duas casas.
func taxaConclusao(concluidas, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(concluidas)/float64(total)*100*100) / 100
}
