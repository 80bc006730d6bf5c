package slug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		entrada string
		want    string
	}{
		{"minusculas", "Segurança Rural", "seguranca-rural"},
		{"acentos", "Operação de Máquinas Agrícolas", "operacao-de-maquinas-agricolas"},
		{"separadores", "NR-31/Módulo_Básico.v2", "nr-31-modulo-basico-v2"},
		{"espacos nas pontas", "  Primeiros Socorros  ", "primeiros-socorros"},
		{"separadores repetidos", "uso -- seguro // de   agrotóxicos", "uso-seguro-de-agrotoxicos"},
		{"vazio", "", ""},
		{"so separadores", " -_./ ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.entrada))
		})
	}
}

func TestNormalizeIdempotente(t *testing.T) {
	entradas := []string{"Segurança Rural", "Café", "NR-31 / Operação", "já-normalizado"}
	for _, entrada := range entradas {
		uma := Normalize(entrada)
		require.Equal(t, uma, Normalize(uma))
	}
}

func TestNormalizeCaseEAcentoInsensivel(t *testing.T) {
	require.Equal(t, Normalize("cafe"), Normalize("Café"))
	require.Equal(t, Normalize("SEGURANÇA RURAL"), Normalize("segurança rural"))
}
