package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize converte um título em uma chave de comparação estável, insensível a
// caixa e acentos. A chave é usada apenas para detectar duplicidade de cursos,
// nunca para exibição. A função é idempotente.
func Normalize(titulo string) string {
	t := strings.ToLower(strings.TrimSpace(titulo))
	if t == "" {
		return ""
	}

	t = norm.NFKD.String(t)

	var b strings.Builder
	b.Grow(len(t))
	pendingSep := false
	for _, r := range t {
		switch {
		case unicode.Is(unicode.Mn, r):
			// marca de acento decomposta pelo NFKD, descartada
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || strings.ContainsRune("-_./", r):
			pendingSep = true
		}
	}

	return b.String()
}
