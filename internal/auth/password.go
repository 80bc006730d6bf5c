package auth

import "github.com/alexedwards/argon2id"

// Parâmetros do Argon2id para senhas de colaborador. Ficam codificados dentro
// do próprio hash, então podem evoluir sem invalidar hashes antigos.
var senhaParams = &argon2id.Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// Hash deriva o hash Argon2id da senha em texto claro.
func Hash(senha string) (string, error) {
	return argon2id.CreateHash(senha, senhaParams)
}

// Verify confere a senha contra um hash gravado, lendo os parâmetros do hash.
func Verify(senha, hash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(senha, hash)
}
