package org

import (
	"errors"
	"time"
)

var (
	// ErrNotFound é retornado quando o registro não existe.
	ErrNotFound = errors.New("registro não encontrado")
	// ErrEmailEmUso indica tentativa de cadastro com e-mail já registrado.
	ErrEmailEmUso = errors.New("email já cadastrado")
	// ErrCredenciais indica e-mail ou senha incorretos.
	ErrCredenciais = errors.New("credenciais inválidas")
	// ErrInativo indica login de colaborador desativado.
	ErrInativo = errors.New("colaborador inativo")
)

// Cargo representa uma função ocupada por colaboradores.
type Cargo struct {
	IDCargo    int64   `json:"id_cargo"`
	Nome       string  `json:"nome"`
	Descricao  *string `json:"descricao,omitempty"`
	RequerNR31 bool    `json:"requer_nr31"`
}

// Area representa uma área ou frente de trabalho da empresa.
type Area struct {
	IDArea       int64   `json:"id_area"`
	Nome         string  `json:"nome"`
	Departamento *string `json:"departamento,omitempty"`
	Localizacao  *string `json:"localizacao,omitempty"`
}

// Perfil define um perfil de acesso com sua lista de permissões. Permissões
// repetidas são aceitas; a lista é opaca para este módulo.
type Perfil struct {
	IDPerfil   int64    `json:"id_perfil"`
	Nome       string   `json:"nome"`
	Permissoes []string `json:"permissoes"`
}

// Colaborador é um trabalhador sujeito a treinamentos obrigatórios. O hash de
// senha nunca sai deste pacote.
type Colaborador struct {
	IDColaborador int64      `json:"id_colaborador"`
	Nome          string     `json:"nome"`
	Email         string     `json:"email"`
	CPF           *string    `json:"cpf,omitempty"`
	IDCargo       int64      `json:"id_cargo"`
	IDArea        int64      `json:"id_area"`
	IDPerfil      int64      `json:"id_perfil"`
	IDGestor      *int64     `json:"id_gestor,omitempty"`
	DataAdmissao  *time.Time `json:"data_admissao,omitempty"`
	Ativo         bool       `json:"ativo"`
}

// CreateCargoInput são os campos aceitos no cadastro de cargo.
type CreateCargoInput struct {
	Nome       string  `json:"nome"`
	Descricao  *string `json:"descricao"`
	RequerNR31 bool    `json:"requer_nr31"`
}

// CreateAreaInput são os campos aceitos no cadastro de área.
type CreateAreaInput struct {
	Nome         string  `json:"nome"`
	Departamento *string `json:"departamento"`
	Localizacao  *string `json:"localizacao"`
}

// CreatePerfilInput são os campos aceitos no cadastro de perfil.
type CreatePerfilInput struct {
	Nome       string   `json:"nome"`
	Permissoes []string `json:"permissoes"`
}

// RegisterInput são os campos aceitos no registro de colaborador.
type RegisterInput struct {
	Nome         string     `json:"nome"`
	Email        string     `json:"email"`
	Senha        string     `json:"senha"`
	CPF          *string    `json:"cpf"`
	IDCargo      int64      `json:"id_cargo"`
	IDArea       int64      `json:"id_area"`
	IDPerfil     int64      `json:"id_perfil"`
	IDGestor     *int64     `json:"id_gestor"`
	DataAdmissao *time.Time `json:"data_admissao"`
}

// UpdateColaboradorInput permite atualização parcial; só campos presentes mudam.
type UpdateColaboradorInput struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	CPF      *string `json:"cpf"`
	IDCargo  *int64  `json:"id_cargo"`
	IDArea   *int64  `json:"id_area"`
	IDPerfil *int64  `json:"id_perfil"`
	IDGestor *int64  `json:"id_gestor"`
	Senha    *string `json:"senha"`
	Ativo    *bool   `json:"ativo"`
}

// Credenciais é o payload de login.
type Credenciais struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Token é a resposta do login.
type Token struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Colaborador Colaborador `json:"colaborador"`
}
