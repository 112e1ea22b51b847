package domain

import (
	"errors"
	"time"
)

var (
	MessageUserNotFound   = "Usuário não encontrado"
	MessageEmailExists    = "Já existe um usuário cadastrado com este email."
	MessageFailedGetUsers = "Falha ao buscar usuários"
	MessageFailedSaveUser = "Falha ao salvar o usuário"

	MessageWelcomeSubject = "Bem-vindo ao Receitas"

	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
)

type (
	UserRequest struct {
		Username string `json:"nome_usuario" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email,max=120"`
		Password string `json:"senha" validate:"required,bcrypt,password"`
	}

	UserResponse struct {
		ID        uint      `json:"id"`
		Username  string    `json:"nome_usuario"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
