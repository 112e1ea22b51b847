package user

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"Go-Receitas-API/domain"
	"Go-Receitas-API/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendMail(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return m.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "usuarios.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestService(t *testing.T, mailer *fakeMailer) (UserService, UserRepository) {
	t.Helper()
	repo := NewUserRepository(newTestDB(t))
	return NewUserService(repo, mailer, "http://localhost:8000"), repo
}

func userRequest(name, email string) domain.UserRequest {
	return domain.UserRequest{Username: name, Email: email, Password: "Senha123"}
}

func TestUserServiceCreate(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	s, repo := newTestService(t, mailer)

	created, err := s.CreateUser(ctx, userRequest("teste_user", "Teste@Email.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "teste_user", created.Username)
	assert.Equal(t, "teste@email.com", created.Email)

	stored, err := repo.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Senha123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Senha123")))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "teste@email.com", mailer.sent[0].to)
	assert.Equal(t, domain.MessageWelcomeSubject, mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "teste_user")

	_, err = s.CreateUser(ctx, userRequest("outro", "TESTE@email.com"))
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestUserServiceCreateIgnoresMailFailure(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	s, _ := newTestService(t, mailer)

	created, err := s.CreateUser(context.Background(), userRequest("ana", "ana@email.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestUserServiceUpdate(t *testing.T) {
	ctx := context.Background()
	s, repo := newTestService(t, &fakeMailer{})

	ana, err := s.CreateUser(ctx, userRequest("ana", "ana@email.com"))
	require.NoError(t, err)
	bia, err := s.CreateUser(ctx, userRequest("bia", "bia@email.com"))
	require.NoError(t, err)

	t.Run("keeps own email", func(t *testing.T) {
		req := userRequest("ana_maria", "ANA@email.com")
		req.Password = "NovaSenha9"
		updated, err := s.UpdateUser(ctx, ana.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "ana_maria", updated.Username)
		assert.Equal(t, "ana@email.com", updated.Email)

		stored, err := repo.GetUserByID(ctx, ana.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("NovaSenha9")))
	})

	t.Run("email of another user", func(t *testing.T) {
		_, err := s.UpdateUser(ctx, ana.ID, userRequest("ana", bia.Email))
		assert.ErrorIs(t, err, domain.ErrEmailExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.UpdateUser(ctx, 999, userRequest("ninguem", "ninguem@email.com"))
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserServiceDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t, &fakeMailer{})

	created, err := s.CreateUser(ctx, userRequest("teste_user", "teste@email.com"))
	require.NoError(t, err)

	deleted, err := s.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "teste@email.com", deleted.Email)

	_, err = s.GetUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = s.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@email.com", NormalizeEmail("  Ana@Email.COM "))
}
