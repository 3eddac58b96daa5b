package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CulturalTours/internal/config"
)

// ErrInvalidCredentials возвращается при неверном логине или пароле
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service проверяет статические учетные данные администратора
type Service struct {
	username     string
	password     string
	passwordHash []byte
	logger       Logger
}

// NewService создает сервис проверки учетных данных
// Если в конфиге задан bcrypt-хеш, открытый пароль не используется
func NewService(cfg config.AdminConfig, logger Logger) *Service {
	s := &Service{username: cfg.Username, logger: logger}
	if cfg.PasswordHash != "" {
		s.passwordHash = []byte(cfg.PasswordHash)
	} else {
		s.password = cfg.Password
	}
	return s
}

// Authenticate сверяет логин и пароль
func (s *Service) Authenticate(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if s.passwordHash != nil {
		passOK = bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	if !userOK || !passOK {
		s.logger.Warn("Authenticate: invalid credentials for username=%q", username)
		return ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: admin %q logged in", username)
	return nil
}
