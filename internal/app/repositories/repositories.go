package repositories

import (
	"strings"

	"github.com/yigit/coursepass/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccessCodeRepository IAccessCodeRepository
	SessionRepository    ISessionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(conn db.TxBeginner) *Repositories {
	return &Repositories{
		AccessCodeRepository: NewAccessCodeRepository(conn),
		SessionRepository:    NewSessionRepository(conn),
	}
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
