package store

import (
	"time"

	"github.com/google/uuid"

	"ferresur/internal/domain"
)

// UpsertClient records the latest chat contact per phone number and
// bumps its message count. Whole-collection rewrite like every other
// mutation here.
func (s *Store) UpsertClient(phone, message string) error {
	clients, err := s.Clients()
	if err != nil {
		return err
	}
	now := time.Now().Format(time.RFC3339)
	for i := range clients {
		if clients[i].Phone == phone {
			clients[i].LastMessage = message
			clients[i].LastSeen = now
			clients[i].Messages++
			return s.SaveClients(clients)
		}
	}
	clients = append(clients, domain.Client{
		ID:          uuid.NewString(),
		Phone:       phone,
		LastMessage: message,
		LastSeen:    now,
		Messages:    1,
	})
	return s.SaveClients(clients)
}
