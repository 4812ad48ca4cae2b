package redis

import (
	"fmt"

	"github.com/partygamehq/partygame-go/internal/model"
)

func (s *Storage) lobbyKey(code model.LobbyCode) string {
	return fmt.Sprintf("%s:lobby:%s", s.cfg.KeyPrefix, code)
}

func (s *Storage) wordBankKey() string {
	return fmt.Sprintf("%s:wordbank", s.cfg.KeyPrefix)
}
