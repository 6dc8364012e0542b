package blackjack

import (
	"context"

	bj "goldchip_backend/internal/game/blackjack"
	"goldchip_backend/internal/service"
)

// State returns the player's current round snapshot without mutating it.
// The dealer's hole card stays hidden while the round is active.
func (s *serv) State(ctx context.Context, userID int) (*bj.Snapshot, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.round == nil {
		return nil, service.ErrNoActiveRound
	}

	return sess.round.State(), nil
}
