package blackjack

import (
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	bj "goldchip_backend/internal/game/blackjack"
	"goldchip_backend/internal/game/rng"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
	"goldchip_backend/internal/service/settlement"
)

// serv keeps one blackjack round per player, so concurrent players never
// share deck or hand state. Each session has its own lock: two simultaneous
// hits from the same player are serialized, different players do not
// contend.
type serv struct {
	src        rng.Source
	userRepo   repository.UserRepository
	reconciler *settlement.Reconciler
	txManager  trm.Manager

	mu     sync.Mutex
	rounds map[int]*session
}

type session struct {
	mu    sync.Mutex
	round *bj.Round
}

func NewBlackjackService(
	src rng.Source,
	userRepo repository.UserRepository,
	reconciler *settlement.Reconciler,
	txManager trm.Manager,
) service.BlackjackService {
	return &serv{
		src:        src,
		userRepo:   userRepo,
		reconciler: reconciler,
		txManager:  txManager,
		rounds:     make(map[int]*session),
	}
}

func (s *serv) session(userID int) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.rounds[userID]
	if !ok {
		sess = &session{}
		s.rounds[userID] = sess
	}
	return sess
}
