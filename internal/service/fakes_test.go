package service

import (
	"context"
	"sync"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/repository/contract"
	"ocbs-be/internal/repository/specification"
	"ocbs-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// fakeStore backs the fake unit of work with plain maps. It understands the
// specifications the services use.
type fakeStore struct {
	mu            sync.Mutex
	players       map[int64]entity.Player
	registrations map[uuid.UUID]entity.Registration
	order         []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		players:       make(map[int64]entity.Player),
		registrations: make(map[uuid.UUID]entity.Registration),
	}
}

func (s *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: s}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) PlayerRepository() contract.PlayerRepository {
	return (*fakePlayerRepository)(u.store)
}

func (u *fakeUnitOfWork) RegistrationRepository() contract.RegistrationRepository {
	return (*fakeRegistrationRepository)(u.store)
}

type fakePlayerRepository fakeStore

func (r *fakePlayerRepository) Upsert(ctx context.Context, player *entity.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.players[player.OsuUserId]; ok {
		player.Id = existing.Id
		player.CreatedAt = existing.CreatedAt
	} else {
		player.Id = uuid.New()
	}
	r.players[player.OsuUserId] = *player
	return nil
}

func (r *fakePlayerRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if matchPlayer(p, specs) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakePlayerRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.players {
		if matchPlayer(p, specs) {
			n++
		}
	}
	return n, nil
}

func matchPlayer(p entity.Player, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByOsuUserId:
			if p.OsuUserId != s.OsuUserId {
				return false
			}
		case specification.ByApiId:
			if p.ApiId != s.ApiId {
				return false
			}
		}
	}
	return true
}

type fakeRegistrationRepository fakeStore

func (r *fakeRegistrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations[registration.Id] = *registration
	r.order = append(r.order, registration.Id)
	return nil
}

func (r *fakeRegistrationRepository) Update(ctx context.Context, registration *entity.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations[registration.Id] = *registration
	return nil
}

func (r *fakeRegistrationRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Registration, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeRegistrationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Registration
	for _, id := range r.order {
		reg := r.registrations[id]
		if matchRegistration(reg, specs) {
			out = append(out, &reg)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchRegistration(reg entity.Registration, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if reg.Id != s.ID {
				return false
			}
		case specification.ByOsuUserId:
			if reg.OsuUserId != s.OsuUserId {
				return false
			}
		case specification.RegistrationStatusIs:
			if string(reg.Status) != s.Status {
				return false
			}
		case specification.PaymentStatusIs:
			if string(reg.PaymentStatus) != s.Status {
				return false
			}
		}
	}
	return true
}

type recordingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}
