package usecase

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeElectionRepo struct {
	mu        sync.Mutex
	elections map[string]entity.Election
}

func newFakeElectionRepo() *fakeElectionRepo {
	return &fakeElectionRepo{elections: make(map[string]entity.Election)}
}

func (r *fakeElectionRepo) Create(e *entity.Election) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elections[e.ID] = *e
	return nil
}

func (r *fakeElectionRepo) GetByID(id string) (*entity.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.elections[id]
	if !ok {
		return nil, nil
	}
	copy := e
	return &copy, nil
}

func (r *fakeElectionRepo) Update(e *entity.Election) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elections[e.ID] = *e
	return nil
}

func (r *fakeElectionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.elections, id)
	return nil
}

func (r *fakeElectionRepo) List() ([]*entity.Election, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Election, 0, len(r.elections))
	for _, e := range r.elections {
		copy := e
		out = append(out, &copy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeElectionRepo) ListActive(now time.Time) ([]*entity.Election, error) {
	all, _ := r.List()
	out := make([]*entity.Election, 0, len(all))
	for _, e := range all {
		if !e.IsActive || e.StartTime == nil || now.Before(*e.StartTime) {
			continue
		}
		if e.EndTime != nil && now.After(*e.EndTime) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeCandidateRepo struct {
	mu         sync.Mutex
	candidates map[string]entity.Candidate
	titles     map[string]string // electionID → título para los listados
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{
		candidates: make(map[string]entity.Candidate),
		titles:     make(map[string]string),
	}
}

func (r *fakeCandidateRepo) Create(c *entity.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.candidates {
		if other.ElectionID == c.ElectionID && other.Party == c.Party {
			return domain.ErrDuplicateParty
		}
	}
	r.candidates[c.ID] = *c
	return nil
}

func (r *fakeCandidateRepo) GetByID(id string) (*entity.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.candidates[id]
	if !ok {
		return nil, nil
	}
	copy := c
	return &copy, nil
}

func (r *fakeCandidateRepo) Update(c *entity.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.candidates {
		if other.ID != c.ID && other.ElectionID == c.ElectionID && other.Party == c.Party {
			return domain.ErrDuplicateParty
		}
	}
	r.candidates[c.ID] = *c
	return nil
}

func (r *fakeCandidateRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.candidates, id)
	return nil
}

func (r *fakeCandidateRepo) List() ([]*repository.CandidateWithElection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*repository.CandidateWithElection, 0, len(r.candidates))
	for _, c := range r.candidates {
		out = append(out, &repository.CandidateWithElection{
			Candidate:     c,
			ElectionTitle: r.titles[c.ElectionID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCandidateRepo) ListByElection(electionID string) ([]*repository.CandidateWithElection, error) {
	all, _ := r.List()
	out := make([]*repository.CandidateWithElection, 0, len(all))
	for _, c := range all {
		if c.ElectionID == electionID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCandidateRepo) ExistsByElectionAndParty(electionID, party, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.ElectionID == electionID && c.Party == party && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
	voted map[string]bool // estado de voto derivado que expone List
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]entity.User),
		voted: make(map[string]bool),
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copy := u
	return &copy, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByAccessCode(code string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.AccessCode != "" && u.AccessCode == code {
			copy := u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) RoleExists(role string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List() ([]*repository.UserWithVoteStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*repository.UserWithVoteStatus, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, &repository.UserWithVoteStatus{User: u, HasVoted: r.voted[u.ID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role {
				copy := u
				out = append(out, &copy)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) SetAccessCode(id, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID != id && u.AccessCode == code {
			return domain.ErrAccessCodeTaken
		}
	}
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.AccessCode = code
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

// fakeMailer registra los envíos y puede fallar a demanda.
type fakeMailer struct {
	mu          sync.Mutex
	failSend    bool
	accessCodes []string // códigos enviados, en orden
	notices     int
}

func (m *fakeMailer) SendAccessCode(name, email, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSend {
		return errMailDown
	}
	m.accessCodes = append(m.accessCodes, code)
	return nil
}

func (m *fakeMailer) SendVoterRegisteredNotice(adminEmails []string, voterName, voterEmail string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSend {
		return errMailDown
	}
	m.notices++
	return nil
}

var errMailDown = errors.New("smtp caído")
