package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gympro/internal/gym"
	"gympro/internal/member"
	"gympro/internal/metrics"
	"gympro/internal/storage"
)

// User-facing login failure messages. Member lookup failures and wrong
// member passwords are deliberately merged into one generic message; gym
// failures stay distinct.
var (
	ErrSuperAdminInvalid   = errors.New("Invalid Master Admin credentials")
	ErrGymNotFound         = errors.New("Gym ID not found in our records")
	ErrGymSuspended        = errors.New("This gym account is currently suspended.")
	ErrSubscriptionExpired = errors.New("Gym subscription has expired. Please contact support.")
	ErrManagerPassword     = errors.New("Incorrect Manager password")
	ErrMemberInvalid       = errors.New("Incorrect Member ID or Password")
)

type Service interface {
	// Authorize checks one credential attempt and, on success, persists and
	// returns the session plus an API token.
	Authorize(ctx context.Context, attempt Attempt) (*Session, string, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*Session, error)
}

type service struct {
	gyms      gym.Repository
	members   member.Repository
	store     storage.Store
	jwtSecret string

	superUser string
	superPass string

	now func() time.Time
}

func NewService(gyms gym.Repository, members member.Repository, store storage.Store, jwtSecret, superUser, superPass string) Service {
	return &service{
		gyms:      gyms,
		members:   members,
		store:     store,
		jwtSecret: jwtSecret,
		superUser: superUser,
		superPass: superPass,
		now:       time.Now,
	}
}

func (s *service) Authorize(ctx context.Context, attempt Attempt) (*Session, string, error) {
	session, userID, gymID, err := s.check(ctx, attempt)
	if err != nil {
		metrics.RecordLogin(string(attempt.Role), "failure")
		return nil, "", err
	}

	token, err := GenerateToken(userID, gymID, attempt.Role, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	if err := storage.SaveCollection(ctx, s.store, storage.KeySession, session); err != nil {
		return nil, "", err
	}

	metrics.RecordLogin(string(attempt.Role), "success")
	return session, token, nil
}

func (s *service) check(ctx context.Context, attempt Attempt) (*Session, string, string, error) {
	switch attempt.Role {
	case RoleSuperAdmin:
		return s.checkSuperAdmin(attempt)
	case RoleManager:
		return s.checkManager(ctx, attempt)
	case RoleMember:
		return s.checkMember(ctx, attempt)
	default:
		return nil, "", "", ErrMemberInvalid
	}
}

func (s *service) checkSuperAdmin(attempt Attempt) (*Session, string, string, error) {
	if attempt.Username != s.superUser || attempt.Password != s.superPass {
		return nil, "", "", ErrSuperAdminInvalid
	}

	user, _ := json.Marshal(map[string]string{"name": "Platform Admin"})
	session := &Session{IsAuthenticated: true, Role: RoleSuperAdmin, User: user}
	return session, s.superUser, "", nil
}

// gateGym applies the tenant-level checks shared by manager and member
// logins: the gym must exist, must not be paused, and its platform
// subscription must still be running.
func (s *service) gateGym(ctx context.Context, gymID string) (*gym.Gym, error) {
	g, err := s.gyms.GetByID(ctx, gymID)
	if err != nil {
		return nil, ErrGymNotFound
	}
	if g.Status == gym.StatusPaused {
		return nil, ErrGymSuspended
	}
	if g.SubscriptionExpired(s.now()) {
		return nil, ErrSubscriptionExpired
	}
	return g, nil
}

func (s *service) checkManager(ctx context.Context, attempt Attempt) (*Session, string, string, error) {
	g, err := s.gateGym(ctx, attempt.GymID)
	if err != nil {
		return nil, "", "", err
	}

	// Plaintext comparison, as stored. There is no credential hashing
	// anywhere in this system.
	if attempt.Password != g.Password {
		return nil, "", "", ErrManagerPassword
	}

	user, _ := json.Marshal(g)
	session := &Session{IsAuthenticated: true, Role: RoleManager, User: user}
	return session, g.ID, g.ID, nil
}

func (s *service) checkMember(ctx context.Context, attempt Attempt) (*Session, string, string, error) {
	_, err := s.gateGym(ctx, attempt.GymID)
	if err != nil {
		return nil, "", "", err
	}

	m, err := s.members.FindByIDOrPhone(ctx, attempt.GymID, attempt.Username)
	if err != nil || attempt.Password != m.Password {
		return nil, "", "", ErrMemberInvalid
	}

	user, _ := json.Marshal(m)
	session := &Session{IsAuthenticated: true, Role: RoleMember, User: user}
	return session, m.ID, m.GymID, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, storage.KeySession)
}

func (s *service) CurrentSession(ctx context.Context) (*Session, error) {
	var session Session
	found, err := storage.LoadCollection(ctx, s.store, storage.KeySession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Session{}, nil
	}
	return &session, nil
}
