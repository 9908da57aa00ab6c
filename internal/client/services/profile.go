package services

import (
	"context"

	"github.com/dmitrijs2005/gophdash/internal/client/client"
	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/logging"
)

// ProfileService shows the first user of the remote collection. There is no
// user selection.
type ProfileService interface {
	Load(ctx context.Context) error
	User() (models.User, bool)
	Loading() bool
}

type profileService struct {
	client  client.Client
	log     logging.Logger
	user    *models.User
	loading bool
}

func NewProfileService(c client.Client, log logging.Logger) ProfileService {
	return &profileService{client: c, log: log.With("view", "profile"), loading: true}
}

// Load fetches users and keeps the first one. An empty collection is not an
// error; User then reports false.
func (s *profileService) Load(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	s.user = nil
	users, err := s.client.GetUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		s.log.Info(ctx, "no users returned")
		return nil
	}
	u := users[0]
	s.user = &u
	s.log.Info(ctx, "profile loaded", "user_id", u.ID)
	return nil
}

func (s *profileService) User() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *profileService) Loading() bool {
	return s.loading
}
