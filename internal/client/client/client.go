package client

import (
	"context"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
)

type Client interface {
	GetComments(ctx context.Context) ([]models.Comment, error)
	GetUsers(ctx context.Context) ([]models.User, error)
}
