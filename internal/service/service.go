package service

import (
	"github.com/vietanh2810/tcg-tournament-api/internal/repository"
)

var ErrNotFound = repository.ErrNotFound
