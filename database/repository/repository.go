package repository

import (
	contentRepo "bestdental/database/repository/content"
)

// Re-export the ContentRepository interface and constructor.
type ContentRepository = contentRepo.ContentRepository

var NewJSONContentRepo = contentRepo.NewJSONContentRepo

var ErrServiceNotFound = contentRepo.ErrServiceNotFound
