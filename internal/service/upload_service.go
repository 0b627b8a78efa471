package service

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"medstock/internal/repository"

	"github.com/google/uuid"
)

const maxUploadBytes = 1 * 1000 * 1000

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type UploadService struct {
	users   repository.UserRepository
	dir     string
	baseURL string
}

func NewUploadService(users repository.UserRepository, dir, baseURL string) *UploadService {
	return &UploadService{users: users, dir: dir, baseURL: baseURL}
}

// SaveProfilePhoto validates the uploaded image, stores it under a generated
// filename, removes the user's previous photo file and records the new URL.
func (s *UploadService) SaveProfilePhoto(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[extension] || !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrInvalidFileType
	}
	if file.Size > maxUploadBytes {
		return "", ErrFileTooLarge
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	filename := uuid.NewString() + extension
	if err := s.store(file, filepath.Join(s.dir, filename)); err != nil {
		return "", err
	}

	// Best effort: a missing old file should not fail the upload.
	if user.PhotoURL != nil {
		oldFilename := path.Base(*user.PhotoURL)
		_ = os.Remove(filepath.Join(s.dir, oldFilename))
	}

	photoURL := s.baseURL + "/public/" + filename
	if err := s.users.UpdatePhotoURL(ctx, userID, photoURL); err != nil {
		return "", err
	}
	return photoURL, nil
}

func (s *UploadService) store(file *multipart.FileHeader, destination string) error {
	source, err := file.Open()
	if err != nil {
		return err
	}
	defer source.Close()

	if err := os.MkdirAll(filepath.Dir(destination), 0o755); err != nil {
		return err
	}
	target, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer target.Close()

	_, err = io.Copy(target, source)
	return err
}
