package service

import "errors"

// Sentinel errors carry the exact message the API returns for them; handlers
// map them to HTTP statuses with errors.Is.
var (
	ErrAccessDenied       = errors.New("Access Denied!")
	ErrInvalidCredentials = errors.New("Invalid email or password!")
	ErrAccountDisabled    = errors.New("Your account has been disabled by the admin!")
	ErrSamePassword       = errors.New("New password can't be same as the old one")
	ErrWrongPassword      = errors.New("Wrong password!")
	ErrInvalidDetails     = errors.New("Invalid credentials!")
	ErrUserNotFound       = errors.New("User not found!")
	ErrMedicineNotFound   = errors.New("Medicine not found")
	ErrFileRequired       = errors.New("File is required!")
	ErrInvalidFileType    = errors.New("Invalid file type. Only PNG, JPG and JPEG images are allowed.")
	ErrFileTooLarge       = errors.New("File must be smaller than 1MB!")
)
