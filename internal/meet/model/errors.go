package model

import "errors"

var (
	// ErrMeetNotFound indicates that the requested meet does not exist.
	ErrMeetNotFound = errors.New("meet not found")
	// ErrInvalidDate indicates that the meet date is empty or not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid meet date")
	// ErrInvalidTeam indicates that the home or away team is empty.
	ErrInvalidTeam = errors.New("home and away team are required")
	// ErrInvalidHeadOfficial indicates that the head official name or email is empty.
	ErrInvalidHeadOfficial = errors.New("head official name and email are required")
	// ErrNoInvitedOfficials indicates that the invited officials list is empty.
	ErrNoInvitedOfficials = errors.New("invited officials list cannot be empty")
	// ErrInvalidOfficial indicates an invited official with an empty name or email.
	ErrInvalidOfficial = errors.New("invited official name and email are required")
	// ErrInvalidQRCodeSize indicates a QR code size outside the allowed range.
	ErrInvalidQRCodeSize = errors.New("invalid qr code size")
)
