package model

import "errors"

var (
	// ErrMissingField indicates that a required submission field is empty.
	ErrMissingField = errors.New("required field is missing")
	// ErrUnknownStroke indicates a stroke that has no taxonomy entry.
	ErrUnknownStroke = errors.New("unknown stroke")
	// ErrNoStrokeSelected indicates a toggle before any stroke was chosen.
	ErrNoStrokeSelected = errors.New("no stroke selected")
	// ErrInfractionNotOffered indicates a toggle of a value the stroke does not offer.
	ErrInfractionNotOffered = errors.New("infraction not offered for stroke")
	// ErrNotAuthorized indicates that the email is not on the meet's invited officials list.
	ErrNotAuthorized = errors.New("email not authorized to submit for this meet")
)
