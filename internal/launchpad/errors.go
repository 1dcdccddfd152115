package launchpad

import "errors"

var (
	// ErrMissingConfigFile is returned when the Streamlit configuration file is absent from the base directory.
	ErrMissingConfigFile = errors.New("configuration file not found")
	// ErrMissingAppFile is returned when the application entry file is absent from the base directory.
	ErrMissingAppFile = errors.New("application entry file not found")
)
