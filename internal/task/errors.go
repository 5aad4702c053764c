package task

import "errors"

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrTaskNotFound       = errors.New("task not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrProposalNotFound   = errors.New("no pending occurrence for task")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrDataDirEmpty       = errors.New("data_dir cannot be empty")
	ErrInvalidDifficulty  = errors.New("invalid difficulty")
	ErrInvalidResistance  = errors.New("invalid resistance")
	ErrInvalidEstimate    = errors.New("invalid estimate")
)
