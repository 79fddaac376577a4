package models

import "github.com/m-mizutani/goerr/v2"

// Error kinds. Every failure in the pipeline is fatal and carries one of these tags.
var (
	ErrTagIO          = goerr.NewTag("io")
	ErrTagSchema      = goerr.NewTag("schema")
	ErrTagParse       = goerr.NewTag("parse")
	ErrTagEmptyWindow = goerr.NewTag("empty_window")
	ErrTagConfig      = goerr.NewTag("config")
)
