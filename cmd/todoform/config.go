package main

import (
	"time"

	"github.com/dmitrymomot/formstate/pkg/httpserver"
)

// Config is the process configuration. Backend settings are loaded separately,
// only for the selected store.
type Config struct {
	AppName       string        `env:"APP_NAME" envDefault:"todoform"`
	Env           string        `env:"APP_ENV" envDefault:"development"`
	Store         string        `env:"FORM_STORE" envDefault:"memory"` // memory, redis, postgres, mongo or s3
	Persist       bool          `env:"FORM_PERSIST" envDefault:"true"`
	PersistFormat string        `env:"FORM_PERSIST_FORMAT" envDefault:"json"` // json or yaml
	SubmitDelay   time.Duration `env:"FORM_SUBMIT_DELAY" envDefault:"3s"`

	HTTP httpserver.Config
}
