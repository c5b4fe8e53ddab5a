package core

import (
	"github.com/rs/zerolog"
)

type ServiceContext struct {
	Logger zerolog.Logger
}
