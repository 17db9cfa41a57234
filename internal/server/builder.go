package server

import (
	"context"

	"github.com/preston-bernstein/league-schedules/internal/runner"
)

// Builder defines the build-loop behavior the server drives.
type Builder interface {
	RunOnce(ctx context.Context) error
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() runner.Status
	Leagues() []string
}
