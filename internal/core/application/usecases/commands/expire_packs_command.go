package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrExpirePacksCommandIsNotConstructed = errors.New(
	"ExpirePacksCommand must be created via NewExpirePacksCommand constructor",
)

// ExpirePacksCommand drops every pack whose validity window has elapsed.
// It is issued by the pack expiry job.
type ExpirePacksCommand struct {
	guard guard.ConstructorGuard
}

func NewExpirePacksCommand() ExpirePacksCommand {
	return ExpirePacksCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpirePacksCommand) Validate() error {
	return c.guard.Validate(ErrExpirePacksCommandIsNotConstructed)
}
