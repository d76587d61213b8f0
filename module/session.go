package module

import (
	"github.com/filament-chain/filament/model/relay"
)

// SessionProvider exposes the session the chain is currently in.
type SessionProvider interface {

	// CurrentSession returns the index of the current session.
	CurrentSession() relay.SessionIndex
}
