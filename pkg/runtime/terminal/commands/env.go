package commands

import (
	"fmt"
	"io"

	"github.com/de-tools/data-lens/pkg/services/config"
	"github.com/de-tools/data-lens/pkg/services/session"
)

// Env carries the pieces every command needs: the active profile (resolved
// lazily so --config/--profile are read after flag parsing) and the output
// stream.
type Env struct {
	Profile func() (*config.Profile, error)
	Output  io.Writer
}

func (e Env) openSession(profile *config.Profile) (*session.Session, error) {
	sess, err := session.Open(profile.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open session for profile %s: %w", profile.Name, err)
	}
	return sess, nil
}
