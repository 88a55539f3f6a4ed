package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/data-lens/pkg/services/auth"
	"github.com/de-tools/data-lens/pkg/services/session"
	"github.com/spf13/cobra"
)

type WhoamiCmd struct {
	env Env
}

func NewWhoamiCmd(env Env) *cobra.Command {
	wc := &WhoamiCmd{env: env}
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the stored session token",
		RunE:  wc.run,
	}
}

func (wc *WhoamiCmd) run(cmd *cobra.Command, _ []string) error {
	profile, err := wc.env.Profile()
	if err != nil {
		return err
	}

	sess, err := wc.env.openSession(profile)
	if err != nil {
		return err
	}

	token, err := sess.CurrentToken()
	if errors.Is(err, session.ErrNoToken) {
		return fmt.Errorf("not logged in, run `data-lens login` first")
	}
	if err != nil {
		return err
	}

	client := auth.NewClient(profile.AuthURL, nil)
	username, err := client.Me(cmd.Context(), token)
	if err != nil {
		return fmt.Errorf("failed to resolve account: %w", err)
	}

	fmt.Fprintln(wc.env.Output, username)
	return nil
}
