package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type LogoutCmd struct {
	env Env
}

func NewLogoutCmd(env Env) *cobra.Command {
	lc := &LogoutCmd{env: env}
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE:  lc.run,
	}
}

func (lc *LogoutCmd) run(_ *cobra.Command, _ []string) error {
	profile, err := lc.env.Profile()
	if err != nil {
		return err
	}

	sess, err := lc.env.openSession(profile)
	if err != nil {
		return err
	}
	if err := sess.Logout(); err != nil {
		return fmt.Errorf("failed to discard session token: %w", err)
	}

	fmt.Fprintln(lc.env.Output, "Logged out.")
	return nil
}
