package commands

import (
	"fmt"

	"github.com/de-tools/data-lens/pkg/services/auth"
	"github.com/spf13/cobra"
)

type LoginCmd struct {
	username string
	password string
	env      Env
}

func NewLoginCmd(env Env) *cobra.Command {
	lc := &LoginCmd{env: env}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session token",
		RunE:  lc.run,
	}

	cmd.Flags().StringVar(&lc.username, "username", "", "Account username")
	cmd.Flags().StringVar(&lc.password, "password", "", "Account password")

	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (lc *LoginCmd) run(cmd *cobra.Command, _ []string) error {
	profile, err := lc.env.Profile()
	if err != nil {
		return err
	}

	client := auth.NewClient(profile.AuthURL, nil)
	token, err := client.Login(cmd.Context(), auth.Credentials{
		Username: lc.username,
		Password: lc.password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	sess, err := lc.env.openSession(profile)
	if err != nil {
		return err
	}
	if err := sess.Login(token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}

	fmt.Fprintf(lc.env.Output, "Logged in as %s.\n", lc.username)
	return nil
}
