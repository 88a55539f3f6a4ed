package commands

import (
	"fmt"

	"github.com/de-tools/data-lens/pkg/services/auth"
	"github.com/spf13/cobra"
)

type RegisterCmd struct {
	username string
	password string
	env      Env
}

func NewRegisterCmd(env Env) *cobra.Command {
	rc := &RegisterCmd{env: env}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.username, "username", "", "Account username")
	cmd.Flags().StringVar(&rc.password, "password", "", "Account password")

	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (rc *RegisterCmd) run(cmd *cobra.Command, _ []string) error {
	profile, err := rc.env.Profile()
	if err != nil {
		return err
	}

	client := auth.NewClient(profile.AuthURL, nil)
	err = client.Register(cmd.Context(), auth.Credentials{
		Username: rc.username,
		Password: rc.password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintln(rc.env.Output, "Account created. You can now log in.")
	return nil
}
