package main

import (
	"github.com/spf13/cobra"

	"github.com/murkotick/storefront-connect/pkg/platform/local"
)

var (
	userID        string
	userEmail     string
	userPassword  string
	userFirstName string
	userLastName  string
	passwdCurrent string
	passwdNew     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts on the local platform",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a user account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := integration.Core.API().Register(cmd.Context(),
			userEmail, userPassword, userFirstName, userLastName)
		if err != nil {
			return err
		}
		return outputUser(user)
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify credentials and print the account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := integration.Core.API().LogIn(cmd.Context(), userEmail, userPassword)
		if err != nil {
			return err
		}
		return outputUser(user)
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a user's profile",
	Long:  `Update changes the named fields on a user. Omitted fields keep their value.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := integration.Core.API().UpdateProfile(cmd.Context(),
			userID, userEmail, userFirstName, userLastName)
		if err != nil {
			return err
		}
		return outputUser(user)
	},
}

var userPasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change a user's password",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := integration.Core.API().ChangePassword(cmd.Context(),
			userID, passwdCurrent, passwdNew)
		if err != nil {
			return err
		}
		return outputUser(user)
	},
}

func init() {
	userRegisterCmd.Flags().StringVar(&userEmail, "email", "", "email address (required)")
	userRegisterCmd.Flags().StringVar(&userPassword, "password", "", "password (required)")
	userRegisterCmd.Flags().StringVar(&userFirstName, "first-name", "", "first name")
	userRegisterCmd.Flags().StringVar(&userLastName, "last-name", "", "last name")
	_ = userRegisterCmd.MarkFlagRequired("email")
	_ = userRegisterCmd.MarkFlagRequired("password")

	userLoginCmd.Flags().StringVar(&userEmail, "email", "", "email address (required)")
	userLoginCmd.Flags().StringVar(&userPassword, "password", "", "password (required)")
	_ = userLoginCmd.MarkFlagRequired("email")
	_ = userLoginCmd.MarkFlagRequired("password")

	userUpdateCmd.Flags().StringVar(&userID, "id", "", "user ID (required)")
	userUpdateCmd.Flags().StringVar(&userEmail, "email", "", "new email address")
	userUpdateCmd.Flags().StringVar(&userFirstName, "first-name", "", "new first name")
	userUpdateCmd.Flags().StringVar(&userLastName, "last-name", "", "new last name")
	_ = userUpdateCmd.MarkFlagRequired("id")

	userPasswdCmd.Flags().StringVar(&userID, "id", "", "user ID (required)")
	userPasswdCmd.Flags().StringVar(&passwdCurrent, "current", "", "current password (required)")
	userPasswdCmd.Flags().StringVar(&passwdNew, "new", "", "new password (required)")
	_ = userPasswdCmd.MarkFlagRequired("id")
	_ = userPasswdCmd.MarkFlagRequired("current")
	_ = userPasswdCmd.MarkFlagRequired("new")

	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userLoginCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userPasswdCmd)
}

func outputUser(user local.User) error {
	if flagJSON {
		return printJSON(user)
	}
	renderUser(user)
	return nil
}
