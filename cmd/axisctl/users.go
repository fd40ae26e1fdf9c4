package main

import (
	"fmt"

	"github.com/spf13/cobra"

	axisnetcam "github.com/openminds/axis-netcam"
)

var userGroup string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage the camera's local accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List account names",
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()

		names, err := cam.Users().List()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var usersAddCmd = &cobra.Command{
	Use:   "add <name> <password>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()
		return cam.Users().Add(args[0], args[1], userGroup)
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <name> <password>",
	Short: "Change an account's password and group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()
		return cam.Users().Update(args[0], args[1], userGroup)
	},
}

var usersRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()
		return cam.Users().Remove(args[0])
	},
}

func init() {
	usersAddCmd.Flags().StringVar(&userGroup, "group", axisnetcam.GroupViewer, "access group: viewer, operator or admin")
	usersUpdateCmd.Flags().StringVar(&userGroup, "group", axisnetcam.GroupViewer, "access group: viewer, operator or admin")

	usersCmd.AddCommand(usersListCmd, usersAddCmd, usersUpdateCmd, usersRemoveCmd)
	rootCmd.AddCommand(usersCmd)
}
