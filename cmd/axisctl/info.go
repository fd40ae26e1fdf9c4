package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var infoGroup string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Read the camera's parameters or full server report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()

		if infoGroup == "" {
			report, err := cam.Info().ServerReport()
			if err != nil {
				return err
			}
			fmt.Print(report)
			return nil
		}

		params, err := cam.Info().Parameters(infoGroup)
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %v\n", k, params[k])
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the camera and print its coarse health",
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()

		fmt.Println(cam.Info().Status())
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVarP(&infoGroup, "group", "g", "", "parameter group to list, e.g. Network or Properties.PTZ")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(statusCmd)
}
