package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	snapshotOut        string
	snapshotResolution string
	snapshotURLOnly    bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Grab a JPEG still frame from the camera",
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()

		params := map[string]interface{}{}
		if snapshotResolution != "" {
			params["resolution"] = snapshotResolution
		}

		if snapshotURLOnly {
			fmt.Println(cam.Video().SnapshotURL(params))
			return nil
		}

		img, err := cam.Video().Snapshot(params)
		if err != nil {
			return err
		}

		if err := os.WriteFile(snapshotOut, img, 0644); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		fmt.Printf("Saved %d bytes to %s\n", len(img), snapshotOut)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "snapshot.jpg", "output file path")
	snapshotCmd.Flags().StringVar(&snapshotResolution, "resolution", "", "image resolution, e.g. 640x480")
	snapshotCmd.Flags().BoolVar(&snapshotURLOnly, "url", false, "print the snapshot URL instead of fetching it")

	rootCmd.AddCommand(snapshotCmd)
}
