package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	ptzPan    float64
	ptzTilt   float64
	ptzZoom   int
	ptzMove   string
	ptzPreset string
	ptzQuery  bool
)

var ptzCmd = &cobra.Command{
	Use:   "ptz",
	Short: "Move the camera or query its position",
	RunE:  runPTZ,
}

func runPTZ(cmd *cobra.Command, args []string) error {
	cam, err := newCamera()
	if err != nil {
		return err
	}
	defer cam.Close()
	ptz := cam.PTZ()

	switch {
	case ptzQuery:
		pos, err := ptz.Position()
		if err != nil {
			return err
		}
		fmt.Println(pos)
		return nil

	case ptzMove != "":
		return ptz.Move(ptzMove)

	case ptzPreset != "":
		return ptz.GotoPreset(ptzPreset)

	default:
		params := map[string]interface{}{}
		if cmd.Flags().Changed("pan") {
			params["pan"] = ptzPan
		}
		if cmd.Flags().Changed("tilt") {
			params["tilt"] = ptzTilt
		}
		if cmd.Flags().Changed("zoom") {
			params["zoom"] = ptzZoom
		}
		if len(params) == 0 {
			return fmt.Errorf("nothing to do: pass --query, --move, --preset or an absolute position")
		}
		return ptz.PanTiltZoom(params)
	}
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the camera's stored preset points",
	RunE: func(cmd *cobra.Command, args []string) error {
		cam, err := newCamera()
		if err != nil {
			return err
		}
		defer cam.Close()

		points, err := cam.PTZ().Presets()
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Printf("%d\t%s\n", p.Number, p.Name)
		}
		return nil
	},
}

func init() {
	ptzCmd.Flags().Float64Var(&ptzPan, "pan", 0, "absolute pan angle in degrees")
	ptzCmd.Flags().Float64Var(&ptzTilt, "tilt", 0, "absolute tilt angle in degrees")
	ptzCmd.Flags().IntVar(&ptzZoom, "zoom", 0, "absolute zoom level")
	ptzCmd.Flags().StringVar(&ptzMove, "move", "", "relative move: up, down, left, right, diagonals, home, stop")
	ptzCmd.Flags().StringVar(&ptzPreset, "preset", "", "go to a named preset point")
	ptzCmd.Flags().BoolVarP(&ptzQuery, "query", "q", false, "print the current position")

	rootCmd.AddCommand(ptzCmd)
	rootCmd.AddCommand(presetsCmd)
}
