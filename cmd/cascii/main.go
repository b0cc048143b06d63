package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/cascii/internal/anim"
	"github.com/san-kum/cascii/internal/cframe"
	"github.com/san-kum/cascii/internal/loader"
	"github.com/san-kum/cascii/internal/player"
	"github.com/san-kum/cascii/internal/project"
	"github.com/san-kum/cascii/internal/render"
	"github.com/san-kum/cascii/internal/sizing"
)

var (
	fps      int
	loopMode string
	fontSize float64
	// Container dimensions for font size suggestions
	containerWidth  float64
	containerHeight float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cascii",
		Short: "colored ASCII animation player",
	}

	playCmd := &cobra.Command{
		Use:   "play [dir]",
		Short: "play a frame directory",
		Args:  cobra.ExactArgs(1),
		RunE:  playFrames,
	}
	playCmd.Flags().IntVar(&fps, "fps", 0, "playback rate (0 = use project details)")
	playCmd.Flags().StringVar(&loopMode, "mode", "loop", "loop mode: once, loop, pingpong")

	infoCmd := &cobra.Command{
		Use:   "info [file.cframe]",
		Short: "describe a color frame",
		Args:  cobra.ExactArgs(1),
		RunE:  frameInfo,
	}
	infoCmd.Flags().Float64Var(&containerWidth, "width", 800, "container width for font size suggestion")
	infoCmd.Flags().Float64Var(&containerHeight, "height", 600, "container height for font size suggestion")

	textCmd := &cobra.Command{
		Use:   "text [file.cframe]",
		Short: "print the text content of a color frame",
		Args:  cobra.ExactArgs(1),
		RunE:  frameText,
	}

	showCmd := &cobra.Command{
		Use:   "show [file.cframe]",
		Short: "render one color frame to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showFrame,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [dir]",
		Short: "plot draw batches per frame",
		Args:  cobra.ExactArgs(1),
		RunE:  batchStats,
	}
	statsCmd.Flags().Float64Var(&fontSize, "font-size", 10, "font size used for batching")

	rootCmd.AddCommand(playCmd, infoCmd, textCmd, showCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func playFrames(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx := context.Background()

	details := &project.Details{}
	if d, err := project.Load(filepath.Join(dir, project.DetailsFile)); err == nil {
		details = d
	}

	session := loader.NewSession()
	provider := loader.DirProvider{}
	if err := session.LoadText(ctx, provider, dir); err != nil {
		return fmt.Errorf("loading frames: %w", err)
	}
	// Color data is small enough to load up front in a CLI; the
	// player shows progress when a UI loads it in the background.
	if err := session.LoadColors(ctx, provider, nil); err != nil {
		return fmt.Errorf("loading colors: %w", err)
	}

	rate := details.FrameRate()
	if fps > 0 {
		rate = fps
	}
	mode, err := parseLoopMode(loopMode)
	if err != nil {
		return err
	}

	return player.Run(session, rate, mode, details.FrameColors())
}

func frameInfo(cmd *cobra.Command, args []string) error {
	grid, err := readGrid(args[0])
	if err != nil {
		return err
	}

	res := render.Render(grid, render.NewConfig(10))
	suggested := sizing.Calculate(int(grid.Width), int(grid.Height), containerWidth, containerHeight)

	fmt.Printf("dimensions:     %dx%d\n", grid.Width, grid.Height)
	fmt.Printf("cells:          %d\n", grid.CellCount())
	fmt.Printf("draw batches:   %d\n", len(res.Batches))
	if grid.Height > 0 {
		fmt.Printf("batches/row:    %.1f\n", float64(len(res.Batches))/float64(grid.Height))
	}
	fmt.Printf("suggested font: %.2fpx for %.0fx%.0f\n", suggested, containerWidth, containerHeight)
	return nil
}

func frameText(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	text, err := cframe.ParseText(data)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

func showFrame(cmd *cobra.Command, args []string) error {
	grid, err := readGrid(args[0])
	if err != nil {
		return err
	}

	for _, line := range player.RenderLines(grid) {
		fmt.Println(line)
	}
	return nil
}

func parseLoopMode(s string) (anim.LoopMode, error) {
	switch s {
	case "once":
		return anim.Once, nil
	case "loop":
		return anim.Loop, nil
	case "pingpong":
		return anim.PingPong, nil
	}
	return 0, fmt.Errorf("unknown loop mode: %s (once, loop, pingpong)", s)
}

func batchStats(cmd *cobra.Command, args []string) error {
	dir := args[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	cfg := render.NewConfig(fontSize)
	var counts []float64
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".cframe" {
			continue
		}
		grid, err := readGrid(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		counts = append(counts, float64(len(render.Render(grid, cfg).Batches)))
	}
	if len(counts) == 0 {
		return fmt.Errorf("no .cframe files in %s", dir)
	}

	fmt.Println(asciigraph.Plot(counts, asciigraph.Height(15), asciigraph.Caption("draw batches per frame")))
	fmt.Printf("\n%d frames at font size %.1f\n", len(counts), fontSize)
	return nil
}

func readGrid(path string) (*cframe.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	grid, err := cframe.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}
