// Command leetrace reads an ASCII scene, finds the shortest path from S
// to D around # obstacles and prints the labeled board with the path
// highlighted, followed by the moves a game client would play.
//
//	leetrace [--scan LURD] [--color] [--log-level debug] SCENE
//
// SCENE is a file path, or "-" for stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/leetrace/lee"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run builds and executes the command. args includes the program name.
func run(ctx context.Context, stdin io.Reader, outW, errW io.Writer, args []string) error {
	cmd := &cli.Command{
		Name:      "leetrace",
		Usage:     "shortest 4-directional path on an ASCII grid",
		ArgsUsage: "[SCENE]",
		Writer:    outW,
		ErrWriter: errW,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scene",
				Aliases: []string{"s"},
				Usage:   "path to the scene file, - for stdin",
			},
			&cli.StringFlag{
				Name:  "scan",
				Value: "LURD",
				Usage: "neighbor scan order, a permutation of L U R D",
			},
			&cli.BoolFlag{
				Name:    "color",
				Usage:   "highlight the path with ANSI colors",
				Sources: cli.EnvVars("LEETRACE_COLOR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("LEETRACE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "text or json",
				Sources: cli.EnvVars("LEETRACE_LOG_FORMAT"),
			},
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger, err := newLogger(cmd.String("log-level"), cmd.String("log-format"), errW)
			if err != nil {
				return err
			}

			path := cmd.String("scene")
			if path == "" {
				path = cmd.Args().First()
			}
			if path == "" {
				return errors.New("leetrace: no scene given")
			}
			scene, err := loadScene(path, stdin)
			if err != nil {
				return err
			}
			logger.Debug("Scene loaded.", "path", path,
				"width", scene.Width, "height", scene.Height,
				"obstacles", len(scene.Obstacles))

			order, err := lee.ParseScanOrder(cmd.String("scan"))
			if err != nil {
				return err
			}
			gs, err := lee.New(scene.Width, scene.Height,
				lee.WithScanOrder(order...),
				lee.WithLogger(logger))
			if err != nil {
				return err
			}

			style := lee.PlainStyle()
			if cmd.Bool("color") {
				style = lee.ANSIStyle()
			}
			return trace(outW, gs, scene, style)
		},
	}

	return cmd.Run(ctx, args)
}

func loadScene(path string, stdin io.Reader) (*Scene, error) {
	if path == "-" {
		return ParseScene(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("leetrace: open scene: %w", err)
	}
	defer f.Close()
	return ParseScene(f)
}

// trace runs one query and writes the board, then either the path and its
// moves or "no path".
func trace(outW io.Writer, gs *lee.GridSearch, s *Scene, st lee.Style) error {
	path, ok, err := gs.FindPath(s.Source, s.Dest, s.Obstacles)
	if err != nil {
		return err
	}
	fmt.Fprintln(outW, gs.Render(path, st))
	if !ok {
		fmt.Fprintln(outW, "no path")
		return nil
	}
	moves, err := path.Moves()
	if err != nil {
		return err
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(outW, "path: %d cells\n", path.Len())
	fmt.Fprintf(outW, "moves: %s\n", strings.Join(names, " "))
	return nil
}
