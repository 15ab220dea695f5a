package ui

import (
	"chessview/src/chesslib"
	"chessview/src/logx"
	clic "chessview/src/ui/cli"
	"chessview/src/ui/gui"
	"chessview/src/ui/gui/gbase"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "chessview.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// position from --fen or --file; untouched builder when neither is set
func LoadPosition(gb *chesslib.GameBuilder, c *cli.Command) error {
	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error open file: %v", err)
		}
		return gb.CreateFromFEN(string(data))
	}
	if fen := c.String("fen"); fen != "" {
		return gb.CreateFromFEN(fen)
	}
	return nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	gb := chesslib.NewBuilderBoard(logger)
	if err := LoadPosition(gb, c); err != nil {
		return err
	}
	g, err := gui.NewGUI(gb, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %v", err)
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %v", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	gb := chesslib.NewBuilderBoard(logger)
	gb.CreateClassic()
	if err := LoadPosition(gb, c); err != nil {
		return err
	}
	cp := clic.NewCLI(gb, logger, os.Stdout, c.Bool("entities"))
	if sq := c.String("select"); sq != "" {
		if err := cp.Select(sq); err != nil {
			logger.Errorf("%v", err)
			return err
		}
	}
	return cp.Run()
}

func RunChessView() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN format",
	}
	pf := &cli.StringFlag{
		Name:  "file",
		Usage: "path to file with FEN",
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "level log",
		Value:   "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	ef := &cli.BoolFlag{
		Name:    "entities",
		Aliases: []string{"e"},
		Usage:   "list the piece entities after the board",
	}
	sf := &cli.StringFlag{
		Name:    "select",
		Aliases: []string{"s"},
		Usage:   "mark a square, e.g. e2",
	}
	guiff := []cli.Flag{ff, pf, df, lf, cf}
	cliff := []cli.Flag{ff, pf, df, lf, cf, ef, sf}

	runGUI := func(ctx context.Context, c *cli.Command) error {
		if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
			return fmt.Errorf("error GUI: %v", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "chessview",
		Usage: "chess position viewer",
		Flags: guiff,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "print the position to the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:   "gui",
				Usage:  "open the position in a window",
				Flags:  guiff,
				Action: runGUI,
			},
		},
		Action: runGUI,
	}).Run(context.Background(), os.Args)
}
