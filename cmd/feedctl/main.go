package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klokku/taskfeed/internal/app"
	"github.com/klokku/taskfeed/internal/config"
	"github.com/klokku/taskfeed/internal/utils"
	"github.com/klokku/taskfeed/pkg/feed"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var runCmd = cli.Command{
	Name:  "run",
	Usage: "Fetch a feed once and print the upcoming events",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "link",
			Usage: "https URL of the ICS feed",
		},
		cli.Int64Flag{
			Name:  "after",
			Usage: "Only list events starting after this epoch millisecond timestamp (default: now)",
		},
	},
	Action: run,
}

func main() {
	ctl := cli.App{
		Name:  "feedctl",
		Usage: "Run the calendar feed pipeline from the command line",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config",
				Usage: "Path to the configuration file",
				Value: app.ConfigPath,
			},
			cli.BoolFlag{
				Name:  "debug",
				Usage: "Output debug messages",
			},
		},
		Commands: []cli.Command{runCmd},
	}

	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.GlobalBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return err
	}

	after := time.Now().UnixMilli()
	if c.IsSet("after") {
		after = c.Int64("after")
	}

	service := feed.NewService(feed.NewHTTPFetcher(cfg.Feed), cfg.Feed, nil, utils.SystemClock{})
	metadata, events, err := service.Run(context.Background(), c.String("link"), after)
	if err != nil {
		return err
	}
	printEvents(os.Stdout, metadata, events)
	return nil
}

func printEvents(w io.Writer, metadata feed.Metadata, events []feed.Event) {
	fmt.Fprintf(w, "%s (%d events)\n", metadata.Name, len(events))
	for _, e := range events {
		fmt.Fprintf(w, "%s  %s\n", e.StartAt.Format(time.RFC3339), e.Title)
	}
}
