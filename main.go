package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/xmdhs/datafixer/chunk"
	"github.com/xmdhs/datafixer/config"
	"github.com/xmdhs/datafixer/datafix"
	"github.com/xmdhs/datafixer/injector"
	"github.com/xmdhs/datafixer/registry"
	"github.com/xmdhs/datafixer/types/jsonv"
	"github.com/xmdhs/datafixer/versions"
)

// set by the linker: go build -ldflags "-X main.version=M.N"
var version = "dev"

var ErrUnknownType = errors.New("unknown data type")

func main() {
	app := cli.NewApp()
	app.Name = "datafixer"
	app.Usage = "upgrade saved game data to a newer data version"
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Commands = []cli.Command{
		{
			Name:  "migrate",
			Usage: "migrate every region file of a world in place",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Value: "datafixer.yaml",
					Usage: "settings `FILE`",
				},
				cli.BoolFlag{
					Name:  "dry-run, n",
					Usage: "convert without writing back",
				},
			},
			Action: runMigrate,
		},
		{
			Name:      "inspect",
			Usage:     "print values of each chunk in a region file",
			ArgsUsage: "FILE.mca PATH... | -block X,Z -dir DIR PATH...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "block, b",
					Usage: "only the chunk holding block column `X,Z`",
				},
				cli.StringFlag{
					Name:  "dir, d",
					Value: "region",
					Usage: "region `DIR` searched with -block",
				},
			},
			Action: runInspect,
		},
		{
			Name:      "convert",
			Usage:     "convert one JSON document, - reads stdin",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: registry.TypeEntity,
					Usage: "data type `NAME`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "99",
					Usage: "source `VERSION`",
				},
				cli.StringFlag{
					Name:  "to",
					Value: versions.Latest.String(),
					Usage: "target `VERSION`",
				},
			},
			Action: runConvert,
		},
		{
			Name:   "types",
			Usage:  "list data type names",
			Action: runTypes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func runMigrate(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), versions.Latest)
	if err != nil {
		return err
	}
	if c.Bool("dry-run") {
		cfg.DryRun = true
	}
	mg := injector.InitializeMigrator(cfg)
	s, err := mg.MigrateWorld(context.Background())
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, s)
}

func runInspect(c *cli.Context) error {
	if pos := c.String("block"); pos != "" {
		x, z, err := parseBlockPos(pos)
		if err != nil {
			return err
		}
		in, err := chunk.InspectBlock(c.String("dir"), x, z, c.Args()...)
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, in)
	}
	if c.NArg() < 1 {
		return cli.ShowCommandHelp(c, "inspect")
	}
	l, err := chunk.Inspect(c.Args().First(), c.Args().Tail()...)
	if err != nil {
		return err
	}
	return printJSON(c.App.Writer, l)
}

func runConvert(c *cli.Context) error {
	from, err := datafix.ParseVersion(c.String("from"))
	if err != nil {
		return err
	}
	to, err := datafix.ParseVersion(c.String("to"))
	if err != nil {
		return err
	}
	b, err := readInput(c.Args().First())
	if err != nil {
		return err
	}
	out, err := convertDocument(versions.Default(), c.String("type"), string(b), from, to)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func runTypes(c *cli.Context) error {
	_, err := fmt.Fprintln(c.App.Writer, strings.Join(versions.Default().Names(), "\n"))
	return err
}

var ErrBadBlockPos = errors.New("block position must be X,Z")

func parseBlockPos(s string) (x, z int, err error) {
	xs, zs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("parseBlockPos: %w: %q", ErrBadBlockPos, s)
	}
	x, err = strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("parseBlockPos: %w: %q", ErrBadBlockPos, s)
	}
	z, err = strconv.Atoi(strings.TrimSpace(zs))
	if err != nil {
		return 0, 0, fmt.Errorf("parseBlockPos: %w: %q", ErrBadBlockPos, s)
	}
	return x, z, nil
}

func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// convertDocument converts a JSON value of the named type.
func convertDocument(reg *registry.Registry, typeName, text string, from, to datafix.DataVersion) (string, error) {
	t, ok := reg.Lookup(typeName)
	if !ok {
		return "", fmt.Errorf("convertDocument: %w: %q", ErrUnknownType, typeName)
	}
	v, err := jsonv.Parse(text)
	if err != nil {
		return "", fmt.Errorf("convertDocument: %w", err)
	}
	out, err := jsonv.Marshal(t.ConvertAny(v, from, to))
	if err != nil {
		return "", fmt.Errorf("convertDocument: %w", err)
	}
	return out, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("printJSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
