// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ordmap/replay"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "ordmap-script"
	app.Usage = "generate ordmap-replay scripts"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "random",
			Usage:     "seeded mix of inserts, removes and lookups",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 1000,
					Usage: " number of operations `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random number seed `SEED`",
				},
				cli.IntFlag{
					Name:  "keys, k",
					Value: 100,
					Usage: " keys are chosen from 0 to `RANGE`-1",
				},
				cli.StringFlag{
					Name:  "variant, t",
					Value: "",
					Usage: " balancer recorded in the script `VARIANT` [avl|redblack]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write the script to `FILE` instead of stdout",
				},
			},
			Action: runRandom,
		},
		{
			Name:      "ascending",
			Usage:     "insert 1..COUNT then remove them in the same order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 1000,
					Usage: " number of keys `COUNT`",
				},
				cli.StringFlag{
					Name:  "variant, t",
					Value: "",
					Usage: " balancer recorded in the script `VARIANT` [avl|redblack]",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write the script to `FILE` instead of stdout",
				},
			},
			Action: runAscending,
		},
		{
			Name:      "version",
			Usage:     "display ordmap-script version",
			ArgsUsage: "\n   (* = required)",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}

// check the variant name and write a script to the output
func output(c *cli.Context, script *replay.Script) error {
	m := c.App.Metadata["config"].(*metadata)

	if "" != script.Variant {
		if _, err := replay.MakeMap(script.Variant); nil != err {
			return err
		}
	}

	fileName := c.String("output")
	if "" == fileName {
		return script.WriteScript(m.w)
	}

	f, err := os.Create(fileName)
	if nil != err {
		return err
	}
	if err := script.WriteScript(f); nil != err {
		f.Close()
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "wrote: %d operations to: %s\n", len(script.Operations), fileName)
	}
	return f.Close()
}
