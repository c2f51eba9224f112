// Copyright 2016 The clang-server Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ccindex is a worker-pool demonstration of the indexer façade:
// it parses every file a compilation database names, under a bounded
// pool of concurrent workers, and prints the resulting IndexFiles as
// JSON.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ccindex/ccindex/compilationdatabase"
	"github.com/ccindex/ccindex/fileconsumer"
	"github.com/ccindex/ccindex/indexerfacade"
	"github.com/ccindex/ccindex/indexfile"
	"github.com/ccindex/ccindex/internal/config"
	"github.com/ccindex/ccindex/internal/log"
	"github.com/ccindex/ccindex/internal/osutil"
)

func main() {
	app := &cli.App{
		Name:  "ccindex",
		Usage: "index a project's translation units and print their IndexFiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "compile-commands",
				Usage: "path to compile_commands.json",
			},
			&cli.StringFlag{
				Name:  "root",
				Usage: "project root directory (glob fallback patterns are relative to it)",
				Value: ".",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a ccindex.toml configuration file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ccindex:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log.SetDebug(c.Bool("debug"))

	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cfg.Debug {
		log.SetDebug(true)
	}

	root := c.String("root")
	if !osutil.IsDir(root) {
		return fmt.Errorf("ccindex: root %q is not a directory", root)
	}

	cd := compilationdatabase.New(root)
	if path := c.String("compile-commands"); path != "" {
		if !osutil.IsExist(path) {
			return fmt.Errorf("ccindex: compile-commands %q does not exist", path)
		}
		if err := cd.LoadJSON(path); err != nil {
			return err
		}
	}
	files := cd.Files()
	if len(files) == 0 {
		return fmt.Errorf("ccindex: no files named by %s", c.String("compile-commands"))
	}

	shared := fileconsumer.New()

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(context.Background())

	queue := make(chan string, len(files))
	for _, file := range files {
		queue <- file
	}
	close(queue)

	results := make(chan []*indexfile.IndexFile, len(files))

	// One worker per thread, each owning one ClangIndex handle for its
	// entire lifetime rather than one per file.
	for i := 0; i < jobs; i++ {
		g.Go(func() error {
			handle := indexerfacade.NewIndexHandle()
			defer handle.Dispose()

			for file := range queue {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				args, _ := cd.Lookup(file)

				var perf indexerfacade.Perf
				out := indexerfacade.Parse(shared, handle, file, args, nil, &perf)
				log.Debugf("ccindex: indexed %s in %s", file, perf.TotalTime)

				results <- out
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	close(results)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for out := range results {
		for _, f := range out {
			buf, err := f.MarshalText()
			if err != nil {
				return err
			}
			w.Write(buf)
			w.WriteByte('\n')
		}
	}

	return nil
}
