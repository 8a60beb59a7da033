// Command uakit decomposes user agent strings read from arguments or stdin.
//
// Each input becomes the ambient value of a single parsed accessor, so runs
// of identical lines, common in access logs, are decomposed once.
//
//	uakit "Mozilla/5.0 (iPhone; ...)"
//	cut -d'"' -f6 access.log | uakit -short -decomposer uasurfer
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/accessor"
	"github.com/dmitrymomot/uakit/pkg/config"
	"github.com/dmitrymomot/uakit/pkg/decomposer"
	"github.com/dmitrymomot/uakit/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "uakit:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("uakit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	engine := fs.String("decomposer", "", fmt.Sprintf("decomposition engine %v, overrides %sDECOMPOSER", decomposer.Names(), config.Prefix))
	short := fs.Bool("short", false, "print a one-line summary instead of JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *engine != "" {
		cfg.Decomposer = *engine
	}

	var current string
	acc, err := accessor.NewParsedFromConfig(cfg,
		accessor.ProviderFunc(func() string { return current }),
		accessor.WithLogger(cfg.Logger(logger.WithOutput(stderr))),
		accessor.WithName("cli"),
	)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	emit := func(line string) error {
		current = line
		info := acc.Get()
		if *short {
			_, err := fmt.Fprintln(stdout, info.ShortIdentifier())
			return err
		}
		return enc.Encode(info)
	}

	if fs.NArg() > 0 {
		for _, ua := range fs.Args() {
			if err := emit(ua); err != nil {
				return err
			}
		}
		return nil
	}

	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		// CRLF logs would otherwise differ from their LF twins by a trailing \r.
		if err := emit(strings.TrimSuffix(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	return sc.Err()
}
