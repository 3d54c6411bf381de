package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/samvad-hq/punkapi/internal/app"
	"github.com/samvad-hq/punkapi/pkg/punkapi"
)

const (
	defaultPage  = 1
	defaultItems = 25
)

var errHelp = errors.New("help requested")

// parseFlags turns argv into lookup options. It returns errHelp for -h and a
// *punkapi.ConfigError for anything it cannot parse.
func parseFlags(args []string) (app.Options, error) {
	name := "punkapi"
	if len(args) > 0 {
		name, args = args[0], args[1:]
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var opts app.Options
	var help bool
	fs.BoolVarP(&opts.Random, "random", "r", false, "Get a random beer")
	fs.UintVarP(&opts.Page, "page", "p", defaultPage, "Get all beers at the given page")
	fs.UintVarP(&opts.Items, "items", "i", defaultItems, "Set the number of beers per page")
	fs.BoolVarP(&opts.Insecure, "insecure", "k", false, "Use insecure connection")
	fs.BoolVarP(&help, "help", "h", false, "Print this help")

	if err := fs.Parse(args); err != nil {
		return app.Options{}, &punkapi.ConfigError{Msg: "invalid arguments", Err: err}
	}
	if help {
		return app.Options{}, errHelp
	}
	return opts, nil
}

func usage(w io.Writer) {
	const text = "Usage: punkapi [options]\n\n" +
		"OPTIONS:\n" +
		"  -r        \tGet a random beer\n" +
		"  -p <page> \tGet all beers at the given page\n" +
		"  -i <items>\tSet the number of beers per page\n" +
		"  -k        \tUse insecure connection\n" +
		"  -h        \tPrint this help\n"

	fmt.Fprintf(w, "PunkAPI %s\n\n%s", version, text)
}
