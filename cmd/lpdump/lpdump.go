package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/run-mojo/listpack/lpfile"
	"go.uber.org/zap"
)

const usageMessage = "" +
	`Usage:
lpdump -file [listpack FILE] [-stats]

Examples:
Print every element of data.lpk, one per line:
	lpdump -file data.lpk

Print only the size and element count:
	lpdump -file data.lpk -stats
`

var (
	filePath  = flag.String("file", "", "read the listpack from FILE")
	statsOnly = flag.Bool("stats", false, "print size and element count instead of the elements")
)

var exitCode = 0

func usage() {
	fmt.Fprint(os.Stderr, usageMessage)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	lpdumpMain()
	os.Exit(exitCode)
}

func lpdumpMain() {
	flag.Usage = usage
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	if *filePath == "" {
		flag.Usage()
		exitCode = 1
		return
	}

	if err := dump(lpfile.NewStore(), *filePath, *statsOnly, os.Stdout); err != nil {
		log.Errorw("dump failed", "file", *filePath, "error", err)
		exitCode = 1
	}
}

func dump(store *lpfile.Store, path string, statsOnly bool, out io.Writer) error {
	lp, err := store.Load(path)
	if err != nil {
		return err
	}

	if statsOnly {
		_, err = fmt.Fprintf(out, "%s: %d bytes, %d elements\n",
			path, lp.TotalBytes(), lp.Length())
		return err
	}

	index := 0
	for p, ok := lp.First(); ok; p, ok = lp.Next(p) {
		v, err := lp.Get(p)
		if err != nil {
			return err
		}
		kind := "str"
		if v.IsInt() {
			kind = "int"
		}
		if _, err := fmt.Fprintf(out, "%4d %s %q\n", index, kind, v.String()); err != nil {
			return err
		}
		index++
	}
	return nil
}
