package main

import (
	"flag"
	"fmt"
	"os"

	"photo-hunt-backend/cmd"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	switch flag.Arg(0) {
	case "", "serve":
		cmd.Run(*configPath)
	case "seed":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "usage: photo-hunt-backend seed <photos.yaml>")
			os.Exit(2)
		}
		cmd.Seed(*configPath, flag.Arg(1))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		os.Exit(2)
	}
}
