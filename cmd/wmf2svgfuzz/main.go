// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	wmf2svg "github.com/saferwall/wmf2svg"
)

func main() {
	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	corpusDir := runCmd.String("corpus", "", "directory of WMF files to replay through Fuzz")

	verCmd := flag.NewFlagSet("version", flag.ExitOnError)

	if len(os.Args) < 2 {
		showHelp()
	}

	switch os.Args[1] {
	case "run":
		runCmd.Parse(os.Args[2:])
		if *corpusDir == "" {
			showHelp()
		}
		runCorpus(*corpusDir)
	case "version":
		verCmd.Parse(os.Args[2:])
		fmt.Println("You are using version 0.1.0")
	default:
		showHelp()
	}
}

// runCorpus replays every file under dir through wmf2svg.Fuzz, the
// same entry point go-fuzz drives, and reports a pass/fail tally.
func runCorpus(dir string) {
	var total, ok int
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil
		}
		total++
		if wmf2svg.Fuzz(data) == 1 {
			ok++
		}
		return nil
	})
	fmt.Printf("%d/%d files converted successfully\n", ok, total)
}

func showHelp() {
	fmt.Print(
		`
╦ ╦╔╦╗╔═╗  ┌─┐┬ ┬┌─┐┌─┐
║║║║║║╠╣   ├┤ │ │┌─┘┌─┘
╚╩╝╩ ╩╚    └  └─┘└─┘└─┘

	A WMF-to-SVG fuzz corpus runner.
`)
	fmt.Println("\nAvailable sub-commands 'run' or 'version'")
	os.Exit(1)
}
