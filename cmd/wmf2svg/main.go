// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	wmf2svg "github.com/saferwall/wmf2svg"
)

var (
	verbose      bool
	namespace    string
	svgDelimiter bool
	imgWidth     int
	imgHeight    int
	outDir       string
)

func isDirectory(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func convertOne(filename string) {
	log.Printf("Processing filename %s", filename)

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		log.Printf("Error while reading file: %s, reason: %s", filename, err)
		return
	}

	out, status, err := wmf2svg.Convert(data, &wmf2svg.Options{
		NameSpace:    namespace,
		Verbose:      verbose,
		SVGDelimiter: svgDelimiter,
		ImgWidth:     imgWidth,
		ImgHeight:    imgHeight,
	})
	if err != nil {
		log.Printf("Error while converting file: %s, reason: %s (status %d)", filename, err, status)
		return
	}

	if outDir == "" {
		fmt.Println(string(out))
		return
	}

	dst := filepath.Join(outDir, filepath.Base(filename)+".svg")
	if err := ioutil.WriteFile(dst, out, 0644); err != nil {
		log.Printf("Error while writing %s: %s", dst, err)
	}
}

func convert(cmd *cobra.Command, args []string) {
	filePath := args[0]

	if !isDirectory(filePath) {
		convertOne(filePath)
		return
	}

	var fileList []string
	filepath.Walk(filePath, func(path string, f os.FileInfo, err error) error {
		if err == nil && !isDirectory(path) {
			fileList = append(fileList, path)
		}
		return nil
	})

	for _, file := range fileList {
		convertOne(file)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "wmf2svg",
		Short: "A Windows Metafile (WMF) to SVG converter",
		Long:  "wmf2svg replays WMF drawing records and emits an equivalent SVG document",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("wmf2svg version 0.1.0")
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert [file-or-directory]",
		Short: "Converts a WMF file, or every file in a directory, to SVG",
		Args:  cobra.MinimumNArgs(1),
		Run:   convert,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v",
		env.Bool("WMF2SVG_VERBOSE"), "verbose per-record diagnostics")
	convertCmd.Flags().StringVarP(&namespace, "namespace", "n",
		env.Str("WMF2SVG_NAMESPACE"), "namespace prefix for emitted SVG elements")
	convertCmd.Flags().BoolVar(&svgDelimiter, "svg-delimiter", true,
		"wrap the output in an <svg> root element")
	convertCmd.Flags().IntVar(&imgWidth, "width", 0, "target image width in pixels (0 = auto)")
	convertCmd.Flags().IntVar(&imgHeight, "height", 0, "target image height in pixels (0 = auto)")
	convertCmd.Flags().StringVarP(&outDir, "out", "o", "",
		"write converted files here instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
