package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/TuboFmc/anvil/registry"
	"github.com/TuboFmc/anvil/report"
)

func main() {
	var (
		reportFile  = flag.String("report", "", "Path to a marker report file")
		list        = flag.Bool("list", false, "List objects and exit")
		typeFilter  = flag.String("type", "", "Only show objects of this type (e.g. buffer, image)")
		nameFilter  = flag.String("name", "", "Only show objects whose name contains this substring")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *reportFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: vkmarkers -report <markers.yaml> [-list] [-type kind] [-name substr]")
		fmt.Fprintln(os.Stderr, "       vkmarkers -report <markers.yaml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*reportFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*reportFile, *typeFilter, *nameFilter, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(reportFile, typeFilter, nameFilter string, listOnly bool) error {
	rep, err := report.ReadFile(reportFile)
	if err != nil {
		return err
	}
	entries, err := rep.Entries()
	if err != nil {
		return err
	}

	entries = filterEntries(entries, typeFilter, nameFilter)

	if !listOnly {
		fmt.Printf("Report: %s\n", reportFile)
		fmt.Printf("Device: %s\n", rep.Device)
		fmt.Printf("Objects: %d\n\n", len(entries))
	}

	fmt.Printf("%-18s %-22s %-8s %s\n", "HANDLE", "TYPE", "TAG", "NAME")
	for _, e := range entries {
		tag := "-"
		if len(e.Tag) > 0 {
			tag = fmt.Sprintf("%d", e.TagID)
		}
		fmt.Printf("%-18s %-22s %-8s %s\n",
			fmt.Sprintf("0x%x", uint64(e.Handle)), e.Type.String(), tag, e.Name)
	}
	return nil
}

func filterEntries(entries []registry.Entry, typeFilter, nameFilter string) []registry.Entry {
	if typeFilter == "" && nameFilter == "" {
		return entries
	}
	var out []registry.Entry
	for _, e := range entries {
		if typeFilter != "" && e.Type.String() != typeFilter {
			continue
		}
		if nameFilter != "" && !strings.Contains(e.Name, nameFilter) {
			continue
		}
		out = append(out, e)
	}
	return out
}
