package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/rucdlc/dictengine/dict"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "interactively add/get/del/stats/scan against one dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runRepl(in interface{ Read([]byte) (int, error) }, out interface{ Write([]byte) (int, error) }) error {
	d := newStringDict()
	scanner := bufio.NewScanner(&readerAdapter{in})
	w := &writerAdapter{out}
	cursor := uint64(0)

	fmt.Fprintln(w, "commands: add k v | get k | del k | replace k v | stats | scan | sample n | quit")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "add":
			if len(fields) != 3 {
				fmt.Fprintln(w, "usage: add k v")
				continue
			}
			if err := d.Add(fields[1], fields[2]); err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			fmt.Fprintln(w, "ok")
		case "replace":
			if len(fields) != 3 {
				fmt.Fprintln(w, "usage: replace k v")
				continue
			}
			inserted, _ := d.Replace(fields[1], fields[2])
			fmt.Fprintln(w, map[bool]string{true: "inserted", false: "overwritten"}[inserted])
		case "get":
			if len(fields) != 2 {
				fmt.Fprintln(w, "usage: get k")
				continue
			}
			v, ok := d.FetchValue(fields[1])
			if !ok {
				fmt.Fprintln(w, "(not found)")
				continue
			}
			fmt.Fprintln(w, v)
		case "del":
			if len(fields) != 2 {
				fmt.Fprintln(w, "usage: del k")
				continue
			}
			if err := d.Delete(fields[1]); err != nil {
				fmt.Fprintln(w, err)
				continue
			}
			fmt.Fprintln(w, "ok")
		case "stats":
			fmt.Fprint(w, d.Stats())
		case "scan":
			cursor = d.Scan(cursor, nil, func(e *dict.Entry) {})
			fmt.Fprintf(w, "next cursor: %d\n", cursor)
		case "sample":
			if len(fields) != 2 {
				fmt.Fprintln(w, "usage: sample n")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n <= 0 {
				fmt.Fprintln(w, "usage: sample n (n must be a positive integer)")
				continue
			}
			des := make([]*dict.Entry, n)
			got := d.SampleK(des, n)
			for _, e := range des[:got] {
				fmt.Fprintln(w, e.Key())
			}
		default:
			fmt.Fprintf(w, "unknown command %q\n", fields[0])
		}
	}
	return scanner.Err()
}

type readerAdapter struct {
	r interface{ Read([]byte) (int, error) }
}

func (a *readerAdapter) Read(p []byte) (int, error) { return a.r.Read(p) }

type writerAdapter struct {
	w interface{ Write([]byte) (int, error) }
}

func (a *writerAdapter) Write(p []byte) (int, error) { return a.w.Write(p) }
