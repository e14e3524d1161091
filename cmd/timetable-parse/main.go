package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/SergeyKozhin/student-planner-backend/internal/model"
	"github.com/SergeyKozhin/student-planner-backend/internal/timetable"
	"github.com/alecthomas/kong"
)

type CLI struct {
	Version  kong.VersionFlag
	ICS      bool   `help:"Read the input as an iCalendar export instead of timetable text."`
	JSON     bool   `help:"Print candidates as JSON."`
	Timezone string `help:"Timezone used to read iCalendar times." default:"Asia/Riyadh" env:"TIMEZONE"`
	File     string `arg:"" optional:"" help:"Input file, standard input when omitted." type:"existingfile"`
}

func (c *CLI) Run() error {
	in := io.Reader(os.Stdin)
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return c.run(in, os.Stdout)
}

func (c *CLI) run(in io.Reader, out io.Writer) error {
	var candidates []timetable.Candidate
	if c.ICS {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("load timezone: %w", err)
		}
		candidates, err = timetable.ParseICS(in, loc)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			return model.ErrNoCandidates
		}
	} else {
		text, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		candidates, err = timetable.ParseText(string(text))
		if err != nil {
			return err
		}
	}

	if c.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(candidates)
	}

	for _, cand := range candidates {
		line := []string{cand.Day.String(), cand.Time, cand.Subject}
		if cand.Location != "" {
			line = append(line, "@ "+cand.Location)
		}
		line = append(line, cand.Color)
		if _, err := fmt.Fprintln(out, strings.Join(line, "\t")); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("timetable-parse"),
		kong.Description("Extract weekly classes from Arabic or English timetable text."),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := ctx.Run(); err != nil {
		if errors.Is(err, model.ErrNoCandidates) {
			fmt.Fprintln(os.Stderr, "no classes found")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
