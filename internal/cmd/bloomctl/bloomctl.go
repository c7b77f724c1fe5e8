// Package bloomctl implements the tracker command-line client.
package bloomctl

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/bloom/internal/platform/cmd"
	"github.com/louisbranch/bloom/internal/platform/discovery"
	apperrors "github.com/louisbranch/bloom/internal/platform/errors"
	platformgrpc "github.com/louisbranch/bloom/internal/platform/grpc"
	"github.com/louisbranch/bloom/internal/platform/timeouts"
	trackerservice "github.com/louisbranch/bloom/internal/services/tracker/api/grpc/tracker"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/action"
	"github.com/louisbranch/bloom/internal/services/tracker/domain/store"
	"google.golang.org/grpc"
)

// Usage lists the subcommands.
const Usage = `usage: bloomctl [flags] <command> [args]

commands:
  state                      print the current state
  dispatch <type> [payload]  apply an action; payload is JSON
  export                     print a full backup
  summary                    print the localized dashboard summary
  journal                    list journaled actions (-page-size, -page-token)
  watch                      print every state change until interrupted
  login <email> <password>   sign in and print a session grant`

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("invalid usage")

// Config holds bloomctl configuration.
type Config struct {
	Addr        string        `env:"BLOOMCTL_ADDR"`
	Locale      string        `env:"BLOOMCTL_LOCALE"`
	Grant       string        `env:"BLOOMCTL_GRANT"`
	DialTimeout time.Duration `env:"BLOOMCTL_DIAL_TIMEOUT"`
	PageSize    int
	PageToken   string

	Command string
	Args    []string
}

// ParseConfig parses environment and flags into Config. The first
// positional argument is the command.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = discovery.LocalGRPCAddr(discovery.ServiceTracker)
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = timeouts.GRPCDial
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "tracker gRPC address")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale for messages and summaries (en-US, pt-BR)")
	fs.StringVar(&cfg.Grant, "grant", cfg.Grant, "session grant sent as a bearer token")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", cfg.DialTimeout, "wait for the tracker to report healthy")
	fs.IntVar(&cfg.PageSize, "page-size", 0, "journal page size")
	fs.StringVar(&cfg.PageToken, "page-token", "", "journal page token")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("%w: command is required", ErrUsage)
	}
	cfg.Command = rest[0]
	cfg.Args = rest[1:]
	return cfg, nil
}

// Run dials the tracker and executes cfg.Command, writing results to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	cmd, ok := commands[cfg.Command]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}
	if err := cmd.checkArgs(cfg.Args); err != nil {
		return err
	}

	opts := platformgrpc.DefaultClientDialOptions()
	if grant := strings.TrimSpace(cfg.Grant); grant != "" {
		opts = append(opts, platformgrpc.WithBearerToken(grant))
	}
	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.Addr, cfg.DialTimeout, nil, opts...)
	if err != nil {
		return fmt.Errorf("dial tracker at %s: %w", cfg.Addr, err)
	}
	defer conn.Close()

	return runCommand(trackerservice.WithLocale(ctx, cfg.Locale), conn, cfg, out)
}

func runCommand(ctx context.Context, conn grpc.ClientConnInterface, cfg Config, out io.Writer) error {
	cmd := commands[cfg.Command]
	if err := cmd.run(ctx, trackerservice.NewClient(conn), cfg, out); err != nil {
		return fmt.Errorf("%s: %s", cfg.Command, apperrors.LocalizedMessage(err))
	}
	return nil
}

type command struct {
	minArgs int
	maxArgs int
	run     func(context.Context, *trackerservice.Client, Config, io.Writer) error
}

func (c command) checkArgs(args []string) error {
	if len(args) < c.minArgs || len(args) > c.maxArgs {
		return fmt.Errorf("%w: wrong number of arguments", ErrUsage)
	}
	return nil
}

var commands = map[string]command{
	"state":    {run: runState},
	"dispatch": {minArgs: 1, maxArgs: 2, run: runDispatch},
	"export":   {run: runExport},
	"summary":  {run: runSummary},
	"journal":  {run: runJournal},
	"watch":    {run: runWatch},
	"login":    {minArgs: 2, maxArgs: 2, run: runLogin},
}

func runState(ctx context.Context, client *trackerservice.Client, _ Config, out io.Writer) error {
	state, err := client.State(ctx)
	if err != nil {
		return err
	}
	return writeJSON(out, state)
}

func runDispatch(ctx context.Context, client *trackerservice.Client, cfg Config, out io.Writer) error {
	env := action.Envelope{Type: action.Type(cfg.Args[0])}
	if len(cfg.Args) == 2 {
		payload := strings.TrimSpace(cfg.Args[1])
		if !json.Valid([]byte(payload)) {
			// A bare word is shorthand for a JSON string, e.g. an id or a theme.
			quoted, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			payload = string(quoted)
		}
		env.Payload = json.RawMessage(payload)
	}
	state, err := client.Dispatch(ctx, env)
	if err != nil {
		return err
	}
	return writeJSON(out, state)
}

func runExport(ctx context.Context, client *trackerservice.Client, _ Config, out io.Writer) error {
	data, err := client.Export(ctx)
	if err != nil {
		return err
	}
	return writeJSON(out, data)
}

func runSummary(ctx context.Context, client *trackerservice.Client, _ Config, out io.Writer) error {
	resp, err := client.Summary(ctx)
	if err != nil {
		return err
	}
	summary, localized := resp.Summary, resp.Localized
	lines := []string{
		localized.Week + " · " + localized.Trimester,
		localized.Phase,
		localized.BabySize,
		localized.WaterGoal,
		localized.DueCountdown,
	}
	if summary.BabyName != "" {
		lines = append(lines, summary.BabyName+": "+localized.BabyAge)
	}
	lines = append(lines, localized.NextVaccination)
	lines = append(lines, fmt.Sprintf("hospital bag %d/%d", summary.HospitalBag.Checked, summary.HospitalBag.Total))
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func runJournal(ctx context.Context, client *trackerservice.Client, cfg Config, out io.Writer) error {
	page, err := client.ListJournal(ctx, trackerservice.ListJournalRequest{
		PageSize:  cfg.PageSize,
		PageToken: cfg.PageToken,
	})
	if err != nil {
		return err
	}
	for _, entry := range page.Entries {
		payload := string(entry.Payload)
		if payload == "" {
			payload = "-"
		}
		if _, err := fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", entry.Seq, entry.RecordedAt.Format(time.RFC3339), entry.Type, payload); err != nil {
			return err
		}
	}
	if page.NextPageToken != "" {
		_, err = fmt.Fprintf(out, "next page token: %s\n", page.NextPageToken)
	}
	return err
}

func runWatch(ctx context.Context, client *trackerservice.Client, _ Config, out io.Writer) error {
	err := client.Watch(ctx, func(state store.State) error {
		data, err := json.Marshal(state)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func runLogin(ctx context.Context, client *trackerservice.Client, cfg Config, out io.Writer) error {
	session, err := client.Login(ctx, trackerservice.LoginRequest{Email: cfg.Args[0], Password: cfg.Args[1]})
	if err != nil {
		return err
	}
	if session.Grant == "" {
		_, err = fmt.Fprintf(out, "signed in as %s (session grants are disabled)\n", session.User.Email)
		return err
	}
	_, err = fmt.Fprintf(out, "%s\nexpires %s\n", session.Grant, session.ExpiresAt.Format(time.RFC3339))
	return err
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
