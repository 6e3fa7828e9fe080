package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ula-apps/appstartup/core/entities"
	"github.com/ula-apps/appstartup/internal/files"
	"github.com/ula-apps/appstartup/internal/startup"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func startCmd() *cli.Command {
	var appName string
	var username string
	var password string
	var vncPassword string
	var serviceTypeStr string
	return &cli.Command{
		Name:  "start",
		Usage: "prepare an app's filesystem and session so it can be started",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "app",
				Usage:       "name of the app in the catalog",
				Destination: &appName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "username",
				Usage:       "username for the apps filesystem, if it has none yet",
				Destination: &username,
				Required:    false,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "password for the apps filesystem, if it has none yet",
				Destination: &password,
				Required:    false,
			},
			&cli.StringFlag{
				Name:        "vnc-password",
				Usage:       "vnc password for the apps filesystem, if it has none yet",
				Destination: &vncPassword,
				Required:    false,
			},
			&cli.StringFlag{
				Name:        "service",
				Usage:       "service type to use when the app supports both cli and gui (ssh or vnc)",
				Destination: &serviceTypeStr,
				Required:    false,
			},
		},
		Action: func(cctx *cli.Context) error {
			serviceType, err := entities.ServiceTypeFromString(serviceTypeStr)
			if err != nil {
				return err
			}

			env, err := newAppsEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			apps, err := env.catalog()
			if err != nil {
				return err
			}
			app, err := apps.App(appName)
			if err != nil {
				return err
			}

			ulaFiles := files.NewUlaFiles(env.config.UlaPath(), env.config.ArchOverride())
			fsm := startup.NewFSM(
				env.db.Filesystems(),
				env.db.Sessions(),
				files.NewFilesystemManager(ulaFiles, env.logger),
				ulaFiles,
				startup.WithLogger(env.logger),
				startup.WithVersionCode(env.config.VersionCode()),
			)
			unsubscribe, err := fsm.States().Subscribe(startup.NewStateLogger(env.logger))
			if err != nil {
				return err
			}
			defer unsubscribe()

			prompter := newTerminalPrompter(os.Stdin, os.Stderr)
			prompter.credentials = startup.Credentials{
				Username:    username,
				Password:    password,
				VncPassword: vncPassword,
			}
			prompter.serviceType = serviceType

			// ctx.Done() returns when SIGINT is called or cancel() is called.
			ctx, cancel := signal.NotifyContext(cctx.Context, os.Interrupt)
			defer cancel()

			synced, err := startup.NewRunner(fsm, prompter, env.logger).Start(ctx, app)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "%s is ready: session %d on filesystem %d (%s), %s on port %d\n",
				synced.App.Name,
				synced.Session.ID,
				synced.Filesystem.ID,
				synced.Filesystem.DistributionType,
				synced.Session.ServiceType,
				synced.Session.Port,
			)
			return nil
		},
	}
}

// terminalPrompter answers from flag values first and asks on the terminal for the rest.
type terminalPrompter struct {
	credentials startup.Credentials
	serviceType entities.ServiceType

	in           *bufio.Reader
	out          io.Writer
	readPassword func() ([]byte, error)
}

func newTerminalPrompter(in *os.File, out io.Writer) *terminalPrompter {
	p := &terminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		p.readPassword = func() ([]byte, error) {
			defer fmt.Fprintln(out)
			return term.ReadPassword(fd)
		}
	}
	return p
}

func (p *terminalPrompter) Credentials(ctx context.Context, filesystem entities.Filesystem) (startup.Credentials, error) {
	fmt.Fprintf(p.out, "The %s filesystem needs credentials.\n", filesystem.DistributionType)

	credentials := p.credentials
	var err error
	if credentials.Username == "" {
		credentials.Username, err = p.ask(ctx, "Username: ", false)
		if err != nil {
			return startup.Credentials{}, err
		}
	}
	if credentials.Password == "" {
		credentials.Password, err = p.ask(ctx, "Password: ", true)
		if err != nil {
			return startup.Credentials{}, err
		}
	}
	if credentials.VncPassword == "" {
		credentials.VncPassword, err = p.ask(ctx, "VNC password: ", true)
		if err != nil {
			return startup.Credentials{}, err
		}
	}
	return credentials, nil
}

func (p *terminalPrompter) ServiceType(ctx context.Context, app entities.App) (entities.ServiceType, error) {
	if p.serviceType.IsSet() {
		return p.serviceType, nil
	}
	answer, err := p.ask(ctx, fmt.Sprintf("Start %s over ssh or vnc? ", app.Name), false)
	if err != nil {
		return entities.ServiceTypeUnselected, err
	}
	return entities.ServiceTypeFromString(answer)
}

func (p *terminalPrompter) ask(ctx context.Context, prompt string, secret bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, prompt)

	if secret && p.readPassword != nil {
		answer, err := p.readPassword()
		if err != nil {
			return "", err
		}
		return string(answer), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
