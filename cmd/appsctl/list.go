package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ula-apps/appstartup/core/entities"
	"github.com/urfave/cli/v2"
)

func appsCmd() *cli.Command {
	return &cli.Command{
		Name:  "apps",
		Usage: "list the apps in the catalog",
		Action: func(cctx *cli.Context) error {
			env, err := newAppsEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			apps, err := env.catalog()
			if err != nil {
				return err
			}
			return printApps(os.Stdout, apps.Apps())
		},
	}
}

func sessionsCmd() *cli.Command {
	return &cli.Command{
		Name:  "sessions",
		Usage: "list sessions",
		Action: func(cctx *cli.Context) error {
			env, err := newAppsEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			sessions, err := env.db.Sessions().AllSessions(cctx.Context)
			if err != nil {
				return err
			}
			return printSessions(os.Stdout, sessions)
		},
	}
}

func filesystemsCmd() *cli.Command {
	return &cli.Command{
		Name:  "filesystems",
		Usage: "list filesystems",
		Action: func(cctx *cli.Context) error {
			env, err := newAppsEnv()
			if err != nil {
				return err
			}
			defer env.Close()

			filesystems, err := env.db.Filesystems().AllFilesystems(cctx.Context)
			if err != nil {
				return err
			}
			return printFilesystems(os.Stdout, filesystems)
		},
	}
}

func printApps(out io.Writer, apps []entities.App) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tFILESYSTEM\tCLI\tGUI\tPAID")
	for _, app := range apps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%t\n", app.Name, app.Category, app.FilesystemRequired, app.SupportsCLI, app.SupportsGUI, app.IsPaidApp)
	}
	return w.Flush()
}

func printSessions(out io.Writer, sessions []entities.Session) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFILESYSTEM\tSERVICE\tPORT\tAPPS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%d\t%s\t%s(%d)\t%s\t%d\t%t\n", s.ID, s.Name, s.FilesystemName, s.FilesystemID, s.ServiceType, s.Port, s.IsAppsSession)
	}
	return w.Flush()
}

// printFilesystems never prints credentials, only whether they are set.
func printFilesystems(out io.Writer, filesystems []entities.Filesystem) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDISTRIBUTION\tARCH\tVERSION\tCREDENTIALS\tAPPS")
	for _, fs := range filesystems {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\t%t\n", fs.ID, fs.Name, fs.DistributionType, fs.ArchType, fs.VersionCodeUsed, fs.HasCredentials(), fs.IsAppsFilesystem)
	}
	return w.Flush()
}
