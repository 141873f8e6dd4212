// airadminctl — терминальный клиент тех же воркспейсов, что и REST-админка:
// вход по email+паролю, таблица аэропортов, вложенные новости. Ничего не
// хранит между запусками — каждый вызов открывает свежую сессию.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/client"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/config"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/models"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/session"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/upload"
	"github.com/gundarsv/FlyIt-AirportsAdministrator/internal/workspace"
)

var (
	configPath string
	email      string
	password   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "airadminctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "airadminctl",
		Short:        "FlyIt airports administration CLI",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&email, "email", os.Getenv("AIRADMIN_EMAIL"), "sign-in email")
	cmd.PersistentFlags().StringVar(&password, "password", os.Getenv("AIRADMIN_PASSWORD"), "sign-in password")

	cmd.AddCommand(
		newAirportsCmd(),
		newNewsCmd(),
	)

	return cmd
}

// open поднимает клиентский стек и открывает сессию с апстримом.
func open(ctx context.Context) (*workspace.Airports, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	sess := session.New(func() {
		fmt.Fprintln(os.Stderr, "airadminctl: session invalidated, sign in again")
	})

	cl := client.New(cfg.Upstream, sess)

	token, err := cl.Auth.SignIn(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	sess.Open(token.AccessToken)

	return workspace.NewAirports(workspace.AirportsDeps{
		API:   cl.Airports,
		Maps:  upload.NewMapUploader(cfg.Upload.MaxFileSizeBytes, cl.Files),
		Store: cl.Files,
		News: workspace.NewsDeps{
			API:    cl.News,
			Images: upload.NewImageUploader(cfg.Upload.MaxFileSizeBytes, cl.Images),
			Store:  cl.Images,
		},
	}), nil
}

func newAirportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "airports",
		Short: "Manage airport records",
	}

	cmd.AddCommand(newAirportsListCmd(), newAirportsAddCmd(), newAirportsRmCmd())

	return cmd
}

func newAirportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all airports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := open(cmd.Context())
			if err != nil {
				return err
			}

			airports, err := ws.Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, a := range airports {
				fmt.Printf("%d\t%s/%s\t%s\tmap=%s\n", a.ID, a.Iata, a.Icao, a.Name, a.MapName)
			}

			return nil
		},
	}
}

func newAirportsAddCmd() *cobra.Command {
	var airport models.Airport
	var mapPath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an airport (side form flow)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ws, err := open(ctx)
			if err != nil {
				return err
			}

			s := ws.BeginForm()

			if err := s.UpdateDraft(func(draft *models.Airport) { *draft = airport }); err != nil {
				return err
			}

			if mapPath != "" {
				if err := uploadMap(ctx, ws, s.ID(), mapPath); err != nil {
					// Форма закрывается без отправки: загруженное подчищаем.
					_ = ws.Cancel(ctx, s.ID())
					return err
				}
			}

			created, err := ws.Commit(ctx, s.ID())
			if err != nil {
				_ = ws.Cancel(ctx, s.ID())
				return err
			}

			fmt.Printf("airport %d (%s) added\n", created.ID, created.Iata)

			return nil
		},
	}

	cmd.Flags().StringVar(&airport.Iata, "iata", "", "IATA code")
	cmd.Flags().StringVar(&airport.Icao, "icao", "", "ICAO code")
	cmd.Flags().StringVar(&airport.Name, "name", "", "airport name")
	cmd.Flags().StringVar(&airport.RentingCompanyName, "renting-name", "", "renting company name")
	cmd.Flags().StringVar(&airport.RentingCompanyURL, "renting-url", "", "renting company url")
	cmd.Flags().StringVar(&airport.RentingCompanyPhoneNo, "renting-phone", "", "renting company phone number")
	cmd.Flags().StringVar(&airport.TaxiPhoneNo, "taxi-phone", "", "taxi phone number")
	cmd.Flags().StringVar(&airport.EmergencyPhoneNo, "emergency-phone", "", "emergency phone number")
	cmd.Flags().StringVar(&mapPath, "map", "", "path to the airport map PDF")

	return cmd
}

func newAirportsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an airport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ws, err := open(ctx)
			if err != nil {
				return err
			}

			if _, err := ws.Load(ctx); err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			removed, err := ws.Remove(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("airport %d (%s) removed\n", removed.ID, removed.Iata)

			return nil
		},
	}
}

func newNewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Manage airport news",
	}

	cmd.AddCommand(newNewsListCmd(), newNewsAddCmd(), newNewsRmCmd())

	return cmd
}

func newNewsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <airport-id>",
		Short: "List news of an airport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ws, err := open(ctx)
			if err != nil {
				return err
			}

			airportID, err := parseID(args[0])
			if err != nil {
				return err
			}

			news, err := ws.News(airportID).Load(ctx)
			if err != nil {
				return err
			}

			for _, n := range news {
				fmt.Printf("%d\t%s\timage=%s\n", n.ID, n.Title, n.ImageName)
			}

			return nil
		},
	}
}

func newNewsAddCmd() *cobra.Command {
	var title, body, imagePath string

	cmd := &cobra.Command{
		Use:   "add <airport-id>",
		Short: "Add a news item to an airport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ws, err := open(ctx)
			if err != nil {
				return err
			}

			airportID, err := parseID(args[0])
			if err != nil {
				return err
			}

			nws := ws.News(airportID)
			s := nws.BeginAdd()

			if err := s.UpdateDraft(func(draft *models.News) {
				draft.Title = title
				draft.Body = body
			}); err != nil {
				return err
			}

			if imagePath != "" {
				if err := uploadImage(ctx, nws, s.ID(), imagePath); err != nil {
					_ = nws.Cancel(ctx, s.ID())
					return err
				}
			}

			created, err := nws.Commit(ctx, s.ID())
			if err != nil {
				_ = nws.Cancel(ctx, s.ID())
				return err
			}

			fmt.Printf("news %d added\n", created.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "news title")
	cmd.Flags().StringVar(&body, "body", "", "news body")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to the news image")

	return cmd
}

func newNewsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <airport-id> <news-id>",
		Short: "Remove a news item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ws, err := open(ctx)
			if err != nil {
				return err
			}

			airportID, err := parseID(args[0])
			if err != nil {
				return err
			}

			newsID, err := parseID(args[1])
			if err != nil {
				return err
			}

			nws := ws.News(airportID)
			if _, err := nws.Load(ctx); err != nil {
				return err
			}

			if err := nws.Remove(ctx, newsID); err != nil {
				return err
			}

			fmt.Printf("news %d removed\n", newsID)

			return nil
		},
	}
}
