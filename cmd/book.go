package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/example/skedda-booker/internal/browser"
	"github.com/example/skedda-booker/internal/config"
	"github.com/example/skedda-booker/internal/domain/booking"
	"github.com/example/skedda-booker/internal/faillog"
	"github.com/example/skedda-booker/internal/skedda"
)

func newBookCmd() *cobra.Command {
	var (
		facilityKey string
		startTime   string
		endTime     string
		date        string
		advanceDays int
		profile     string
		signature   string
		title       string
		headless    bool
		configPath  string
		forceDate   bool
	)

	c := &cobra.Command{
		Use:   "book",
		Short: "Book a facility slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			creds := cfg.Credentials
			sig := cfg.Defaults.Signature
			if profile != "" {
				p, ok := config.ResolveProfile(profile, os.Getenv)
				if !ok {
					return fmt.Errorf("profile %q has no credentials in the environment (set SKEDDA_PROFILE_%s_EMAIL / _PASSWORD)",
						profile, config.NormalizeProfileKey(profile))
				}
				creds = config.Credentials{Email: p.Email, Password: p.Password}
				if p.Signature != "" {
					sig = p.Signature
				}
			}
			if signature != "" {
				sig = signature
			}
			if creds.Email == "" || creds.Password == "" {
				return fmt.Errorf("no credentials: set credentials in %s or SKEDDA_EMAIL/SKEDDA_PASSWORD", configPath)
			}

			fac, err := cfg.Facility(facilityKey)
			if err != nil {
				return err
			}

			if err := booking.ValidateTimes(startTime, endTime); err != nil {
				return err
			}
			resolvedDate, err := booking.ResolveDate(date, advanceDays, cfg.Defaults.BookInAdvanceDays, time.Now())
			if err != nil {
				return err
			}
			if err := booking.CheckNotPast(resolvedDate, time.Now(), forceDate); err != nil {
				return err
			}

			bookingTitle := title
			if bookingTitle == "" {
				bookingTitle, err = booking.FormatTitle(startTime, endTime, cfg.Defaults.BufferMinutes)
				if err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("headless") {
				headless = cfg.Defaults.Headless
			}

			req := booking.Request{
				Facility:  booking.Facility{SpaceID: fac.SpaceID, Name: fac.Name},
				Date:      resolvedDate,
				StartTime: startTime,
				EndTime:   endTime,
				Signature: sig,
				Title:     bookingTitle,
			}

			session, err := browser.Launch(headless, log.Logger)
			if err != nil {
				return err
			}
			defer session.Close()

			driver := skedda.New(session.Page(), cfg, creds, faillog.New(faillog.DefaultPath), log.Logger)
			if err := driver.Book(context.Background(), req); err != nil {
				color.Red("✗ Booking failed: %v", err)
				return fmt.Errorf("booking failed")
			}

			color.Green("✓ Booked %s on %s %s-%s (%s)", fac.Name, resolvedDate, startTime, endTime, bookingTitle)
			return nil
		},
	}

	c.Flags().StringVar(&facilityKey, "facility", "", "facility key from the config file")
	c.Flags().StringVar(&startTime, "start", "", "start time HH:MM")
	c.Flags().StringVar(&endTime, "end", "", "end time HH:MM")
	c.Flags().StringVar(&date, "date", "", "booking date YYYY-MM-DD")
	c.Flags().IntVar(&advanceDays, "book-in-advance-days", -1, "book N days from today (bare flag uses the configured default)")
	c.Flags().Lookup("book-in-advance-days").NoOptDefVal = "-1"
	c.Flags().StringVar(&profile, "profile", "", "named credential profile from the environment")
	c.Flags().StringVar(&signature, "signature", "", "signature override")
	c.Flags().StringVar(&title, "title", "", "booking title override")
	c.Flags().BoolVar(&headless, "headless", true, "run the browser headless")
	c.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the JSON config file")
	c.Flags().BoolVar(&forceDate, "force-date", false, "allow booking a past date")

	_ = c.MarkFlagRequired("facility")
	_ = c.MarkFlagRequired("start")
	_ = c.MarkFlagRequired("end")
	c.MarkFlagsMutuallyExclusive("date", "book-in-advance-days")
	return c
}
