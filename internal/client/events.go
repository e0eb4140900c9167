// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-event-planner/models"
	"github.com/spf13/cobra"
)

func (a *App) eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Create and list events",
	}
	cmd.AddCommand(a.eventsAddCmd(), a.eventsListCmd())
	return cmd
}

func (a *App) eventsAddCmd() *cobra.Command {
	var (
		request     models.CreateEventRequest
		date        string
		category    string
		description string
		remind      int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an event",
		Example: `  planner events add --name "Dentist" --date 2030-05-01T10:00:00Z --category Appointment --remind 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := time.Parse(time.RFC3339, date)
			if err != nil {
				return fmt.Errorf("--date must be RFC3339 (e.g. 2030-05-01T10:00:00Z): %w", err)
			}
			request.Date = parsed
			request.Category = models.Category(category)
			if cmd.Flags().Changed("description") {
				request.Description = &description
			}
			if cmd.Flags().Changed("remind") {
				request.ReminderMinutesBefore = &remind
			}

			serverAdapter, err := a.serverAdapter()
			if err != nil {
				return err
			}
			event, err := serverAdapter.CreateEvent(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("create event: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Event created (id %d)\n", event.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&request.Name, "name", "", "Event name")
	cmd.Flags().StringVar(&date, "date", "", "Event date, RFC3339")
	cmd.Flags().StringVar(&category, "category", "", "Meeting, Birthday or Appointment")
	cmd.Flags().StringVar(&description, "description", "", "Optional description")
	cmd.Flags().IntVar(&remind, "remind", 0, "Minutes before the event to send a reminder")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func (a *App) eventsListCmd() *cobra.Command {
	var query models.ListEventsQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your events",
		Example: `  planner events list --sort category --reminder-sent false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverAdapter, err := a.serverAdapter()
			if err != nil {
				return err
			}
			events, err := serverAdapter.ListEvents(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("list events: %w", err)
			}

			return printEvents(cmd.OutOrStdout(), events)
		},
	}

	cmd.Flags().StringVar(&query.SortBy, "sort", "", "Sort by date (default) or category")
	cmd.Flags().StringVar(&query.FilterCategory, "category", "", "Only events of this category")
	cmd.Flags().StringVar(&query.ReminderStatus, "reminder-sent", "", "Only events whose reminder was (true) or was not (false) sent")

	return cmd
}

func printEvents(out io.Writer, events []models.Event) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(out, "No events")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tNAME\tREMINDER")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Date.Format(time.RFC3339), e.Category, e.Name, reminderColumn(e))
	}
	return tw.Flush()
}

func reminderColumn(e models.Event) string {
	switch {
	case e.ReminderMinutesBefore == nil:
		return "-"
	case e.ReminderSent:
		return "sent"
	default:
		return strconv.Itoa(*e.ReminderMinutesBefore) + "m before"
	}
}
