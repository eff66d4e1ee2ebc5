package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/oficina-scheduler/internal/app"
	domain "github.com/BruksfildServices01/oficina-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/dto"
	ucAppointment "github.com/BruksfildServices01/oficina-scheduler/internal/usecase/appointment"
)

type agendaFlags struct {
	date        string
	view        string
	statuses    []string
	branches    []string
	services    []string
	board       bool
	granularity int
}

func agendaCmd() *cobra.Command {
	var f agendaFlags

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Mostra a agenda do dia ou da semana no terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				return runAgenda(cmd, a, f)
			})
		},
	}

	cmd.Flags().StringVar(&f.date, "date", "", "data de referência (YYYY-MM-DD), padrão hoje")
	cmd.Flags().StringVar(&f.view, "view", "week", "day ou week")
	cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "filtra por status (repetível)")
	cmd.Flags().StringSliceVar(&f.branches, "branch", nil, "filtra por filial (id)")
	cmd.Flags().StringSliceVar(&f.services, "service", nil, "filtra por serviço")
	cmd.Flags().BoolVar(&f.board, "board", false, "grade de horários do dia")
	cmd.Flags().IntVar(&f.granularity, "granularity", 0, "minutos por slot na grade (15, 30 ou 60)")

	return cmd
}

func runAgenda(cmd *cobra.Command, a *app.App, f agendaFlags) error {
	var date time.Time
	if f.date != "" {
		d, err := time.ParseInLocation(schedule.DateFormat, f.date, a.Location)
		if err != nil {
			return fmt.Errorf("data inválida %q: use YYYY-MM-DD", f.date)
		}
		date = d
	}

	filters := schedule.FilterSet{
		BranchIDs:    f.branches,
		ServiceNames: f.services,
	}
	for _, s := range f.statuses {
		filters.Status = append(filters.Status, domain.ParseStatus(s))
	}

	out := cmd.OutOrStdout()

	if f.board {
		uc := ucAppointment.NewGetDayBoard(a.Store, a.Prefs, a.Settings())
		board, err := uc.Execute(cmd.Context(), ucAppointment.DayBoardQuery{
			Date:        date,
			Granularity: f.granularity,
			Filters:     filters,
		})
		if err != nil {
			return err
		}
		return printBoard(out, board)
	}

	view, err := schedule.ParseViewMode(f.view)
	if err != nil {
		return err
	}

	uc := ucAppointment.NewListSchedule(a.Store, a.Prefs, a.Settings())
	sched, err := uc.Execute(cmd.Context(), ucAppointment.ScheduleQuery{
		Date:    date,
		View:    view,
		Filters: filters,
	})
	if err != nil {
		return err
	}
	return printSchedule(out, sched)
}

func printSchedule(w io.Writer, s *dto.ScheduleDTO) error {
	fmt.Fprintf(w, "%s (%d agendamentos", s.Title, s.Total)
	if s.ActiveFilters > 0 {
		fmt.Fprintf(w, ", %d filtros", s.ActiveFilters)
	}
	fmt.Fprintln(w, ")")

	for _, d := range s.Days {
		marker := ""
		if d.IsToday {
			marker = " (hoje)"
		}
		fmt.Fprintf(w, "\n%s%s\n", d.Heading, marker)

		if len(d.Appointments) == 0 {
			fmt.Fprintln(w, "  sem agendamentos")
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, ap := range d.Appointments {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				ap.Time, ap.StatusLabel, ap.CustomerName, ap.Vehicle, ap.ServiceName, ap.BranchName)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func printBoard(w io.Writer, b *dto.DayBoardDTO) error {
	fmt.Fprintf(w, "%s (%d agendamentos)\n\n", b.Heading, b.Total)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range b.Slots {
		if s.Available {
			fmt.Fprintf(tw, "%s\tDisponível\t\n", s.Time)
			continue
		}
		names := make([]string, 0, len(s.Appointments))
		for _, ap := range s.Appointments {
			names = append(names, fmt.Sprintf("%s %s (%s)", ap.Time, ap.CustomerName, ap.StatusLabel))
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", s.Time, strings.Join(names, "; "))
	}
	return tw.Flush()
}
