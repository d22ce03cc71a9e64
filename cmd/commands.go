package cmd

import (
	"context"
	"errors"
	"fmt"

	"solid-example/domain/database"
	"solid-example/domain/employee"
	"solid-example/domain/payroll"
	"solid-example/domain/shape"
	"solid-example/domain/singleton"
	"solid-example/domain/worker"
	apperrors "solid-example/pkg/errors"

	"github.com/spf13/cobra"
)

func newAreaCommand() *cobra.Command {
	var (
		square        bool
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Resize the default rectangle (or square) and print its area",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := shape.DefaultRectangle()
			if square {
				q = shape.DefaultSquare()
			}
			q.SetWidth(width)
			q.SetHeight(height)
			area, err := q.CalculateArea()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), area)
			return nil
		},
	}
	cmd.Flags().BoolVar(&square, "square", false, "start from the default square instead")
	cmd.Flags().IntVar(&width, "width", 7, "new width")
	cmd.Flags().IntVar(&height, "height", 8, "new height")
	return cmd
}

func newSingletonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "singleton",
		Short: "Print whether two accesses yield the same instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			instance1 := singleton.Instance()
			instance2 := singleton.Instance()
			fmt.Fprintln(cmd.OutOrStdout(), singleton.Same(instance1, instance2))
			return nil
		},
	}
}

// failingStore makes every save fail, to show the swallow-and-log path.
type failingStore struct {
	database.Store
	err error
}

func (s failingStore) Save(ctx context.Context, record *database.Record) error {
	return s.err
}

type saver interface {
	ConnectToDatabase(ctx context.Context) error
	SaveDataToDatabase(ctx context.Context, payload string)
}

func newSaveCommand(getApp func() *App) *cobra.Command {
	var payload, failWith, variant string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a payload through a DatabaseManager; failures are logged, never returned",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()
			store := app.store
			if failWith != "" {
				store = failingStore{Store: store, err: errors.New(failWith)}
			}

			name := app.config.Database.Name
			var m saver
			switch variant {
			case "injected":
				m = database.NewManager(name, store, app.logger)
			case "coupled":
				m = database.NewCoupledManager(name, store)
			case "inline":
				m = database.NewInlineLoggingManager(name, store)
			default:
				return apperrors.InvalidArgument(fmt.Sprintf("unknown variant %q", variant))
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := m.ConnectToDatabase(ctx); err != nil {
				return err
			}
			m.SaveDataToDatabase(ctx, payload)
			fmt.Fprintf(cmd.OutOrStdout(), "save attempted on %s (%s manager)\n", name, variant)
			return nil
		},
	}
	cmd.Flags().StringVar(&payload, "payload", "", "data to save")
	cmd.Flags().StringVar(&failWith, "fail", "", "force the save to fail with this message")
	cmd.Flags().StringVar(&variant, "variant", "injected", "manager variant: injected, coupled or inline")
	return cmd
}

func newPayCommand(getApp func() *App) *cobra.Command {
	var (
		kind          string
		amount, hours float64
	)
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Calculate pay for a kind of payee",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p payroll.Payable
			switch kind {
			case "fulltime":
				p = payroll.FullTimeEmployee{MonthlySalary: amount}
			case "contractor":
				p = payroll.Contractor{Hours: hours, HourlyRate: amount}
			case "intern":
				p = payroll.Intern{Stipend: amount}
			default:
				return apperrors.InvalidArgument(fmt.Sprintf("unknown payee kind %q", kind))
			}
			pay, err := getApp().payCalculator.CalculatePay(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s\n", pay.Amount, pay.Currency)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "fulltime", "fulltime, contractor or intern")
	cmd.Flags().Float64Var(&amount, "amount", 0, "salary, hourly rate or stipend")
	cmd.Flags().Float64Var(&hours, "hours", 0, "contractor hours")
	return cmd
}

func newFinancesCommand(getApp func() *App) *cobra.Command {
	var (
		id    int
		name  string
		hours float64
	)
	cmd := &cobra.Command{
		Use:   "finances",
		Short: "Calculate a full-time employee's pay and rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getApp().config.Payroll
			f := employee.NewFinancesForFTE(name, hours, cfg.HourlyRate, cfg.RewardRate)
			f.Work()
			pay, err := f.CalculatePay(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pay=%.2f rewards=%.2f\n", pay, f.CalculateRewards(id))
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "employee id")
	cmd.Flags().StringVar(&name, "name", "employee", "employee name")
	cmd.Flags().Float64Var(&hours, "hours", 160, "total hours worked")
	return cmd
}

func newRobotCommand() *cobra.Command {
	var number int
	cmd := &cobra.Command{
		Use:   "robot",
		Short: "Let a robot work, then try to feed it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var w worker.Worker = worker.NewRobot(number)
			if err := w.Work(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "robot %d worked\n", number)
			if err := w.Eat(); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "robot %d: %v\n", number, err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&number, "number", 1, "robot number")
	return cmd
}
