package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"crmpulse/internal/crm"
	"crmpulse/internal/crm/domain"
	"crmpulse/internal/crm/scoring"
	"crmpulse/internal/crm/transport"
	"crmpulse/platform/logger"
)

// newCLIApp creates the CLI application: customer list, task tracker,
// pipeline board, lead scoring and weight configuration.
func newCLIApp(module *crm.Module, log *logger.Logger) *cli.App {
	app := &cli.App{
		Name:    "crm",
		Usage:   "In-memory CRM demo with lead scoring",
		Version: Version,
		Commands: []*cli.Command{
			customersCmd(module),
			tasksCmd(module),
			dealsCmd(module),
			scoreCmd(module),
			weightsCmd(module),
		},
	}
	return app
}

func customersCmd(module *crm.Module) *cli.Command {
	svc := module.Service()
	return &cli.Command{
		Name:  "customers",
		Usage: "Manage customer records",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List customers, with optional search and status filter",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Match name, company or email"},
					&cli.StringFlag{Name: "status", Usage: "Filter by status: lead|prospect|active|inactive"},
				},
				Action: func(c *cli.Context) error {
					customers := svc.ListCustomers(c.Context, c.String("search"), domain.Status(c.String("status")))
					if len(customers) == 0 {
						fmt.Println("no customers match")
						return nil
					}
					for _, cust := range customers {
						fmt.Printf("%s  %-20s %-22s %-10s deals=$%d\n",
							cust.ID, cust.Name, cust.Company, cust.Status, cust.DealValueTotal())
					}
					return nil
				},
			},
			{
				Name:  "add",
				Usage: "Add a customer",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "company", Required: true},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "notes"},
					&cli.StringFlag{Name: "source"},
					&cli.StringFlag{Name: "status", Usage: "lead|prospect|active|inactive"},
					&cli.StringFlag{Name: "size", Usage: "startup|small|medium|large|enterprise"},
					&cli.StringFlag{Name: "budget", Usage: "unknown|low|medium|high"},
					&cli.StringFlag{Name: "timeline", Usage: "immediate|short|medium|long"},
					&cli.StringFlag{Name: "industry", Usage: "technology|healthcare|finance|manufacturing|retail|other"},
				},
				Action: func(c *cli.Context) error {
					req := transport.CreateCustomerRequest{
						Name:        c.String("name"),
						Email:       c.String("email"),
						Company:     c.String("company"),
						Phone:       c.String("phone"),
						Notes:       c.String("notes"),
						Source:      c.String("source"),
						Status:      c.String("status"),
						CompanySize: c.String("size"),
						Budget:      c.String("budget"),
						Timeline:    c.String("timeline"),
						Industry:    c.String("industry"),
					}
					if err := module.Validator().Struct(req); err != nil {
						return cli.Exit(fmt.Sprintf("validation failed: %v", err), 1)
					}
					cust, err := svc.CreateCustomer(c.Context, req)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println("created customer", cust.ID)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show a customer with score, deals and tasks",
				ArgsUsage: "<customer-id>",
				Action: func(c *cli.Context) error {
					id, err := parseCustomerID(c)
					if err != nil {
						return err
					}
					cust, err := svc.GetCustomer(c.Context, id)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					result, err := svc.Score(c.Context, id)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("%s (%s)\n", cust.Name, cust.Company)
					fmt.Printf("  email: %s  phone: %s\n", cust.Email, cust.Phone)
					fmt.Printf("  status: %s  last contact: %s\n", cust.Status, cust.LastContactAt.Format("2006-01-02"))
					fmt.Printf("  size=%s budget=%s timeline=%s industry=%s\n",
						cust.CompanySize, cust.Budget, cust.Timeline, cust.Industry)
					fmt.Printf("  score: %d/100 (%s)\n", result.Score, result.Temperature)
					for _, d := range cust.Deals {
						fmt.Printf("  deal: %-24s $%-8d %s (%d%%)\n", d.Title, d.Value, d.Stage, d.Probability)
					}
					tasks, err := svc.ListTasks(c.Context, id)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					for _, t := range tasks {
						fmt.Printf("  task: %s %s\n", t.ID, formatTask(t))
					}
					if cust.Notes != "" {
						fmt.Printf("  notes: %s\n", cust.Notes)
					}
					return nil
				},
			},
			{
				Name:      "status",
				Usage:     "Change a customer's status",
				ArgsUsage: "<customer-id> <lead|prospect|active|inactive>",
				Action: func(c *cli.Context) error {
					id, err := parseCustomerID(c)
					if err != nil {
						return err
					}
					if c.Args().Len() < 2 {
						return cli.Exit("status argument required", 1)
					}
					cust, err := svc.ChangeStatus(c.Context, id, domain.Status(c.Args().Get(1)))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("%s is now %s\n", cust.Name, cust.Status)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a customer and its tasks",
				ArgsUsage: "<customer-id>",
				Action: func(c *cli.Context) error {
					id, err := parseCustomerID(c)
					if err != nil {
						return err
					}
					if err := svc.DeleteCustomer(c.Context, id); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println("deleted", id)
					return nil
				},
			},
		},
	}
}

func tasksCmd(module *crm.Module) *cli.Command {
	svc := module.Service()
	return &cli.Command{
		Name:  "tasks",
		Usage: "Track follow-up tasks",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all tasks, or one customer's tasks",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "customer", Usage: "Customer id"},
				},
				Action: func(c *cli.Context) error {
					var tasks []domain.Task
					if raw := c.String("customer"); raw != "" {
						id, err := uuid.Parse(raw)
						if err != nil {
							return cli.Exit("invalid customer id", 1)
						}
						tasks, err = svc.ListTasks(c.Context, id)
						if err != nil {
							return cli.Exit(err.Error(), 1)
						}
					} else {
						tasks = svc.AllTasks(c.Context)
					}
					if len(tasks) == 0 {
						fmt.Println("no tasks")
						return nil
					}
					for _, t := range tasks {
						fmt.Printf("%s  %s\n", t.ID, formatTask(t))
					}
					return nil
				},
			},
			{
				Name:      "add",
				Usage:     "Add a user task for a customer",
				ArgsUsage: "<customer-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.IntFlag{Name: "due-in", Value: 1, Usage: "Due in N days"},
					&cli.StringFlag{Name: "priority", Value: "medium", Usage: "low|medium|high"},
				},
				Action: func(c *cli.Context) error {
					id, err := parseCustomerID(c)
					if err != nil {
						return err
					}
					req := transport.CreateTaskRequest{
						Title:    c.String("title"),
						DueAt:    time.Now().AddDate(0, 0, c.Int("due-in")),
						Priority: c.String("priority"),
					}
					if err := module.Validator().Struct(req); err != nil {
						return cli.Exit(fmt.Sprintf("validation failed: %v", err), 1)
					}
					t, err := svc.AddTask(c.Context, id, req)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println("created task", t.ID)
					return nil
				},
			},
			{
				Name:      "complete",
				Usage:     "Mark a task completed",
				ArgsUsage: "<customer-id> <task-id>",
				Action: func(c *cli.Context) error {
					id, err := parseCustomerID(c)
					if err != nil {
						return err
					}
					if c.Args().Len() < 2 {
						return cli.Exit("task id required", 1)
					}
					if err := svc.CompleteTask(c.Context, id, c.Args().Get(1)); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println("completed")
					return nil
				},
			},
		},
	}
}

func dealsCmd(module *crm.Module) *cli.Command {
	svc := module.Service()
	return &cli.Command{
		Name:  "deals",
		Usage: "Manage the sales pipeline",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Attach a deal to a customer",
				ArgsUsage: "<customer-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.Int64Flag{Name: "value", Required: true},
					&cli.StringFlag{Name: "stage", Value: "lead", Usage: "lead|qualified|proposal|negotiation|closed"},
					&cli.IntFlag{Name: "probability", Value: 50},
				},
				Action: func(c *cli.Context) error {
					id, err := parseCustomerID(c)
					if err != nil {
						return err
					}
					req := transport.CreateDealRequest{
						Title:       c.String("title"),
						Value:       c.Int64("value"),
						Stage:       c.String("stage"),
						Probability: c.Int("probability"),
					}
					if err := module.Validator().Struct(req); err != nil {
						return cli.Exit(fmt.Sprintf("validation failed: %v", err), 1)
					}
					cust, err := svc.AddDeal(c.Context, id, req)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("deal added, %s now carries $%d\n", cust.Name, cust.DealValueTotal())
					return nil
				},
			},
			{
				Name:  "pipeline",
				Usage: "Show deals grouped by stage",
				Action: func(c *cli.Context) error {
					board := svc.Pipeline(c.Context)
					for _, stage := range domain.PipelineStages {
						deals := board[stage]
						fmt.Printf("%s (%d)\n", strings.ToUpper(string(stage)), len(deals))
						for _, d := range deals {
							fmt.Printf("  %-24s $%-8d %d%%\n", d.Title, d.Value, d.Probability)
						}
					}
					fmt.Printf("pipeline value: $%d\n", svc.PipelineValue(c.Context))
					return nil
				},
			},
		},
	}
}

func scoreCmd(module *crm.Module) *cli.Command {
	svc := module.Service()
	return &cli.Command{
		Name:  "score",
		Usage: "Lead scoring",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Score all customers with the active weights, highest first",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "temp", Usage: "Filter by temperature: hot|warm|lukewarm|cold"},
					&cli.IntFlag{Name: "min", Usage: "Only show scores at or above this value"},
				},
				Action: func(c *cli.Context) error {
					temp := scoring.Temperature(c.String("temp"))
					for _, sc := range svc.ScoreAll(c.Context) {
						if temp != "" && sc.Result.Temperature != temp {
							continue
						}
						if sc.Result.Score < c.Int("min") {
							continue
						}
						fmt.Printf("%3d/100 %-8s %-20s %s\n",
							sc.Result.Score, sc.Result.Temperature, sc.Customer.Name, sc.Customer.Company)
					}
					stats := svc.Stats(c.Context)
					fmt.Printf("total=%d avg=%d hot=%d warm=%d lukewarm=%d cold=%d\n",
						stats.Total, stats.AverageScore, stats.Hot, stats.Warm, stats.Lukewarm, stats.Cold)
					return nil
				},
			},
			{
				Name:      "rescore",
				Usage:     "Merge attribute updates and run the scoring workflow",
				ArgsUsage: "<customer-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "size", Usage: "startup|small|medium|large|enterprise"},
					&cli.StringFlag{Name: "budget", Usage: "unknown|low|medium|high"},
					&cli.StringFlag{Name: "timeline", Usage: "immediate|short|medium|long"},
					&cli.StringFlag{Name: "industry", Usage: "technology|healthcare|finance|manufacturing|retail|other"},
				},
				Action: func(c *cli.Context) error {
					id, err := parseCustomerID(c)
					if err != nil {
						return err
					}
					updates := transport.AttributeUpdates{
						CompanySize: optionalFlag(c, "size"),
						Budget:      optionalFlag(c, "budget"),
						Timeline:    optionalFlag(c, "timeline"),
						Industry:    optionalFlag(c, "industry"),
					}
					if err := module.Validator().Struct(updates); err != nil {
						return cli.Exit(fmt.Sprintf("validation failed: %v", err), 1)
					}
					cust, result, notifications, err := svc.Rescore(c.Context, id, updates)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Printf("%s: %d/100 (%s), status %s\n", cust.Name, result.Score, result.Temperature, cust.Status)
					for _, n := range notifications {
						fmt.Println("  *", n)
					}
					return nil
				},
			},
			{
				Name:  "boost",
				Usage: "Mark all customers as contacted now (engagement boost)",
				Action: func(c *cli.Context) error {
					n := svc.BoostEngagement(c.Context)
					fmt.Printf("re-stamped %d customers\n", n)
					return nil
				},
			},
		},
	}
}

func weightsCmd(module *crm.Module) *cli.Command {
	svc := module.Service()
	return &cli.Command{
		Name:  "weights",
		Usage: "Inspect or replace the scoring weight configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show the active weights",
				Action: func(c *cli.Context) error {
					w := svc.Weights()
					fmt.Printf("companySize=%d budget=%d timeline=%d industry=%d engagement=%d (total %d)\n",
						w.CompanySize, w.Budget, w.Timeline, w.Industry, w.Engagement, w.Total())
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "Replace the weights; the five values must sum to 100",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Required: true},
					&cli.IntFlag{Name: "budget", Required: true},
					&cli.IntFlag{Name: "timeline", Required: true},
					&cli.IntFlag{Name: "industry", Required: true},
					&cli.IntFlag{Name: "engagement", Required: true},
				},
				Action: func(c *cli.Context) error {
					req := transport.UpdateWeightsRequest{
						CompanySize: c.Int("size"),
						Budget:      c.Int("budget"),
						Timeline:    c.Int("timeline"),
						Industry:    c.Int("industry"),
						Engagement:  c.Int("engagement"),
					}
					if err := module.Validator().Struct(req); err != nil {
						return cli.Exit(fmt.Sprintf("validation failed: %v", err), 1)
					}
					if err := svc.UpdateWeights(c.Context, req.Weights()); err != nil {
						return cli.Exit(err.Error(), 1)
					}
					fmt.Println("weights applied")
					return nil
				},
			},
		},
	}
}

func parseCustomerID(c *cli.Context) (uuid.UUID, error) {
	if c.Args().Len() < 1 {
		return uuid.Nil, cli.Exit("customer id required", 1)
	}
	id, err := uuid.Parse(c.Args().First())
	if err != nil {
		return uuid.Nil, cli.Exit("invalid customer id", 1)
	}
	return id, nil
}

func optionalFlag(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}

func formatTask(t domain.Task) string {
	marker := " "
	if t.Completed {
		marker = "x"
	}
	kind := "user"
	if t.Automated {
		kind = "auto"
	}
	return fmt.Sprintf("[%s] %-32s due %s %-6s %s",
		marker, t.Title, t.DueAt.Format("2006-01-02"), t.Priority, kind)
}
