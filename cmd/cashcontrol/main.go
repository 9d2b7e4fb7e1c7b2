package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JolyGolfqw/CashControlFront/internal/api"
	"github.com/JolyGolfqw/CashControlFront/internal/cli"
	"github.com/JolyGolfqw/CashControlFront/internal/core"
	"github.com/JolyGolfqw/CashControlFront/internal/log"
	"github.com/JolyGolfqw/CashControlFront/internal/session"
	"github.com/JolyGolfqw/CashControlFront/internal/store"
)

const usage = `usage: cashcontrol <command> [flags]

commands:
  login           -email -password
  register        -email -username -password
  telegram-login  -init-data
  logout
  dashboard       [-period day|week|month|year]
  expenses        list | add -amount -category -date [-description] | rm -id
  categories      list | add -name [-color] [-icon] | rm -id
  recurring       list | activate -id | deactivate -id
`

type app struct {
	logger  *log.Logger
	session *session.Store
	client  *api.Client
	store   *store.Store
}

func main() {
	cli.LoadEnvFile()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	bootLogger := cli.SetupLogger("info")
	cfg := cli.LoadAndValidateConfig(bootLogger)
	logger := cli.SetupLogger(cfg.LogLevel)

	sessionStore := cli.OpenSession(logger, cfg.SessionDBPath)
	defer sessionStore.Close()

	client := api.NewClient(cfg.APIBaseURL, sessionStore, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
	a := &app{
		logger:  logger,
		session: sessionStore,
		client:  client,
		store:   store.New(client, cfg.CacheTTL, logger),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "telegram-login":
		return a.telegramLogin(ctx, args)
	case "logout":
		return a.logout()
	case "dashboard":
		return a.dashboard(ctx, args)
	case "expenses":
		return a.expenses(ctx, args)
	case "categories":
		return a.categories(ctx, args)
	case "recurring":
		return a.recurring(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	token, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.session.SetToken(token); err != nil {
		return err
	}
	a.logger.Info("logged in", log.FieldOperation, log.OpLogin)
	fmt.Println("logged in")
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	token, err := a.client.Register(ctx, *email, *username, *password)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := a.session.SetToken(token); err != nil {
		return err
	}
	fmt.Println("registered and logged in")
	return nil
}

func (a *app) telegramLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("telegram-login", flag.ExitOnError)
	initData := fs.String("init-data", "", "Telegram Mini App init data")
	fs.Parse(args)

	token, err := a.client.TelegramLogin(ctx, *initData)
	if err != nil {
		return fmt.Errorf("telegram login: %w", err)
	}
	if err := a.session.SetToken(token); err != nil {
		return err
	}
	fmt.Println("logged in via Telegram")
	return nil
}

// logout clears the durable token and wipes the cache store.
func (a *app) logout() error {
	if err := a.session.ClearToken(); err != nil {
		return err
	}
	a.store.ClearAll()
	a.logger.Info("logged out", log.FieldOperation, log.OpLogout)
	fmt.Println("logged out")
	return nil
}

func (a *app) dashboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	period := fs.String("period", "month", "statistics period: day, week, month or year")
	fs.Parse(args)

	end := time.Now()
	start := end.AddDate(0, -1, 0)
	err := a.store.Preload(ctx, store.PreloadParams{
		AnalyticsPeriod:  core.AnalyticsDay,
		AnalyticsStart:   start.Format("2006-01-02"),
		AnalyticsEnd:     end.Format("2006-01-02"),
		StatisticsPeriod: core.StatisticsPeriod(*period),
	})
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	if budget := a.store.Budget(); budget != nil {
		if budget.Empty {
			fmt.Println("budget: none configured for this period")
		} else {
			status := budget.Status
			fmt.Printf("budget: %s spent of %s (%.0f%%)\n",
				status.Spent, status.Budget.Amount, status.Percentage)
			if status.IsExceeded {
				fmt.Println("  budget exceeded!")
			} else if status.IsNearLimit {
				fmt.Println("  approaching the limit")
			}
		}
	}

	if stats := a.store.Statistics(); stats != nil {
		fmt.Printf("total spent (%s): %s\n", *period, stats.TotalAmount)
		for _, row := range stats.ByCategory {
			fmt.Printf("  %-20s %10s  %5.1f%%\n", row.CategoryName, row.TotalAmount, row.Percentage)
		}
	}

	fmt.Printf("recent expenses: %d cached\n", len(a.store.Expenses()))
	return nil
}

func (a *app) expenses(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expenses: missing subcommand (list, add, rm)")
	}
	switch args[0] {
	case "list":
		if err := a.store.LoadExpenses(ctx, false); err != nil {
			return fmt.Errorf("load expenses: %w", err)
		}
		for _, e := range a.store.Expenses() {
			category := "-"
			if e.Category != nil {
				category = e.Category.Name
			}
			fmt.Printf("%6d  %s  %10s  %-15s %s\n", e.ID, e.Date, e.Amount, category, e.Description)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("expenses add", flag.ExitOnError)
		amount := fs.String("amount", "", "amount, e.g. 12.34")
		categoryID := fs.Int64("category", 0, "category id")
		description := fs.String("description", "", "description")
		date := fs.String("date", time.Now().Format("2006-01-02"), "date (YYYY-MM-DD)")
		fs.Parse(args[1:])

		parsed, err := core.ParseAmount(*amount)
		if err != nil {
			return fmt.Errorf("amount %q: %w", *amount, err)
		}
		// Categories must be loaded for the optimistic snapshot embed
		if err := a.store.LoadCategories(ctx, false); err != nil {
			a.logger.Warn("category preload failed", log.FieldError, err)
		}

		created, err := a.client.CreateExpense(ctx, api.CreateExpenseInput{
			CategoryID:  *categoryID,
			Amount:      parsed,
			Description: *description,
			Date:        *date,
		})
		if err != nil {
			return fmt.Errorf("create expense: %w", err)
		}
		a.store.AddExpense(*created)
		fmt.Printf("added expense %d\n", created.ID)
		return nil

	case "rm":
		fs := flag.NewFlagSet("expenses rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "expense id")
		fs.Parse(args[1:])

		// Optimistic: drop locally first, resync by force reload on failure
		a.store.RemoveExpense(*id)
		if err := a.client.DeleteExpense(ctx, *id); err != nil {
			if reloadErr := a.store.LoadExpenses(ctx, true); reloadErr != nil {
				a.logger.Warn("resync after failed delete failed", log.FieldError, reloadErr)
			}
			return fmt.Errorf("delete expense: %w", err)
		}
		fmt.Printf("removed expense %d\n", *id)
		return nil

	default:
		return fmt.Errorf("expenses: unknown subcommand %q", args[0])
	}
}

func (a *app) categories(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("categories: missing subcommand (list, add, rm)")
	}
	switch args[0] {
	case "list":
		if err := a.store.LoadCategories(ctx, false); err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		for _, c := range a.store.Categories() {
			fmt.Printf("%6d  %-20s %s %s\n", c.ID, c.Name, c.Color, c.Icon)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("categories add", flag.ExitOnError)
		name := fs.String("name", "", "category name")
		color := fs.String("color", "", "display color, e.g. #10b981")
		icon := fs.String("icon", "", "icon")
		fs.Parse(args[1:])

		created, err := a.client.CreateCategory(ctx, api.CreateCategoryInput{
			Name:  *name,
			Color: *color,
			Icon:  *icon,
		})
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		a.store.AddCategory(*created)
		fmt.Printf("added category %d\n", created.ID)
		return nil

	case "rm":
		fs := flag.NewFlagSet("categories rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "category id")
		fs.Parse(args[1:])

		a.store.RemoveCategory(*id)
		if err := a.client.DeleteCategory(ctx, *id); err != nil {
			if reloadErr := a.store.LoadCategories(ctx, true); reloadErr != nil {
				a.logger.Warn("resync after failed delete failed", log.FieldError, reloadErr)
			}
			return fmt.Errorf("delete category: %w", err)
		}
		fmt.Printf("removed category %d\n", *id)
		return nil

	default:
		return fmt.Errorf("categories: unknown subcommand %q", args[0])
	}
}

func (a *app) recurring(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("recurring: missing subcommand (list, activate, deactivate)")
	}
	switch args[0] {
	case "list":
		if err := a.store.LoadRecurring(ctx, false); err != nil {
			return fmt.Errorf("load recurring expenses: %w", err)
		}
		for _, r := range a.store.Recurring() {
			state := "paused"
			if r.IsActive {
				state = "active"
			}
			fmt.Printf("%6d  %-8s %-7s %10s  next %s  %s\n",
				r.ID, r.Type, state, r.Amount, r.NextDate, r.Description)
		}
		return nil

	case "activate", "deactivate":
		fs := flag.NewFlagSet("recurring "+args[0], flag.ExitOnError)
		id := fs.Int64("id", 0, "recurring expense id")
		fs.Parse(args[1:])

		var item *core.RecurringExpense
		var err error
		if args[0] == "activate" {
			item, err = a.client.ActivateRecurring(ctx, *id)
		} else {
			item, err = a.client.DeactivateRecurring(ctx, *id)
		}
		if err != nil {
			return fmt.Errorf("%s recurring expense: %w", args[0], err)
		}
		a.store.UpdateRecurring(item.ID, core.RecurringExpensePatch{IsActive: &item.IsActive})
		fmt.Printf("%sd recurring expense %d\n", args[0], item.ID)
		return nil

	default:
		return fmt.Errorf("recurring: unknown subcommand %q", args[0])
	}
}
