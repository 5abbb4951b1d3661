// Command ledgerline is a small driver for the Ledgerline accounting API
// client: it logs in with credentials from the environment (or flags),
// then runs one customer or invoice operation and prints the result as
// JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	ledgerline "github.com/ledgerline/ledgerline-go"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

// cliConfig is resolved from LEDGERLINE_* environment variables first,
// then overridden by flags the user actually set.
type cliConfig struct {
	BaseURL        string        `envconfig:"BASE_URL" default:"http://localhost:3000/api/v1"`
	Email          string        `envconfig:"EMAIL"`
	Password       string        `envconfig:"PASSWORD"`
	OrganizationID string        `envconfig:"ORG_ID"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Debug          bool          `envconfig:"DEBUG"`
}

func main() {
	var cfg cliConfig
	if err := envconfig.Process("ledgerline", &cfg); err != nil {
		log.Fatal().Err(err).Msg("read environment")
	}

	root := &cobra.Command{
		Use:           "ledgerline",
		Short:         "Call the Ledgerline accounting API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfg.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "API base URL")
	pf.StringVar(&cfg.Email, "email", cfg.Email, "login email")
	pf.StringVar(&cfg.Password, "password", cfg.Password, "login password")
	pf.StringVar(&cfg.OrganizationID, "org-id", cfg.OrganizationID, "organization (tenant) ID")
	pf.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP request timeout")
	pf.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	root.AddCommand(customersCmd(&cfg), invoicesCmd(&cfg), demoCmd(&cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newClient builds the SDK client and logs in when credentials are
// configured. Listing endpoints work unauthenticated against dev
// servers, so missing credentials are not an error here; the server
// answers 401 if the endpoint needs auth.
func newClient(ctx context.Context, cfg *cliConfig) (*ledgerline.Client, error) {
	opts := []ledgerline.Option{ledgerline.WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.Debug {
		opts = append(opts, ledgerline.WithDebugLogging(true))
	}
	c := ledgerline.New(cfg.BaseURL, opts...)

	if cfg.Email != "" {
		result, err := c.Login(ctx, cfg.Email, cfg.Password, cfg.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
		log.Info().Str("user", result.User.Email).Msg("login successful")
	}
	return c, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// listParams converts the pagination/sort flags into query parameters,
// sending only flags the user actually set.
func listParams(flags *pflag.FlagSet) map[string]string {
	params := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "limit", "offset":
			params[f.Name] = f.Value.String()
		case "sort-by":
			params["sort_by"] = f.Value.String()
		case "sort-order":
			params["sort_order"] = f.Value.String()
		}
	})
	return params
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("limit", 20, "page size")
	cmd.Flags().Int("offset", 0, "page offset")
	cmd.Flags().String("sort-by", "", "sort field (e.g. createdAt)")
	cmd.Flags().String("sort-order", "", "sort order (asc|desc)")
}

func readRequestFile[T any](path string) (T, error) {
	var req T
	b, err := os.ReadFile(path)
	if err != nil {
		return req, err
	}
	if err := json.Unmarshal(b, &req); err != nil {
		return req, fmt.Errorf("parse %s: %w", path, err)
	}
	return req, nil
}

func customersCmd(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "customers", Short: "Manage customers"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			page, err := c.ListCustomers(cmd.Context(), listParams(cmd.Flags()))
			if err != nil {
				return err
			}
			log.Info().Int("total", page.Meta.Total).Msg("customers found")
			return printJSON(page)
		},
	}
	addListFlags(list)

	get := &cobra.Command{
		Use:   "get <customer-id>",
		Short: "Get one customer by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			customer, err := c.GetCustomer(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(customer)
		},
	}

	create := &cobra.Command{
		Use:   "create -f customer.json",
		Short: "Create a customer from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			req, err := readRequestFile[ledgerline.CreateCustomerRequest](path)
			if err != nil {
				return err
			}
			c, err := newClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			customer, err := c.CreateCustomer(cmd.Context(), req)
			if err != nil {
				return err
			}
			log.Info().Str("id", customer.ID).Msg("customer created")
			return printJSON(customer)
		},
	}
	create.Flags().StringP("file", "f", "", "path to the customer JSON payload")
	_ = create.MarkFlagRequired("file")

	cmd.AddCommand(list, get, create)
	return cmd
}

func invoicesCmd(cfg *cliConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "invoices", Short: "Manage invoices"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			page, err := c.ListInvoices(cmd.Context(), listParams(cmd.Flags()))
			if err != nil {
				return err
			}
			log.Info().Int("total", page.Meta.Total).Msg("invoices found")
			return printJSON(page)
		},
	}
	addListFlags(list)

	create := &cobra.Command{
		Use:   "create -f invoice.json",
		Short: "Create an invoice from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			req, err := readRequestFile[ledgerline.CreateInvoiceRequest](path)
			if err != nil {
				return err
			}
			c, err := newClient(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			invoice, err := c.CreateInvoice(cmd.Context(), req)
			if err != nil {
				return err
			}
			log.Info().Str("id", invoice.ID).Msg("invoice created")
			return printJSON(invoice)
		},
	}
	create.Flags().StringP("file", "f", "", "path to the invoice JSON payload")
	_ = create.MarkFlagRequired("file")

	cmd.AddCommand(list, create)
	return cmd
}

// demoCmd runs the full round trip against a dev server: login, list
// customers, create a customer, then invoice them.
func demoCmd(cfg *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a full login/customer/invoice round trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := newClient(ctx, cfg)
			if err != nil {
				return err
			}

			customers, err := c.ListCustomers(ctx, map[string]string{
				"limit": "20", "offset": "0", "sort_by": "createdAt", "sort_order": "desc",
			})
			if err != nil {
				return err
			}
			log.Info().Int("total", customers.Meta.Total).Msg("customers found")

			customer, err := c.CreateCustomer(ctx, ledgerline.CreateCustomerRequest{
				Type:      "PERSON",
				Tier:      "PERSONAL",
				FirstName: "Jane",
				LastName:  "Smith",
				Email:     "jane.smith@example.com",
				Phone:     "+1 (555) 987-6543",
				Address: &ledgerline.Address{
					Street:     "456 Oak Ave",
					City:       "Vancouver",
					Province:   "BC",
					PostalCode: "V6B 1A1",
					Country:    "Canada",
				},
			})
			if err != nil {
				return err
			}
			log.Info().Str("id", customer.ID).Msg("customer created")

			invoice, err := c.CreateInvoice(ctx, ledgerline.CreateInvoiceRequest{
				CustomerID: customer.ID,
				Items: []ledgerline.InvoiceItem{{
					Description: "Consulting Services",
					Quantity:    "10.00",
					UnitPrice:   "100.00",
					Total:       "1000.00",
				}},
				Subtotal:  "1000.00",
				TaxRate:   "0.13",
				TaxAmount: "130.00",
				Total:     "1130.00",
				DueDate:   time.Now().AddDate(0, 0, 30).Format(time.RFC3339),
			})
			if err != nil {
				return err
			}
			log.Info().Str("id", invoice.ID).Msg("invoice created")
			return nil
		},
	}
}
