package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"ledger/internal/domain/account"
	"ledger/internal/domain/user"
	"ledger/internal/infrastructure/postgres"
	"ledger/internal/shared/config"
)

const usage = `Ledger Admin CLI - Provisioning commands for the ledger API

Usage:
  admin <command> [options]

Commands:
  migrate          Create or update the database schema
  create-user      Create a user and print its secret key
  create-account   Open an account for an existing user

Examples:
  admin migrate
  admin create-user --username=alice
  admin create-account --user-id=1 --number=ACC1000001 --balance=250.00
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage + "\n")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		runMigrate(os.Args[2:])
	case "create-user":
		runCreateUser(os.Args[2:])
	case "create-account":
		runCreateAccount(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage + "\n")
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Print(usage + "\n")
		os.Exit(1)
	}
}

// connect loads configuration and opens the database.
func connect() *postgres.DB {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.New(cfg.Database.ConnectionString(), postgres.PoolConfig{MaxOpenConns: 2, MaxIdleConns: 1})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func runMigrate(args []string) {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	timeout := fs.Duration("timeout", time.Minute, "Timeout for the operation")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	db := connect()
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Schema is up to date")
}

func runCreateUser(args []string) {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	username := fs.String("username", "", "Unique username (3-50 of letters, digits, '.', '_' or '-')")

	fs.Usage = func() {
		fmt.Println("Usage: admin create-user --username=<name>")
		fmt.Println("\nOptions:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *username == "" {
		fmt.Println("Error: --username is required")
		fs.Usage()
		os.Exit(1)
	}

	db := connect()
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userService := user.NewService(postgres.NewUserRepository(db))
	u, secretKey, err := userService.CreateUser(ctx, *username)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("\n=== User %d ===\n", u.ID)
	fmt.Printf("  Username:   %s\n", u.Username)
	fmt.Printf("  Secret key: %s\n", secretKey)
	fmt.Println("\nStore the secret key now. It cannot be shown again.")
}

func runCreateAccount(args []string) {
	fs := flag.NewFlagSet("create-account", flag.ExitOnError)
	userID := fs.Int64("user-id", 0, "Owner's user ID")
	number := fs.String("number", "", "Account number (6-34 alphanumeric characters)")
	balanceStr := fs.String("balance", "0", "Opening balance")

	fs.Usage = func() {
		fmt.Println("Usage: admin create-account --user-id=<id> --number=<number> [--balance=<amount>]")
		fmt.Println("\nOptions:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *userID <= 0 || *number == "" {
		fmt.Println("Error: --user-id and --number are required")
		fs.Usage()
		os.Exit(1)
	}

	balance, err := decimal.NewFromString(*balanceStr)
	if err != nil {
		log.Fatalf("Invalid balance %q: %v", *balanceStr, err)
	}
	if !balance.Equal(balance.Round(2)) {
		log.Fatalf("Invalid balance %q: at most 2 decimal places", *balanceStr)
	}

	db := connect()
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	accountService := account.NewService(postgres.NewAccountRepository(db))
	acc, err := accountService.CreateAccount(ctx, account.CreateParams{
		AccountNumber:  *number,
		UserID:         *userID,
		InitialBalance: balance,
	})
	if err != nil {
		log.Fatalf("Failed to create account: %v", err)
	}

	fmt.Printf("\n=== Account %d ===\n", acc.ID)
	fmt.Printf("  Number:  %s\n", acc.AccountNumber)
	fmt.Printf("  Owner:   %d\n", acc.UserID)
	fmt.Printf("  Balance: %s\n", acc.Balance.StringFixed(2))
}
