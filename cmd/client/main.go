package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/client"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop, accepting commands to manage expenses.
func repl(api *client.API, session *client.Session) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("expenses> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, add <amount> <description>, list, edit <id> <amount> <description>, delete <id>, total, chart, pie, logout, exit")
		case "add":
			if len(args) < 3 {
				fmt.Println("Usage: add <amount> <description>")
				continue
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				fmt.Println("Invalid amount:", args[1])
				continue
			}
			expense, err := api.CreateExpense(strings.Join(args[2:], " "), amount)
			if err != nil {
				fmt.Println("Error adding expense:", err)
				continue
			}
			fmt.Printf("Added %s: %.2f (id %s)\n", expense.Description, expense.Amount, expense.ID)
		case "list":
			expenses, err := api.Expenses()
			if err != nil {
				fmt.Println("Error fetching expenses:", err)
				continue
			}
			if len(expenses) == 0 {
				fmt.Println("No expenses recorded.")
				continue
			}
			for _, e := range expenses {
				fmt.Printf("%s  %s  %-20s %10.2f\n", e.ID, e.Date.Format("2006-01-02"), e.Description, e.Amount)
			}
		case "edit":
			if len(args) < 4 {
				fmt.Println("Usage: edit <id> <amount> <description>")
				continue
			}
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				fmt.Println("Invalid amount:", args[2])
				continue
			}
			expense, err := api.UpdateExpense(args[1], strings.Join(args[3:], " "), amount)
			if err != nil {
				fmt.Println("Error updating expense:", err)
				continue
			}
			fmt.Printf("Updated %s: %.2f\n", expense.Description, expense.Amount)
		case "delete":
			if len(args) < 2 {
				fmt.Println("Usage: delete <id>")
				continue
			}
			if err := api.DeleteExpense(args[1]); err != nil {
				fmt.Println("Error deleting expense:", err)
				continue
			}
			fmt.Println("Expense deleted")
		case "total":
			expenses, err := api.Expenses()
			if err != nil {
				fmt.Println("Error fetching expenses:", err)
				continue
			}
			fmt.Printf("Total: %.2f\n", client.Total(expenses))
		case "chart":
			expenses, err := api.Expenses()
			if err != nil {
				fmt.Println("Error fetching expenses:", err)
				continue
			}
			client.RenderBarChart(os.Stdout, expenses)
		case "pie":
			expenses, err := api.Expenses()
			if err != nil {
				fmt.Println("Error fetching expenses:", err)
				continue
			}
			client.RenderPieChart(os.Stdout, expenses)
		case "logout":
			if err := session.Clear(); err != nil {
				fmt.Println("Error clearing session:", err)
				continue
			}
			fmt.Println("Logged out")
			return
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags and dispatches to register, login, or the shell.
func main() {
	var (
		cmd         string
		baseURL     string
		sessionPath string
		showVer     bool
	)

	flag.StringVar(&cmd, "cmd", "shell", "command: register | login | shell")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&sessionPath, "session", "", "path to session file (default: user config dir)")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("Expense Tracker Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	session, err := client.NewSession(sessionPath)
	if err != nil {
		log.Fatalf("session setup failed: %v", err)
	}
	if err := session.Load(); err != nil {
		log.Fatalf("failed to load session: %v", err)
	}

	api := &client.API{
		Client:  &http.Client{},
		BaseURL: strings.TrimRight(baseURL, "/"),
		Session: session,
	}

	switch cmd {
	case "register", "login":
		username, password, err := client.PromptCredentials()
		if err != nil {
			log.Fatalf("failed to read credentials: %v", err)
		}

		var token string
		if cmd == "register" {
			token, err = api.Register(username, password)
		} else {
			token, err = api.Login(username, password)
		}
		if err != nil {
			// The one flow where failures must be visible to the user.
			fmt.Println("Authentication failed:", err)
			os.Exit(1)
		}

		session.Token = token
		session.Username = username
		if err := session.Save(); err != nil {
			log.Fatalf("failed to save session: %v", err)
		}
		fmt.Println("Logged in as", username)
		repl(api, session)
	case "shell":
		if !session.LoggedIn() {
			fmt.Println("Not logged in. Run with -cmd register or -cmd login first.")
			os.Exit(1)
		}
		repl(api, session)
	default:
		fmt.Println("Unknown command. Use -cmd register | login | shell.")
		os.Exit(1)
	}
}
