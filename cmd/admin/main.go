package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aegiswhistle/backend/internal/casefile"
	"aegiswhistle/backend/internal/notify"
	"aegiswhistle/backend/internal/store"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	caseStore := store.NewDBStore(db)
	cases := casefile.NewService(caseStore, notify.LogNotifier{}, nil) // No live dashboards for the ops CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "list":
		for _, c := range caseStore.List() {
			fmt.Printf("#%d [%s] %s (assigned: %q, rewarded: %v)\n",
				c.ID, c.Status, c.Summary, c.AssignedTo, c.Rewarded)
		}
	case "assign":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin assign <case_id> <investigator>")
			os.Exit(1)
		}
		id := parseCaseID(os.Args[2])
		if !cases.Assign(id, os.Args[3]) {
			log.Fatalf("Case %d not found", id)
		}
		fmt.Printf("Case %d assigned to %s.\n", id, os.Args[3])
	case "resolve":
		id := singleCaseID("resolve")
		if !cases.Resolve(id) {
			log.Fatalf("Case %d not found", id)
		}
		fmt.Printf("Case %d resolved, whistleblower rewarded.\n", id)
	case "escalate":
		id := singleCaseID("escalate")
		if !cases.Escalate(id) {
			log.Fatalf("Case %d not found", id)
		}
		fmt.Printf("Case %d escalated.\n", id)
	case "reward":
		id := singleCaseID("reward")
		if !cases.Reward(id) {
			log.Fatalf("Case %d not found", id)
		}
		fmt.Printf("Reward sent for case %d.\n", id)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func singleCaseID(command string) uint {
	if len(os.Args) != 3 {
		fmt.Printf("Usage: admin %s <case_id>\n", command)
		os.Exit(1)
	}
	return parseCaseID(os.Args[2])
}

func parseCaseID(arg string) uint {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		fmt.Println("Invalid case ID. Please provide a positive integer.")
		os.Exit(1)
	}
	return uint(id)
}
